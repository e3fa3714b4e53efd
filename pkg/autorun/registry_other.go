//go:build !windows

package autorun

import (
	"github.com/arthur-debert/fnm-setup/pkg/errors"
	"github.com/arthur-debert/fnm-setup/pkg/types"
)

// unsupportedStore is the non-Windows stand-in for the registry store
type unsupportedStore struct{}

// NewRegistry creates the registry-backed AutoRun store. On non-Windows
// platforms every operation fails with ErrUnsupported.
func NewRegistry() types.AutoRunStore {
	return &unsupportedStore{}
}

func (u *unsupportedStore) Get() (string, bool, error) {
	return "", false, errors.New(errors.ErrUnsupported, "the AutoRun registry value only exists on Windows")
}

func (u *unsupportedStore) Set(value string) error {
	return errors.New(errors.ErrUnsupported, "the AutoRun registry value only exists on Windows")
}
