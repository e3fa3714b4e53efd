//go:build windows

package autorun

import (
	"github.com/arthur-debert/fnm-setup/pkg/errors"
	"github.com/arthur-debert/fnm-setup/pkg/types"
	"golang.org/x/sys/windows/registry"
)

// registryStore implements types.AutoRunStore against HKCU
type registryStore struct{}

// NewRegistry creates the registry-backed AutoRun store
func NewRegistry() types.AutoRunStore {
	return &registryStore{}
}

func (r *registryStore) Get() (string, bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, KeyPath, registry.QUERY_VALUE)
	if err != nil {
		if err == registry.ErrNotExist {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, errors.ErrStoreRead, "cannot open HKCU\\%s", KeyPath)
	}
	defer func() { _ = key.Close() }()

	value, _, err := key.GetStringValue(ValueName)
	if err != nil {
		if err == registry.ErrNotExist {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, errors.ErrStoreRead, "cannot read %s value", ValueName)
	}
	return value, true, nil
}

func (r *registryStore) Set(value string) error {
	key, _, err := registry.CreateKey(registry.CURRENT_USER, KeyPath, registry.SET_VALUE)
	if err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "cannot open HKCU\\%s for writing", KeyPath)
	}
	defer func() { _ = key.Close() }()

	if err := key.SetStringValue(ValueName, value); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "cannot write %s value", ValueName)
	}
	return nil
}
