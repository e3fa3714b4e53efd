package autorun

import (
	"github.com/arthur-debert/fnm-setup/pkg/types"
)

// MemoryStore is an in-memory types.AutoRunStore for tests
type MemoryStore struct {
	Value  string
	HasVal bool

	// GetErr and SetErr, when non-nil, are returned by the
	// corresponding method to simulate store failures
	GetErr error
	SetErr error
}

var _ types.AutoRunStore = (*MemoryStore)(nil)

// NewMemory creates an empty in-memory store
func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get() (string, bool, error) {
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	return m.Value, m.HasVal, nil
}

func (m *MemoryStore) Set(value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Value = value
	m.HasVal = true
	return nil
}
