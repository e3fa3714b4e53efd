package types

import (
	"io/fs"
)

// FS is the filesystem interface required for fnm-setup operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
}

// AutoRunStore reads and writes the persistent cmd.exe AutoRun value.
//
// Get reports ok == false when the value has never been set; that is a
// normal state, not an error. Errors are reserved for actual store
// failures (permissions, unsupported platform).
type AutoRunStore interface {
	Get() (value string, ok bool, err error)
	Set(value string) error
}

// Runner executes an external command and returns its combined output
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}
