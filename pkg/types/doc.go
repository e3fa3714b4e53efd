// Package types defines the core interfaces and result types shared
// across fnm-setup packages.
//
// The filesystem and the persistent AutoRun store are modeled as
// interfaces so that commands can run against in-memory fakes in tests
// instead of touching a real profile or the registry.
package types
