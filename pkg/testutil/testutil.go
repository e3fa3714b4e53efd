// Package testutil provides test doubles shared across fnm-setup tests.
package testutil

import (
	"fmt"
)

// FakeRunner is a types.Runner that records invocations and returns
// canned output.
type FakeRunner struct {
	// Output is returned by Run when Err is nil
	Output string

	// Err, when non-nil, is returned by Run
	Err error

	// Calls records each invocation as "name arg1 arg2 ..."
	Calls []string
}

func (f *FakeRunner) Run(name string, args ...string) ([]byte, error) {
	call := name
	for _, a := range args {
		call = fmt.Sprintf("%s %s", call, a)
	}
	f.Calls = append(f.Calls, call)

	if f.Err != nil {
		return nil, f.Err
	}
	return []byte(f.Output), nil
}
