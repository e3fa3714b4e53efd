package preflight

import (
	"os/exec"

	"github.com/arthur-debert/fnm-setup/pkg/types"
)

// execRunner implements types.Runner using os/exec
type execRunner struct{}

// NewExecRunner creates a Runner that executes real commands
func NewExecRunner() types.Runner {
	return &execRunner{}
}

func (e *execRunner) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}
