// Package preflight verifies that the managed version-manager
// executable is reachable before any configuration is attempted.
package preflight

import (
	"strings"

	"github.com/arthur-debert/fnm-setup/pkg/errors"
	"github.com/arthur-debert/fnm-setup/pkg/logging"
	"github.com/arthur-debert/fnm-setup/pkg/types"
)

// Check runs the tool's version query and returns the reported version.
// A failure means the tool is not installed or not on PATH; callers
// treat this as a fatal, user-correctable precondition.
func Check(runner types.Runner, tool string) (string, error) {
	logger := logging.GetLogger("preflight")

	out, err := runner.Run(tool, "--version")
	if err != nil {
		logger.Debug().Err(err).Str("tool", tool).Msg("version query failed")
		return "", errors.Wrapf(err, errors.ErrToolNotFound,
			"%s was not found on your PATH", tool)
	}

	version := strings.TrimSpace(string(out))
	logger.Debug().Str("tool", tool).Str("version", version).Msg("preflight ok")
	return version, nil
}
