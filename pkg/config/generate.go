package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/fnm-setup/pkg/errors"
)

// GenerateDefault renders the default configuration as TOML, suitable
// for writing to the user config file as a starting point.
func GenerateDefault() (string, error) {
	out, err := gotoml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal default config")
	}
	return string(out), nil
}
