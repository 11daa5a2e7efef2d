package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file, useful
// as a template for a user config.
func DefaultYAML() []byte {
	return defaultYAML
}
