package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.tui2048/config.yaml -> ./config.yaml
// -> embedded default. Only an explicitly requested file that cannot
// be read or parsed is an error; the fallback chain is silent.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return applyFallbacks(cfg), nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return applyFallbacks(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return applyFallbacks(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return applyFallbacks(cfg), nil
}

// userConfigPath returns the per-user config path, or empty when the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui2048", "config.yaml")
}

// applyFallbacks fills zero values from the hardcoded defaults so a
// partial config file stays usable.
func applyFallbacks(cfg Config) Config {
	def := Default()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = def.Database.Path
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = def.Server.Address
	}
	if cfg.Server.IdleTimeoutMinutes <= 0 {
		cfg.Server.IdleTimeoutMinutes = def.Server.IdleTimeoutMinutes
	}
	return cfg
}
