// Package config provides YAML-based configuration for the platform
// shell: tick rate, score database location, and SSH server settings.
// Game rules are fixed and not configurable.
package config

// Config is the top-level configuration.
type Config struct {
	TickRate int            `yaml:"tick_rate"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
}

// DatabaseConfig locates the score database.
type DatabaseConfig struct {
	// Path to the SQLite file; a leading ~ expands to the home directory.
	Path string `yaml:"path"`
}

// ServerConfig configures the SSH server for remote play.
type ServerConfig struct {
	// Address is the host:port to listen on.
	Address string `yaml:"address"`

	// HostKey is the path to the host key file. Empty means
	// auto-generate one under ~/.tui2048.
	HostKey string `yaml:"host_key"`

	// IdleTimeoutMinutes closes idle sessions after this many minutes.
	IdleTimeoutMinutes int `yaml:"idle_timeout_minutes"`
}

// Default returns the hardcoded fallback configuration, used when no
// config file can be read at all.
func Default() Config {
	return Config{
		TickRate: 60,
		Database: DatabaseConfig{
			Path: "~/.tui2048/scores.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			HostKey:            "",
			IdleTimeoutMinutes: 30,
		},
	}
}
