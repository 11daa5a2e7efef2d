package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSSHAddress  string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an SSH server so others can play remotely",
	Long: `Starts an SSH server; anyone who connects gets their own game
session rendered over the wire. Scores from remote sessions land in
the same database as local play.

Example:
  tui2048 serve --ssh :2222
  ssh -p 2222 localhost`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		address := cfg.Server.Address
		if flagSSHAddress != "" {
			address = flagSSHAddress
		}
		hostKey := cfg.Server.HostKey
		if flagHostKey != "" {
			hostKey = flagHostKey
		}
		idleMinutes := cfg.Server.IdleTimeoutMinutes
		if flagIdleTimeout > 0 {
			idleMinutes = flagIdleTimeout
		}

		server, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     address,
			HostKeyPath: hostKey,
			DBPath:      cfg.Database.Path,
			IdleTimeout: time.Duration(idleMinutes) * time.Minute,
			TickRate:    cfg.TickRate,
		})
		if err != nil {
			return err
		}
		return server.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddress, "ssh", "", "Listen address (empty = from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key path (empty = ~/.tui2048/host_key)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle session timeout in minutes (0 = from config)")
}
