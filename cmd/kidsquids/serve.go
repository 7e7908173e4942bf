package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kidsquids/internal/config"
	"github.com/vovakirdan/kidsquids/internal/platform/tui"
	"github.com/vovakirdan/kidsquids/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the KidsQuids SSH server",
	Long: `Start an SSH server that lets players connect and play.

Each SSH connection gets its own game. The SSH user name is the player
profile, so progress follows the name used to connect.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses the configured key, generated on first start

Examples:
  kidsquids serve                           # Listen on the configured address
  kidsquids serve --ssh :2222               # Listen on port 2222
  kidsquids serve --host-key ./my_host_key  # Use specific host key

Players connect with (the terminal must support mouse reporting):
  ssh anna@localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	if cmd.Flags().Changed("ssh") {
		cfg.SSH.Addr = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.SSH.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}

	logger, _ := newLogger(cfg, false)

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("progress is kept in memory", "error", err)
		store = nil
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Addr,
		HostKeyPath: config.ExpandHome(cfg.SSH.HostKey),
		IdleTimeout: cfg.SSH.IdleTimeout,
		Runtime:     cfg.Runtime(),
		Levels:      loadLevels(cfg),
		ShotDir:     config.UserPath("snapshots"),
	}, store, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting KidsQuids SSH server on %s\n", cfg.SSH.Addr)
	fmt.Println("Press Ctrl+C to stop")

	runErr := server.ListenAndServe(context.Background())
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", runErr)
		os.Exit(1)
	}
}
