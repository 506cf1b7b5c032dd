package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushbox/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pushbox SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the pack menu. Progress is
stored per server, so every user shares the same solved levels and best
move counts.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses ssh.host_key from the config (~/.pushbox/ssh_host_ed25519)
  - A missing key file is generated on first start

Examples:
  pushbox serve                           # Listen on :23234
  pushbox serve --ssh :2222               # Listen on port 2222
  pushbox serve --host-key ./my_host_key  # Use specific host key
  pushbox serve --db ./progress.db        # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	a, err := setup(logToStderr, true)
	if err != nil {
		fail("%v", err)
	}
	defer a.Close()

	cfg, err := tui.SSHConfigFrom(a.cfg, a.logger)
	if err != nil {
		a.Close()
		fail("%v", err)
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg, a.store, a.logger)
	if err != nil {
		a.Close()
		fail("creating server: %v", err)
	}

	port := "23234"
	if _, p, err := net.SplitHostPort(cfg.Address); err == nil && p != "" {
		port = p
	}
	fmt.Printf("Starting pushbox SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		a.Close()
		fail("server: %v", err)
	}
}
