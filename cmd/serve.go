package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/mj1618/pinwin/internal/config"
	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing pinwin tools",
	Long: `Start a Model Context Protocol (MCP) server with the tools list, focus,
pin, unpin and is_topmost.

A background poller keeps the window list current. The list tool answers
from the latest pass while it is younger than --cache-ttl.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  pinwin serve
  pinwin serve --transport streamable-http --port 8080
  pinwin serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, streamable-http (default from config)")
	serveCmd.Flags().Int("port", 0, "HTTP port for streamable-http transport (default from config)")
	serveCmd.Flags().Int("cache-ttl", -1, "List cache TTL in milliseconds (0 to disable, default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := serverConfig(cmd, appConfig)

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	poller := a.session.NewPoller(appConfig.Poll.Interval, nil, func(_ model.Reconciliation, err error) {
		if err != nil {
			slog.Debug("serve: background pass failed", "error", err)
		}
	})
	go poller.Run(ctx)

	if err := config.Watch(ctx, configPath(), func(c *config.Config) {
		poller.Reset(c.Poll.Interval)
	}); err != nil {
		slog.Debug("serve: config watch disabled", "error", err)
	}

	srv := server.New(a.session, a.provider.Name, cfg)
	slog.Info("serve: starting", "transport", cfg.Transport, "backend", a.provider.Name)
	if err := srv.Serve(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "mcp server")
	}
	return nil
}

// serverConfig overlays explicitly set flags on the serve section of cfg.
func serverConfig(cmd *cobra.Command, cfg *config.Config) server.Config {
	sc := server.Config{
		Transport: cfg.Serve.Transport,
		Port:      cfg.Serve.Port,
		CacheTTL:  cfg.Serve.CacheTTL,
	}
	if t, _ := cmd.Flags().GetString("transport"); t != "" {
		sc.Transport = t
	}
	if p, _ := cmd.Flags().GetInt("port"); p > 0 {
		sc.Port = p
	}
	if ms, _ := cmd.Flags().GetInt("cache-ttl"); ms >= 0 {
		sc.CacheTTL = time.Duration(ms) * time.Millisecond
	}
	return sc
}
