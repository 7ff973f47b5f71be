// Package server exposes the window session as MCP tools.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/pinwin/internal/session"
	"github.com/mj1618/pinwin/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server around a session.
type Server struct {
	sess    *session.Session
	backend string
	cache   *listCache
	mcp     *mcpserver.MCPServer
}

// New creates an MCP server with all pinwin tools registered. backend names
// the platform provider and is reported by the list tool.
func New(sess *session.Session, backend string, cfg Config) *Server {
	s := &Server{
		sess:    sess,
		backend: backend,
		cache:   newListCache(sess, cfg.CacheTTL),
	}
	s.mcp = mcpserver.NewMCPServer(
		"pinwin",
		version.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	s.registerTools()
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcpserver.MCPServer {
	return s.mcp
}

// Serve runs the configured transport until ctx ends.
func (s *Server) Serve(ctx context.Context, cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		errCh := make(chan error, 1)
		go func() {
			slog.Info("server: listening", "port", cfg.Port)
			errCh <- httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
		}()
		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		}
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// list
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List the visible top-level application windows, sorted by title. Each window has a handle, title, topmost flag, foreground flag, owning process and highlight."),
			mcp.WithString("selected", mcp.Description("Handle to resolve to an index in the result (decimal or 0x hex)")),
			mcp.WithBoolean("refresh", mcp.Description("Force a fresh enumeration instead of a cached list")),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.handleList,
	)

	// focus
	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Restore a window if it is minimized and bring it to the foreground"),
			mcp.WithString("handle", mcp.Required(), mcp.Description("Window handle from list")),
		),
		s.handleFocus,
	)

	// pin
	s.mcp.AddTool(
		mcp.NewTool("pin",
			mcp.WithDescription("Make a window always-on-top"),
			mcp.WithString("handle", mcp.Required(), mcp.Description("Window handle from list")),
		),
		s.handlePin,
	)

	// unpin
	s.mcp.AddTool(
		mcp.NewTool("unpin",
			mcp.WithDescription("Clear a window's always-on-top flag"),
			mcp.WithString("handle", mcp.Required(), mcp.Description("Window handle from list")),
		),
		s.handleUnpin,
	)

	// is_topmost
	s.mcp.AddTool(
		mcp.NewTool("is_topmost",
			mcp.WithDescription("Report whether a window was always-on-top as of the latest refresh"),
			mcp.WithString("handle", mcp.Required(), mcp.Description("Window handle from list")),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.handleIsTopmost,
	)
}
