package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mj1618/pinwin/internal/config"
	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/session"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

// Run shows the window list until the user quits or ctx ends. A poller keeps
// the list current, and edits to the config file at configPath retune the
// poll interval and colors.
func Run(ctx context.Context, sess *session.Session, cfg *config.Config, configPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lipgloss.SetColorProfile(termenv.EnvColorProfile())

	m := New(ctx, sess, NewStyles(cfg.UI))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	poller := sess.NewPoller(cfg.Poll.Interval, m.CurrentView, func(rec model.Reconciliation, err error) {
		p.Send(PassMsg{Rec: rec, Err: err})
	})
	go func() {
		if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Warn("tui: poller stopped", "error", err)
		}
	}()

	if err := config.Watch(ctx, configPath, func(c *config.Config) {
		poller.Reset(c.Poll.Interval)
		p.Send(ConfigMsg{Config: c})
	}); err != nil {
		slog.Debug("tui: config watch disabled", "error", err)
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
