package cmd

import (
	"log/slog"

	"github.com/mj1618/pinwin/internal/journal"
	"github.com/mj1618/pinwin/internal/platform"
	"github.com/mj1618/pinwin/internal/session"
	"github.com/pkg/errors"
)

// app is the backend, session and optional journal behind a command.
type app struct {
	provider *platform.Provider
	session  *session.Session
	journal  *journal.DB
}

// openApp connects to the desktop and starts a session. The command journal
// is attached when enabled in the configuration.
func openApp() (*app, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	a := &app{provider: provider}
	opts := session.Options{Logger: slog.Default()}
	if appConfig.Journal.Enabled {
		db, err := journal.Open(appConfig.JournalPath())
		if err != nil {
			return nil, errors.Wrap(err, "open command journal")
		}
		a.journal = db
		opts.Recorder = journal.NewRepository(db)
	}
	a.session = session.New(provider, opts)
	slog.Debug("app: session started", "backend", provider.Name, "journal", a.journal != nil)
	return a, nil
}

func (a *app) Close() {
	a.session.Close()
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			slog.Warn("app: close journal", "error", err)
		}
	}
}
