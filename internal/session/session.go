// Package session owns the live window list. It runs reconciliation passes
// and window commands on a single task loop and publishes each result to a
// model.Registry that presentation layers read.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/platform"
)

// Recorder receives an event for every executed command.
type Recorder interface {
	Record(ctx context.Context, ev model.CommandEvent) error
}

// Options configures a Session. The zero value is usable.
type Options struct {
	Logger   *slog.Logger
	Recorder Recorder
	// Now overrides the clock used to stamp generations and events.
	Now func() time.Time
}

// Session couples a platform backend to a Registry.
type Session struct {
	inspector *Inspector
	enum      platform.Enumerator
	wm        platform.WindowManager
	registry  *model.Registry
	loop      *Loop
	recorder  Recorder
	log       *slog.Logger
	now       func() time.Time
}

// New creates a session over p and starts its task loop. Call Close to stop it.
func New(p *platform.Provider, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		inspector: NewInspector(p.Enumerator, log),
		enum:      p.Enumerator,
		wm:        p.WindowManager,
		registry:  model.NewRegistry(),
		loop:      NewLoop(),
		recorder:  opts.Recorder,
		log:       log,
		now:       now,
	}
}

// Close stops the task loop. Later calls fail with ErrClosed.
func (s *Session) Close() {
	s.loop.Close()
}

// Registry returns the registry this session publishes to.
func (s *Session) Registry() *model.Registry {
	return s.registry
}

// Current returns the latest published generation.
func (s *Session) Current() *model.Generation {
	return s.registry.Load()
}

// IsTopmost reports the topmost flag of h as of the latest pass. ok is false
// when h is not listed.
func (s *Session) IsTopmost(h model.Handle) (topmost bool, ok bool) {
	return s.registry.IsTopmost(h)
}

// Controls returns which commands apply to view's selection in the current
// generation.
func (s *Session) Controls(view model.View) model.Controls {
	return model.ControlsFor(s.Project(view))
}

// Project re-resolves view against the current generation without touching
// the OS.
func (s *Session) Project(view model.View) model.Reconciliation {
	rec := s.registry.Load().Reconciliation
	rec.SelectedIndex = model.NoIndex
	if h, ok := view.Selection.Get(); ok {
		rec.SelectedIndex = rec.Find(h)
	}
	rec.Scroll = view.Scroll
	return rec
}

// Refresh runs one reconciliation pass and publishes it. On failure the
// Registry is unchanged and the returned reconciliation is the previous
// generation resolved against view.
func (s *Session) Refresh(ctx context.Context, view model.View) (model.Reconciliation, error) {
	var (
		rec model.Reconciliation
		err error
	)
	if lerr := s.loop.Do(ctx, func(context.Context) {
		rec, err = s.pass(view)
	}); lerr != nil {
		return s.Project(view), lerr
	}
	return rec, err
}

// pass must only run on the loop.
func (s *Session) pass(view model.View) (model.Reconciliation, error) {
	snap, err := s.inspector.Enumerate()
	if err != nil {
		s.log.Warn("session: pass failed", "error", err)
		return s.Project(view), err
	}
	rec := model.Reconcile(snap.Windows, snap.Foreground, view)
	rec = s.registry.Store(rec, snap.Foreground, s.now()).Reconciliation
	s.log.Debug("session: pass", "windows", len(rec.Windows), "foreground", snap.Foreground)
	return rec, nil
}

// Focus restores h if it is minimized and brings it to the foreground.
func (s *Session) Focus(ctx context.Context, h model.Handle, view model.View) (model.Reconciliation, error) {
	return s.command(ctx, ActionFocus, h, view, func() error {
		info, err := s.enum.Describe(h)
		if err != nil {
			return err
		}
		if info.Minimized {
			if err := s.wm.Restore(h); err != nil {
				return err
			}
		}
		return s.wm.Activate(h)
	})
}

// Pin makes h always-on-top.
func (s *Session) Pin(ctx context.Context, h model.Handle, view model.View) (model.Reconciliation, error) {
	return s.command(ctx, ActionPin, h, view, func() error {
		return s.setTopmost(h, true)
	})
}

// Unpin clears h's always-on-top flag.
func (s *Session) Unpin(ctx context.Context, h model.Handle, view model.View) (model.Reconciliation, error) {
	return s.command(ctx, ActionUnpin, h, view, func() error {
		return s.setTopmost(h, false)
	})
}

func (s *Session) setTopmost(h model.Handle, on bool) error {
	info, err := s.enum.Describe(h)
	if err != nil {
		return err
	}
	if info.Topmost == on {
		s.log.Debug("session: topmost unchanged", "handle", h, "topmost", on)
		return nil
	}
	return s.wm.SetTopmost(h, on)
}

// command runs fn against h, then a forced pass with view. A command error
// takes precedence over a pass error.
func (s *Session) command(ctx context.Context, action Action, h model.Handle, view model.View, fn func() error) (model.Reconciliation, error) {
	before, _ := s.registry.Lookup(h)

	var (
		rec     model.Reconciliation
		cmdErr  error
		passErr error
	)
	if lerr := s.loop.Do(ctx, func(context.Context) {
		if !s.wm.IsWindow(h) {
			cmdErr = &CommandError{Action: action, Handle: h, Err: platform.ErrInvalidHandle}
		} else if err := fn(); err != nil {
			cmdErr = &CommandError{Action: action, Handle: h, Err: err}
		}
		rec, passErr = s.pass(view)
	}); lerr != nil {
		return s.Project(view), lerr
	}

	ev := model.CommandEvent{
		Time:    s.now(),
		Action:  string(action),
		Handle:  h,
		Title:   before.Title,
		Process: before.Process,
		OK:      cmdErr == nil,
	}
	if ev.Title == "" {
		if after, ok := s.registry.Lookup(h); ok {
			ev.Title, ev.Process = after.Title, after.Process
		}
	}
	if cmdErr != nil {
		ev.Error = cmdErr.Error()
		s.log.Warn("session: command failed", "action", action, "handle", h, "error", cmdErr)
	} else {
		s.log.Info("session: command", "action", action, "handle", h, "title", ev.Title)
	}
	if s.recorder != nil {
		if err := s.recorder.Record(ctx, ev); err != nil {
			s.log.Warn("session: journal write failed", "error", err)
		}
	}

	if cmdErr != nil {
		return rec, cmdErr
	}
	return rec, passErr
}
