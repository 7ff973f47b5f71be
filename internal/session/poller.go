package session

import (
	"context"
	"sync"
	"time"

	"github.com/mj1618/pinwin/internal/model"
	"github.com/pkg/errors"
)

// DefaultInterval is the poll period used when none is configured.
const DefaultInterval = 500 * time.Millisecond

// PassFunc runs one reconciliation pass.
type PassFunc func(ctx context.Context) error

// Poller calls a PassFunc immediately and then once per interval. Passes
// never overlap: ticks that fire while a pass runs collapse into one.
type Poller struct {
	pass PassFunc

	mu       sync.Mutex
	interval time.Duration
	reset    chan time.Duration
}

// NewPoller creates a poller. A non-positive interval means DefaultInterval.
func NewPoller(interval time.Duration, pass PassFunc) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		pass:     pass,
		interval: interval,
		reset:    make(chan time.Duration, 1),
	}
}

// Interval returns the current poll period.
func (p *Poller) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

// Reset changes the poll period, taking effect from the next tick.
// Non-positive values are ignored.
func (p *Poller) Reset(d time.Duration) {
	if d <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.interval = d
	// Only the latest period matters; drop a pending one.
	select {
	case <-p.reset:
	default:
	}
	p.reset <- d
}

// Run polls until ctx ends or the pass reports ErrClosed. Pass errors are
// otherwise left to the PassFunc to report.
func (p *Poller) Run(ctx context.Context) error {
	if err := p.runPass(ctx); err != nil {
		return err
	}
	ticker := time.NewTicker(p.Interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d := <-p.reset:
			ticker.Reset(d)
		case <-ticker.C:
			if err := p.runPass(ctx); err != nil {
				return err
			}
		}
	}
}

func (p *Poller) runPass(ctx context.Context) error {
	err := p.pass(ctx)
	if errors.Is(err, ErrClosed) {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}

// NewPoller returns a poller that refreshes s using the view returned by
// view at the start of each pass, and hands every result to report.
func (s *Session) NewPoller(interval time.Duration, view func() model.View, report func(model.Reconciliation, error)) *Poller {
	return NewPoller(interval, func(ctx context.Context) error {
		v := model.View{Selection: model.NoSelection}
		if view != nil {
			v = view()
		}
		rec, err := s.Refresh(ctx, v)
		if report != nil && ctx.Err() == nil {
			report(rec, err)
		}
		return err
	})
}
