package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mj1618/pinwin/internal/model"
)

func TestPoller_ImmediatePass(t *testing.T) {
	passes := make(chan struct{}, 10)
	p := NewPoller(time.Hour, func(context.Context) error {
		passes <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	select {
	case <-passes:
	case <-time.After(time.Second):
		t.Fatal("expected an immediate pass")
	}
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run: got %v, want context.Canceled", err)
	}
}

func TestPoller_DefaultInterval(t *testing.T) {
	p := NewPoller(0, func(context.Context) error { return nil })
	if p.Interval() != DefaultInterval {
		t.Errorf("got %v, want %v", p.Interval(), DefaultInterval)
	}
}

func TestPoller_NoOverlap(t *testing.T) {
	var active, maxActive, count int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := NewPoller(time.Millisecond, func(context.Context) error {
		n := atomic.AddInt32(&active, 1)
		if n > atomic.LoadInt32(&maxActive) {
			atomic.StoreInt32(&maxActive, n)
		}
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		if atomic.AddInt32(&count, 1) == 5 {
			cancel()
		}
		return nil
	})
	p.Run(ctx)

	if maxActive != 1 {
		t.Errorf("max concurrent passes: got %d, want 1", maxActive)
	}
	if count < 5 {
		t.Errorf("passes: got %d, want at least 5", count)
	}
}

func TestPoller_ErrorsDoNotStop(t *testing.T) {
	var count int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := NewPoller(time.Millisecond, func(context.Context) error {
		if atomic.AddInt32(&count, 1) == 3 {
			cancel()
		}
		return errors.New("transient")
	})
	err := p.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if count < 3 {
		t.Errorf("passes: got %d, want 3", count)
	}
}

func TestPoller_StopsOnClosedSession(t *testing.T) {
	p := NewPoller(time.Millisecond, func(context.Context) error { return ErrClosed })
	if err := p.Run(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("got %v, want ErrClosed", err)
	}
}

func TestPoller_Reset(t *testing.T) {
	passes := make(chan struct{}, 10)
	p := NewPoller(time.Hour, func(context.Context) error {
		passes <- struct{}{}
		return nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	<-passes
	p.Reset(5 * time.Millisecond)
	p.Reset(-1) // ignored
	if p.Interval() != 5*time.Millisecond {
		t.Errorf("Interval: got %v, want 5ms", p.Interval())
	}
	select {
	case <-passes:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a pass after Reset")
	}
}

func TestSession_NewPoller(t *testing.T) {
	s, d, _ := newTestSession(t)
	h := d.Open("Notes", 1)

	results := make(chan model.Reconciliation, 10)
	p := s.NewPoller(5*time.Millisecond,
		func() model.View { return model.View{Selection: model.Selected(h), Scroll: 0.5} },
		func(rec model.Reconciliation, err error) {
			if err == nil {
				results <- rec
			}
		})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	select {
	case rec := <-results:
		if rec.SelectedIndex != 0 || rec.Scroll != 0.5 || len(rec.Windows) != 1 {
			t.Errorf("got %+v", rec)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no pass reported")
	}
	if len(s.Current().Windows) != 1 {
		t.Error("poller should publish to the registry")
	}
}
