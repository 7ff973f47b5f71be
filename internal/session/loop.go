package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// ErrClosed is returned when work is submitted to a closed Loop.
var ErrClosed = errors.New("session closed")

// Loop runs submitted tasks one at a time, in submission order, on a single
// goroutine. Every pass and command goes through it, so the Registry has
// exactly one writer.
type Loop struct {
	tasks   chan task
	quit    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

type task struct {
	ctx  context.Context
	fn   func(ctx context.Context)
	done chan struct{}
}

// NewLoop starts a loop.
func NewLoop() *Loop {
	l := &Loop{
		tasks:   make(chan task),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.stopped)
	for {
		select {
		case <-l.quit:
			return
		case t := <-l.tasks:
			// The submitter has already given up on a cancelled task.
			if t.ctx.Err() == nil {
				t.fn(t.ctx)
			}
			close(t.done)
		}
	}
}

// Do runs fn on the loop and waits for it to return. If ctx ends first, Do
// returns ctx.Err() and fn's results must be ignored.
func (l *Loop) Do(ctx context.Context, fn func(ctx context.Context)) error {
	t := task{ctx: ctx, fn: fn, done: make(chan struct{})}
	select {
	case <-l.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	case l.tasks <- t:
	}
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the loop after the running task, if any, completes.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.quit) })
	<-l.stopped
}
