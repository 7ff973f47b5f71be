package model

import (
	"sync/atomic"
	"time"
)

// Generation is one immutable Registry entry.
type Generation struct {
	Reconciliation
	Foreground Handle
	UpdatedAt  time.Time
}

// Registry holds the latest reconciliation. It has a single writer and any
// number of readers; a generation is swapped in whole, so readers never see
// a partially updated list.
type Registry struct {
	current atomic.Pointer[Generation]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.current.Store(&Generation{
		Reconciliation: Reconciliation{
			Windows:       []WindowRecord{},
			SelectedIndex: NoIndex,
			Highlights:    map[Handle]Highlight{},
		},
	})
	return r
}

// Store replaces the current generation, stamping rec with the next Seq.
func (r *Registry) Store(rec Reconciliation, foreground Handle, at time.Time) *Generation {
	rec.Seq = r.Load().Seq + 1
	g := &Generation{Reconciliation: rec, Foreground: foreground, UpdatedAt: at}
	r.current.Store(g)
	return g
}

// Load returns the current generation. It must not be modified.
func (r *Registry) Load() *Generation {
	return r.current.Load()
}

// Lookup returns the record for h in the current generation.
func (r *Registry) Lookup(h Handle) (WindowRecord, bool) {
	g := r.Load()
	if i := g.Find(h); i != NoIndex {
		return g.Windows[i], true
	}
	return WindowRecord{}, false
}

// IsTopmost reports whether h is topmost in the current generation. The
// second result is false when h is not listed.
func (r *Registry) IsTopmost(h Handle) (topmost bool, ok bool) {
	w, ok := r.Lookup(h)
	return w.Topmost, ok
}

// Age returns how long ago the current generation was stored. An empty
// registry reports an unbounded age.
func (r *Registry) Age(now time.Time) time.Duration {
	g := r.Load()
	if g.UpdatedAt.IsZero() {
		return time.Duration(1<<63 - 1)
	}
	return now.Sub(g.UpdatedAt)
}
