package model

import (
	"sort"
	"strings"
)

// NoIndex is the SelectedIndex of a reconciliation without a selection.
const NoIndex = -1

// Reconciliation is the result of merging one enumeration into the view.
type Reconciliation struct {
	Windows       []WindowRecord       `yaml:"windows"    json:"windows"`
	SelectedIndex int                  `yaml:"selected"   json:"selected"`
	Highlights    map[Handle]Highlight `yaml:"highlights" json:"highlights"`
	Scroll        float64              `yaml:"scroll"     json:"scroll"`

	// Seq numbers published generations in order; zero if never published.
	Seq uint64 `yaml:"-" json:"-"`
}

// Selected returns the selected record, if any.
func (r Reconciliation) Selected() (WindowRecord, bool) {
	if r.SelectedIndex < 0 || r.SelectedIndex >= len(r.Windows) {
		return WindowRecord{}, false
	}
	return r.Windows[r.SelectedIndex], true
}

// Find returns the index of the record with handle h, or NoIndex.
func (r Reconciliation) Find(h Handle) int {
	for i, w := range r.Windows {
		if w.Handle == h {
			return i
		}
	}
	return NoIndex
}

// Eligible reports whether a raw window may be listed: it needs a non-blank
// title, must be visible and must be taskbar-eligible.
func Eligible(w RawWindow) bool {
	return strings.TrimSpace(w.Title) != "" && w.Visible && w.TaskbarEligible
}

// Classify returns the highlight of a record. Foreground wins over topmost.
func Classify(w WindowRecord) Highlight {
	switch {
	case w.Foreground:
		return HighlightForeground
	case w.Topmost:
		return HighlightTopmost
	default:
		return HighlightNone
	}
}

// Reconcile builds a fresh ordered window list from raw enumeration output.
//
// Duplicates are collapsed by handle (the last occurrence wins, so a handle
// whose latest copy is ineligible is dropped), ineligible windows are
// dropped, and the rest is sorted by case-insensitive title, stable
// on enumeration order. The view's selection is re-resolved by handle and its
// scroll fraction is passed through untouched. Reconcile is pure: identical
// inputs always produce identical outputs.
func Reconcile(raw []RawWindow, foreground Handle, view View) Reconciliation {
	last := make(map[Handle]int, len(raw))
	for i, w := range raw {
		last[w.Handle] = i
	}

	windows := make([]WindowRecord, 0, len(last))
	for i, w := range raw {
		if last[w.Handle] != i || !Eligible(w) {
			continue
		}
		process := w.Process
		if process == "" {
			process = ProcessUnknown
		}
		windows = append(windows, WindowRecord{
			Handle:     w.Handle,
			Title:      strings.TrimSpace(w.Title),
			Topmost:    w.Topmost,
			Foreground: foreground != 0 && w.Handle == foreground,
			Process:    process,
		})
	}

	sort.SliceStable(windows, func(i, j int) bool {
		return strings.ToLower(windows[i].Title) < strings.ToLower(windows[j].Title)
	})

	highlights := make(map[Handle]Highlight, len(windows))
	selected := NoIndex
	want, hasSelection := view.Selection.Get()
	for i, w := range windows {
		if hl := Classify(w); hl != HighlightNone {
			highlights[w.Handle] = hl
		}
		if hasSelection && w.Handle == want {
			selected = i
		}
	}

	return Reconciliation{
		Windows:       windows,
		SelectedIndex: selected,
		Highlights:    highlights,
		Scroll:        view.Scroll,
	}
}

// Controls is the enablement of the pin and unpin commands.
type Controls struct {
	PinEnabled   bool `yaml:"pin"   json:"pin"`
	UnpinEnabled bool `yaml:"unpin" json:"unpin"`
}

// ControlsFor derives pin/unpin enablement from the selected record.
// Without a selection both are nominally enabled; the caller still has to
// check for a selection before invoking either.
func ControlsFor(r Reconciliation) Controls {
	w, ok := r.Selected()
	if !ok {
		return Controls{PinEnabled: true, UnpinEnabled: true}
	}
	return Controls{PinEnabled: !w.Topmost, UnpinEnabled: w.Topmost}
}
