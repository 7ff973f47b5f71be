package model

import (
	"fmt"
	"strconv"
	"time"
)

// Handle is an opaque OS window identifier, stable for the window's lifetime.
// Zero never refers to a window.
type Handle uint64

// String formats the handle in hex, the way window ids are usually shown.
func (h Handle) String() string {
	return fmt.Sprintf("0x%x", uint64(h))
}

// MarshalText writes the handle in hex, so YAML and JSON output match String.
func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText accepts decimal or 0x-prefixed hex.
func (h *Handle) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 0, 64)
	if err != nil {
		return fmt.Errorf("invalid window handle %q", text)
	}
	*h = Handle(v)
	return nil
}

// ProcessUnknown is the owner name used when the owning process cannot be resolved.
const ProcessUnknown = "Unknown"

// RawWindow is one enumerated top-level window before filtering.
type RawWindow struct {
	Handle          Handle
	Title           string
	Visible         bool
	TaskbarEligible bool
	Topmost         bool
	Process         string
}

// WindowRecord represents one listed window at a point in time.
type WindowRecord struct {
	Handle     Handle `yaml:"handle"               json:"handle"`
	Title      string `yaml:"title"                json:"title"`
	Topmost    bool   `yaml:"topmost"              json:"topmost"`
	Foreground bool   `yaml:"foreground,omitempty" json:"foreground,omitempty"`
	Process    string `yaml:"process"              json:"process"`
}

// Highlight is the display class of a listed window.
type Highlight string

const (
	HighlightNone       Highlight = ""
	HighlightForeground Highlight = "foreground"
	HighlightTopmost    Highlight = "topmost"
)

// Selection is an optional window handle chosen by the user.
type Selection struct {
	handle Handle
	ok     bool
}

// NoSelection is the empty selection.
var NoSelection = Selection{}

// Selected returns a selection of h. A zero handle yields NoSelection.
func Selected(h Handle) Selection {
	if h == 0 {
		return NoSelection
	}
	return Selection{handle: h, ok: true}
}

// Get returns the selected handle and whether there is one.
func (s Selection) Get() (Handle, bool) {
	return s.handle, s.ok
}

// View is the presentation state threaded through a reconciliation pass.
// Scroll is a fraction in [0, 1] owned by the presentation layer.
type View struct {
	Selection Selection
	Scroll    float64
}

// CommandEvent describes one executed window command.
type CommandEvent struct {
	Time    time.Time
	Action  string
	Handle  Handle
	Title   string
	Process string
	OK      bool
	Error   string
}
