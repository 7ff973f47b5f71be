package session

import (
	"log/slog"
	"strings"

	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/platform"
	"github.com/pkg/errors"
)

// Snapshot is the raw window state read in one pass.
type Snapshot struct {
	Windows    []model.RawWindow
	Foreground model.Handle
}

// Inspector reads the current window state through a platform Enumerator.
// It never changes window state.
type Inspector struct {
	enum platform.Enumerator
	log  *slog.Logger
}

// NewInspector creates an inspector over enum.
func NewInspector(enum platform.Enumerator, log *slog.Logger) *Inspector {
	if log == nil {
		log = slog.Default()
	}
	return &Inspector{enum: enum, log: log}
}

// Enumerate lists the visible, taskbar-eligible top-level windows with a
// non-blank title, in OS enumeration order, plus the foreground handle.
//
// Windows that disappear mid-pass are skipped and unresolvable owners are
// reported as "Unknown". Only a failure to list windows or to read the
// foreground window fails the pass.
func (in *Inspector) Enumerate() (Snapshot, error) {
	handles, err := in.enum.TopLevelWindows()
	if err != nil {
		return Snapshot{}, &OSQueryError{Op: "list windows", Err: err}
	}

	names := make(map[int]string)
	windows := make([]model.RawWindow, 0, len(handles))
	for _, h := range handles {
		info, err := in.enum.Describe(h)
		if err != nil {
			if !errors.Is(err, platform.ErrInvalidHandle) {
				in.log.Debug("inspector: describe failed", "handle", h, "error", err)
			}
			continue
		}
		w := model.RawWindow{
			Handle:          h,
			Title:           strings.TrimSpace(info.Title),
			Visible:         info.Visible,
			TaskbarEligible: info.TaskbarEligible,
			Topmost:         info.Topmost,
		}
		if !model.Eligible(w) {
			continue
		}
		w.Process = in.processName(info.PID, names)
		windows = append(windows, w)
	}

	fg, err := in.enum.ForegroundWindow()
	if err != nil {
		return Snapshot{}, &OSQueryError{Op: "foreground window", Err: err}
	}
	return Snapshot{Windows: windows, Foreground: fg}, nil
}

// processName resolves pid once per pass; cache holds the names seen so far.
func (in *Inspector) processName(pid int, cache map[int]string) string {
	if name, ok := cache[pid]; ok {
		return name
	}
	name := model.ProcessUnknown
	if pid <= 0 {
		in.log.Debug("inspector: process unresolved", "error",
			&ProcessResolutionError{PID: pid, Err: errors.New("no owning process")})
	} else if n, err := in.enum.ProcessName(pid); err != nil {
		in.log.Debug("inspector: process unresolved", "error", &ProcessResolutionError{PID: pid, Err: err})
	} else if n = strings.TrimSpace(n); n != "" {
		name = n
	}
	cache[pid] = name
	return name
}
