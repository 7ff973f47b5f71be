package platform

import "github.com/mj1618/pinwin/internal/model"

// Enumerator reads top-level window state from the OS windowing layer.
// All methods are read-only.
type Enumerator interface {
	// TopLevelWindows returns the handles of all top-level windows in
	// enumeration order.
	TopLevelWindows() ([]model.Handle, error)

	// ForegroundWindow returns the handle of the active window, or 0 when no
	// window has focus.
	ForegroundWindow() (model.Handle, error)

	// Describe returns the attributes of one window. It returns
	// ErrInvalidHandle when the window no longer exists.
	Describe(h model.Handle) (WindowInfo, error)

	// ProcessName resolves a process id to its executable name.
	ProcessName(pid int) (string, error)
}

// WindowManager changes window focus and stacking.
type WindowManager interface {
	// IsWindow reports whether h still refers to a live window.
	IsWindow(h model.Handle) bool

	// Restore un-minimizes a window. It is a no-op for windows that are not
	// minimized.
	Restore(h model.Handle) error

	// Activate brings a window to the foreground.
	Activate(h model.Handle) error

	// SetTopmost sets or clears the always-on-top flag of a window.
	SetTopmost(h model.Handle, on bool) error
}
