package platform

import (
	"runtime"

	"github.com/pkg/errors"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Enumerator    Enumerator
	WindowManager WindowManager
	// Name identifies the backend, e.g. "win32" or "x11".
	Name string
}

var (
	// ErrUnsupported is returned on unsupported platforms.
	ErrUnsupported = errors.Errorf("pinwin is not supported on %s/%s; supported: windows, linux (X11)", runtime.GOOS, runtime.GOARCH)

	// ErrInvalidHandle is returned when a handle no longer refers to a window.
	ErrInvalidHandle = errors.New("invalid window handle")

	// ErrAccessDenied is returned when the OS refuses an operation on a window,
	// typically one owned by a process running with higher privileges.
	ErrAccessDenied = errors.New("access denied")
)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32 and internal/platform/x11.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
