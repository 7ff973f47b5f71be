//go:build windows

package win32

import (
	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/platform"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// WindowManager implements platform.WindowManager for Windows.
type WindowManager struct {
	reader *Reader
}

// NewWindowManager creates a new Windows window manager.
func NewWindowManager(reader *Reader) *WindowManager {
	return &WindowManager{reader: reader}
}

func (wm *WindowManager) IsWindow(h model.Handle) bool {
	return isWindow(uintptr(h))
}

func (wm *WindowManager) Restore(h model.Handle) error {
	hwnd := uintptr(h)
	if !isWindow(hwnd) {
		return platform.ErrInvalidHandle
	}
	if iconic, _, _ := procIsIconic.Call(hwnd); iconic == 0 {
		return nil
	}
	// ShowWindow returns the previous visibility, not success.
	procShowWindow.Call(hwnd, swRestore)
	return nil
}

func (wm *WindowManager) Activate(h model.Handle) error {
	return user32Activator.activate(uintptr(h))
}

// activator holds the calls behind Activate.
type activator struct {
	setForeground func(hwnd uintptr) (bool, error)
	switchTo      func(hwnd uintptr)
	foreground    func() uintptr
	isWindow      func(hwnd uintptr) bool
}

var user32Activator = activator{
	setForeground: func(hwnd uintptr) (bool, error) {
		ret, _, err := procSetForegroundWindow.Call(hwnd)
		return ret != 0, err
	},
	switchTo: func(hwnd uintptr) {
		procSwitchToThisWindow.Call(hwnd, 1)
	},
	foreground: func() uintptr {
		ret, _, _ := procGetForegroundWindow.Call()
		return ret
	},
	isWindow: isWindow,
}

// activate makes hwnd the foreground window. When the foreground lock refuses
// SetForegroundWindow it falls back to SwitchToThisWindow, and fails unless
// hwnd actually ends up in the foreground.
func (a activator) activate(hwnd uintptr) error {
	ok, err := a.setForeground(hwnd)
	if ok {
		return nil
	}
	if !a.isWindow(hwnd) {
		return platform.ErrInvalidHandle
	}
	a.switchTo(hwnd)
	if a.foreground() == hwnd {
		return nil
	}
	var errno windows.Errno
	if errors.As(err, &errno) && errno != 0 {
		return mapError("SetForegroundWindow", err)
	}
	return errors.Wrap(platform.ErrAccessDenied, "SetForegroundWindow: activation refused")
}

func (wm *WindowManager) SetTopmost(h model.Handle, on bool) error {
	insertAfter := hwndNoTopmost
	if on {
		insertAfter = hwndTopmost
	}
	ret, _, err := procSetWindowPos.Call(
		uintptr(h),
		insertAfter,
		0, 0, 0, 0,
		swpNoMove|swpNoSize|swpShowWindow,
	)
	if ret == 0 {
		return mapError("SetWindowPos", err)
	}
	return nil
}
