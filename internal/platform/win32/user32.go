//go:build windows

package win32

import (
	"github.com/mj1618/pinwin/internal/platform"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procIsIconic                 = user32.NewProc("IsIconic")
	procGetWindow                = user32.NewProc("GetWindow")
	procGetWindowLongW           = user32.NewProc("GetWindowLongW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procShowWindow               = user32.NewProc("ShowWindow")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procSwitchToThisWindow       = user32.NewProc("SwitchToThisWindow")
)

const (
	gwlExStyle = -20
	gwOwner    = 4

	wsExTopmost    = 0x00000008
	wsExToolWindow = 0x00000080
	wsExAppWindow  = 0x00040000

	swRestore = 9

	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpShowWindow = 0x0040

	processQueryLimitedInformation = 0x1000
)

var (
	hwndTopmost   = ^uintptr(0)     // (HWND)-1
	hwndNoTopmost = ^uintptr(0) - 1 // (HWND)-2
)

// windowLong reads a 32-bit window attribute. Extended styles fit in the low
// word, so GetWindowLongW suffices on both 32- and 64-bit Windows.
func windowLong(hwnd uintptr, index int32) uint32 {
	r, _, _ := procGetWindowLongW.Call(hwnd, uintptr(index))
	return uint32(r)
}

// mapError translates a Win32 error into the platform sentinels where one
// applies.
func mapError(op string, err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) {
		switch errno {
		case windows.ERROR_INVALID_WINDOW_HANDLE:
			return errors.Wrap(platform.ErrInvalidHandle, op)
		case windows.ERROR_ACCESS_DENIED:
			return errors.Wrap(platform.ErrAccessDenied, op)
		case 0:
			return errors.Errorf("%s failed", op)
		}
	}
	return errors.Wrap(err, op)
}
