//go:build windows

package win32

import (
	"path/filepath"
	"sync"
	"unsafe"

	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/platform"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// Reader implements platform.Enumerator for Windows.
type Reader struct{}

// NewReader creates a new Windows window reader.
func NewReader() *Reader {
	return &Reader{}
}

// Callbacks created by windows.NewCallback are never released, so a single
// enumeration callback is shared and guarded by enumMu.
var (
	enumMu       sync.Mutex
	enumResult   []model.Handle
	enumCallback = windows.NewCallback(func(h uintptr, _ uintptr) uintptr {
		enumResult = append(enumResult, model.Handle(h))
		return 1
	})
)

func (r *Reader) TopLevelWindows() ([]model.Handle, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumResult = nil
	ret, _, err := procEnumWindows.Call(enumCallback, 0)
	handles := enumResult
	enumResult = nil
	if ret == 0 {
		return nil, mapError("EnumWindows", err)
	}
	return handles, nil
}

func (r *Reader) ForegroundWindow() (model.Handle, error) {
	h, _, _ := procGetForegroundWindow.Call()
	return model.Handle(h), nil
}

func (r *Reader) Describe(h model.Handle) (platform.WindowInfo, error) {
	hwnd := uintptr(h)
	if !isWindow(hwnd) {
		return platform.WindowInfo{}, platform.ErrInvalidHandle
	}

	exStyle := windowLong(hwnd, gwlExStyle)
	visible, _, _ := procIsWindowVisible.Call(hwnd)
	iconic, _, _ := procIsIconic.Call(hwnd)

	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))

	return platform.WindowInfo{
		Title:           windowText(hwnd),
		Visible:         visible != 0,
		TaskbarEligible: taskbarEligible(hwnd, exStyle),
		Topmost:         exStyle&wsExTopmost != 0,
		Minimized:       iconic != 0,
		PID:             int(pid),
	}, nil
}

func (r *Reader) ProcessName(pid int) (string, error) {
	if pid <= 0 {
		return "", errors.Errorf("invalid pid %d", pid)
	}
	h, err := windows.OpenProcess(processQueryLimitedInformation, false, uint32(pid))
	if err != nil {
		return "", mapError("OpenProcess", err)
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_LONG_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return "", mapError("QueryFullProcessImageName", err)
	}
	return filepath.Base(windows.UTF16ToString(buf[:size])), nil
}

// taskbarEligible applies the shell's taskbar rule: a window gets a button if
// it has WS_EX_APPWINDOW, or if it is unowned and not a tool window.
func taskbarEligible(hwnd uintptr, exStyle uint32) bool {
	if exStyle&wsExAppWindow != 0 {
		return true
	}
	if exStyle&wsExToolWindow != 0 {
		return false
	}
	owner, _, _ := procGetWindow.Call(hwnd, gwOwner)
	return owner == 0
}

func isWindow(hwnd uintptr) bool {
	r, _, _ := procIsWindow.Call(hwnd)
	return r != 0
}

func windowText(hwnd uintptr) string {
	n, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf)
}
