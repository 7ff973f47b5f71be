//go:build windows

package win32

import (
	"errors"
	"testing"

	"github.com/mj1618/pinwin/internal/platform"
	"golang.org/x/sys/windows"
)

func TestMapError(t *testing.T) {
	if err := mapError("SetWindowPos", windows.ERROR_INVALID_WINDOW_HANDLE); !errors.Is(err, platform.ErrInvalidHandle) {
		t.Errorf("got %v, want ErrInvalidHandle", err)
	}
	if err := mapError("SetWindowPos", windows.ERROR_ACCESS_DENIED); !errors.Is(err, platform.ErrAccessDenied) {
		t.Errorf("got %v, want ErrAccessDenied", err)
	}
}

func TestIsWindow_Zero(t *testing.T) {
	wm := NewWindowManager(NewReader())
	if wm.IsWindow(0) {
		t.Error("handle 0 should not be a window")
	}
}

func TestTopLevelWindows(t *testing.T) {
	handles, err := NewReader().TopLevelWindows()
	if err != nil {
		t.Fatalf("TopLevelWindows: %v", err)
	}
	for _, h := range handles {
		if h == 0 {
			t.Error("enumeration returned a zero handle")
		}
	}
}

func TestActivate(t *testing.T) {
	const hwnd = 0x1234
	tests := []struct {
		name     string
		setOK    bool
		setErr   error
		alive    bool
		switched bool
		wantErr  error
	}{
		{name: "set foreground", setOK: true, alive: true},
		{name: "switch fallback", alive: true, switched: true},
		{name: "refused", alive: true, setErr: windows.Errno(0), wantErr: platform.ErrAccessDenied},
		{name: "refused with errno", alive: true, setErr: windows.ERROR_ACCESS_DENIED, wantErr: platform.ErrAccessDenied},
		{name: "closed", wantErr: platform.ErrInvalidHandle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fg uintptr
			a := activator{
				setForeground: func(uintptr) (bool, error) { return tt.setOK, tt.setErr },
				switchTo: func(h uintptr) {
					if tt.switched {
						fg = h
					}
				},
				foreground: func() uintptr { return fg },
				isWindow:   func(uintptr) bool { return tt.alive },
			}
			err := a.activate(hwnd)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("got %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
