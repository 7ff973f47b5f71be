//go:build linux

package x11

import (
	"errors"
	"testing"

	"github.com/jezek/xgb/xproto"
	"github.com/mj1618/pinwin/internal/platform"
)

func TestNewClient_NoDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	_, err := NewClient()
	if !errors.Is(err, platform.ErrUnsupported) {
		t.Fatalf("got %v, want ErrUnsupported", err)
	}
}

func TestMapError(t *testing.T) {
	if err := mapError("op", nil); err != nil {
		t.Errorf("nil error should map to nil, got %v", err)
	}
	if err := mapError("op", xproto.WindowError{}); !errors.Is(err, platform.ErrInvalidHandle) {
		t.Errorf("BadWindow: got %v, want ErrInvalidHandle", err)
	}
	if err := mapError("op", xproto.AccessError{}); !errors.Is(err, platform.ErrAccessDenied) {
		t.Errorf("BadAccess: got %v, want ErrAccessDenied", err)
	}
}

func TestHasAtom(t *testing.T) {
	c := &Client{atoms: map[string]xproto.Atom{"_NET_WM_STATE_ABOVE": 301}}
	if !c.hasAtom([]xproto.Atom{5, 301}, "_NET_WM_STATE_ABOVE") {
		t.Error("expected ABOVE to be found")
	}
	if c.hasAtom([]xproto.Atom{5}, "_NET_WM_STATE_ABOVE") {
		t.Error("expected ABOVE to be absent")
	}
}

func TestIsVisible(t *testing.T) {
	tests := []struct {
		name      string
		mapState  byte
		hidden    bool
		onDesktop bool
		want      bool
	}{
		{"mapped", xproto.MapStateViewable, false, false, true},
		{"minimized", xproto.MapStateUnmapped, true, true, true},
		{"other workspace", xproto.MapStateUnmapped, false, true, true},
		{"withdrawn", xproto.MapStateUnmapped, false, false, false},
		{"unviewable parent", xproto.MapStateUnviewable, false, false, false},
	}
	for _, tt := range tests {
		if got := isVisible(tt.mapState, tt.hidden, tt.onDesktop); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
