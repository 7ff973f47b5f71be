//go:build linux

package x11

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/platform"
	"github.com/pkg/errors"
)

// Window types that never get a taskbar entry.
var nonTaskbarTypes = []string{
	"_NET_WM_WINDOW_TYPE_DESKTOP",
	"_NET_WM_WINDOW_TYPE_DOCK",
	"_NET_WM_WINDOW_TYPE_TOOLBAR",
	"_NET_WM_WINDOW_TYPE_MENU",
	"_NET_WM_WINDOW_TYPE_SPLASH",
	"_NET_WM_WINDOW_TYPE_UTILITY",
}

// TopLevelWindows returns the window manager's managed client list.
func (c *Client) TopLevelWindows() ([]model.Handle, error) {
	data, err := c.getProperty(c.root, "_NET_CLIENT_LIST", xproto.AtomWindow, 1<<16)
	if err != nil {
		return nil, errors.Wrap(err, "read _NET_CLIENT_LIST")
	}
	handles := make([]model.Handle, 0, len(data)/4)
	for i := 0; i+4 <= len(data); i += 4 {
		handles = append(handles, model.Handle(xgb.Get32(data[i:])))
	}
	return handles, nil
}

func (c *Client) ForegroundWindow() (model.Handle, error) {
	data, err := c.getProperty(c.root, "_NET_ACTIVE_WINDOW", xproto.AtomWindow, 1)
	if err != nil {
		return 0, errors.Wrap(err, "read _NET_ACTIVE_WINDOW")
	}
	if len(data) < 4 {
		return 0, nil
	}
	return model.Handle(xgb.Get32(data)), nil
}

func (c *Client) Describe(h model.Handle) (platform.WindowInfo, error) {
	w := xproto.Window(h)

	attrs, err := xproto.GetWindowAttributes(c.conn, w).Reply()
	if err != nil {
		return platform.WindowInfo{}, mapError("GetWindowAttributes", err)
	}
	title, err := c.windowName(w)
	if err != nil {
		return platform.WindowInfo{}, mapError("read window name", err)
	}
	state, err := c.getAtoms(w, "_NET_WM_STATE")
	if err != nil {
		return platform.WindowInfo{}, mapError("read _NET_WM_STATE", err)
	}
	types, err := c.getAtoms(w, "_NET_WM_WINDOW_TYPE")
	if err != nil {
		return platform.WindowInfo{}, mapError("read _NET_WM_WINDOW_TYPE", err)
	}

	hidden := c.hasAtom(state, "_NET_WM_STATE_HIDDEN")
	eligible := !c.hasAtom(state, "_NET_WM_STATE_SKIP_TASKBAR")
	for _, t := range nonTaskbarTypes {
		if c.hasAtom(types, t) {
			eligible = false
		}
	}

	desktop, err := c.getProperty(w, "_NET_WM_DESKTOP", xproto.AtomCardinal, 1)
	onDesktop := err == nil && len(desktop) >= 4

	info := platform.WindowInfo{
		Title:           title,
		Visible:         isVisible(attrs.MapState, hidden, onDesktop),
		TaskbarEligible: eligible,
		Topmost:         c.hasAtom(state, "_NET_WM_STATE_ABOVE"),
		Minimized:       hidden,
	}
	if data, err := c.getProperty(w, "_NET_WM_PID", xproto.AtomCardinal, 1); err == nil && len(data) >= 4 {
		info.PID = int(xgb.Get32(data))
	}
	return info, nil
}

// isVisible reports whether a managed client belongs in the list. Window
// managers unmap minimized clients and clients on other workspaces; both
// still count as visible, like a taskbar entry.
func isVisible(mapState byte, hidden, onDesktop bool) bool {
	return mapState == xproto.MapStateViewable || hidden || onDesktop
}

// ProcessName resolves pid through procfs, preferring the executable's base
// name over the truncated comm field.
func (c *Client) ProcessName(pid int) (string, error) {
	if pid <= 0 {
		return "", errors.Errorf("invalid pid %d", pid)
	}
	if exe, err := os.Readlink(fmt.Sprintf("/proc/%d/exe", pid)); err == nil {
		return filepath.Base(strings.TrimSuffix(exe, " (deleted)")), nil
	}
	comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
	if err != nil {
		if os.IsPermission(err) {
			return "", errors.Wrapf(platform.ErrAccessDenied, "read process %d", pid)
		}
		return "", errors.Wrapf(err, "read process %d", pid)
	}
	return strings.TrimSpace(string(comm)), nil
}
