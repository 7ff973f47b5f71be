//go:build linux

package x11

import (
	"github.com/jezek/xgb/xproto"
	"github.com/mj1618/pinwin/internal/model"
)

// EWMH constants for client messages.
const (
	stateRemove = 0
	stateAdd    = 1

	sourcePager = 2
)

// WindowManager implements platform.WindowManager by sending EWMH requests
// to the running window manager. Requests are asynchronous: the window
// manager applies them after SendEvent returns.
type WindowManager struct {
	client *Client
}

// NewWindowManager creates a new X11 window manager.
func NewWindowManager(client *Client) *WindowManager {
	return &WindowManager{client: client}
}

func (wm *WindowManager) IsWindow(h model.Handle) bool {
	_, err := xproto.GetWindowAttributes(wm.client.conn, xproto.Window(h)).Reply()
	return err == nil
}

func (wm *WindowManager) Restore(h model.Handle) error {
	w := xproto.Window(h)
	state, err := wm.client.getAtoms(w, "_NET_WM_STATE")
	if err != nil {
		return mapError("read _NET_WM_STATE", err)
	}
	if !wm.client.hasAtom(state, "_NET_WM_STATE_HIDDEN") {
		return nil
	}
	return mapError("MapWindow", xproto.MapWindowChecked(wm.client.conn, w).Check())
}

func (wm *WindowManager) Activate(h model.Handle) error {
	return wm.client.sendRootMessage(xproto.Window(h), "_NET_ACTIVE_WINDOW", sourcePager, xproto.TimeCurrentTime)
}

func (wm *WindowManager) SetTopmost(h model.Handle, on bool) error {
	action := uint32(stateRemove)
	if on {
		action = stateAdd
	}
	return wm.client.sendRootMessage(xproto.Window(h), "_NET_WM_STATE",
		action, uint32(wm.client.atoms["_NET_WM_STATE_ABOVE"]), 0, sourcePager)
}
