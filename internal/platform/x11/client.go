//go:build linux

package x11

import (
	"os"
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/mj1618/pinwin/internal/platform"
	"github.com/pkg/errors"
)

var atomNames = []string{
	"_NET_CLIENT_LIST",
	"_NET_ACTIVE_WINDOW",
	"_NET_WM_NAME",
	"_NET_WM_PID",
	"_NET_WM_DESKTOP",
	"_NET_WM_STATE",
	"_NET_WM_STATE_ABOVE",
	"_NET_WM_STATE_HIDDEN",
	"_NET_WM_STATE_SKIP_TASKBAR",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DESKTOP",
	"_NET_WM_WINDOW_TYPE_DOCK",
	"_NET_WM_WINDOW_TYPE_TOOLBAR",
	"_NET_WM_WINDOW_TYPE_MENU",
	"_NET_WM_WINDOW_TYPE_SPLASH",
	"_NET_WM_WINDOW_TYPE_UTILITY",
	"UTF8_STRING",
	"WM_NAME",
}

// Client is a connection to the X server's root window. It implements
// platform.Enumerator. xgb connections are safe for concurrent use.
type Client struct {
	conn  *xgb.Conn
	root  xproto.Window
	atoms map[string]xproto.Atom
}

// NewClient connects to the display named by $DISPLAY.
func NewClient() (*Client, error) {
	if os.Getenv("DISPLAY") == "" {
		return nil, errors.Wrap(platform.ErrUnsupported, "DISPLAY is not set")
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, errors.Wrap(err, "connect to X display")
	}

	setup := xproto.Setup(conn)
	c := &Client{
		conn:  conn,
		root:  setup.DefaultScreen(conn).Root,
		atoms: make(map[string]xproto.Atom, len(atomNames)),
	}
	for _, name := range atomNames {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			conn.Close()
			return nil, errors.Wrapf(err, "intern atom %s", name)
		}
		c.atoms[name] = reply.Atom
	}
	return c, nil
}

// Close closes the X connection.
func (c *Client) Close() {
	c.conn.Close()
}

func (c *Client) getProperty(w xproto.Window, name string, typ xproto.Atom, length uint32) ([]byte, error) {
	reply, err := xproto.GetProperty(c.conn, false, w, c.atoms[name], typ, 0, length).Reply()
	if err != nil {
		return nil, err
	}
	return reply.Value, nil
}

// getAtoms reads a 32-bit list property such as _NET_WM_STATE.
func (c *Client) getAtoms(w xproto.Window, name string) ([]xproto.Atom, error) {
	data, err := c.getProperty(w, name, xproto.GetPropertyTypeAny, 64)
	if err != nil {
		return nil, err
	}
	atoms := make([]xproto.Atom, 0, len(data)/4)
	for i := 0; i+4 <= len(data); i += 4 {
		atoms = append(atoms, xproto.Atom(xgb.Get32(data[i:])))
	}
	return atoms, nil
}

func (c *Client) hasAtom(list []xproto.Atom, name string) bool {
	want := c.atoms[name]
	for _, a := range list {
		if a == want {
			return true
		}
	}
	return false
}

func (c *Client) windowName(w xproto.Window) (string, error) {
	data, err := c.getProperty(w, "_NET_WM_NAME", c.atoms["UTF8_STRING"], 1024)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		data, err = c.getProperty(w, "WM_NAME", xproto.GetPropertyTypeAny, 1024)
		if err != nil {
			return "", err
		}
	}
	return strings.TrimRight(string(data), "\x00"), nil
}

// sendRootMessage delivers an EWMH client message about w to the window
// manager.
func (c *Client) sendRootMessage(w xproto.Window, msgType string, data ...uint32) error {
	payload := make([]uint32, 5)
	copy(payload, data)
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w,
		Type:   c.atoms[msgType],
		Data:   xproto.ClientMessageDataUnionData32New(payload),
	}
	mask := uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)
	err := xproto.SendEventChecked(c.conn, false, c.root, mask, string(ev.Bytes())).Check()
	return mapError(msgType, err)
}

// mapError translates X protocol errors into the platform sentinels.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	switch err.(type) {
	case xproto.WindowError, xproto.DrawableError:
		return errors.Wrap(platform.ErrInvalidHandle, op)
	case xproto.AccessError:
		return errors.Wrap(platform.ErrAccessDenied, op)
	}
	return errors.Wrap(err, op)
}
