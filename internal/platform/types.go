package platform

import (
	"strconv"
	"strings"

	"github.com/mj1618/pinwin/internal/model"
	"github.com/pkg/errors"
)

// WindowInfo holds the attributes of one top-level window.
type WindowInfo struct {
	Title           string
	Visible         bool
	TaskbarEligible bool
	Topmost         bool
	Minimized       bool
	PID             int // 0 when unknown
}

// ParseHandle parses a window handle given as decimal or 0x-prefixed hex.
func ParseHandle(s string) (model.Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty window handle")
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Errorf("invalid window handle %q: expected decimal or 0x hex", s)
	}
	if v == 0 {
		return 0, errors.Errorf("invalid window handle %q: zero is not a window", s)
	}
	return model.Handle(v), nil
}
