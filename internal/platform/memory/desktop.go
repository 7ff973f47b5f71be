// Package memory provides an in-memory desktop that implements the platform
// interfaces. Tests use it in place of a live window system.
package memory

import (
	"sync"

	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/platform"
	"github.com/pkg/errors"
)

// Window is one simulated top-level window.
type Window struct {
	Handle          model.Handle
	Title           string
	Visible         bool
	TaskbarEligible bool
	Topmost         bool
	Minimized       bool
	PID             int
	// Locked windows reject focus and stacking changes with ErrAccessDenied.
	Locked bool
}

// Desktop is a goroutine-safe simulated window system.
type Desktop struct {
	mu         sync.Mutex
	order      []model.Handle
	windows    map[model.Handle]*Window
	processes  map[int]string
	foreground model.Handle
	next       model.Handle

	// EnumErr, when set, makes TopLevelWindows fail.
	EnumErr error
	// ForegroundErr, when set, makes ForegroundWindow fail.
	ForegroundErr error

	calls map[string]int
}

// New returns an empty desktop.
func New() *Desktop {
	return &Desktop{
		windows:   make(map[model.Handle]*Window),
		processes: make(map[int]string),
		next:      0x10000,
		calls:     make(map[string]int),
	}
}

// Provider wraps the desktop as a platform provider.
func (d *Desktop) Provider() *platform.Provider {
	return &platform.Provider{Enumerator: d, WindowManager: d, Name: "memory"}
}

// Open adds a visible, taskbar-eligible window and returns its handle.
func (d *Desktop) Open(title string, pid int) model.Handle {
	return d.Add(Window{Title: title, Visible: true, TaskbarEligible: true, PID: pid})
}

// Add adds a window. A zero Handle is replaced by a fresh one.
func (d *Desktop) Add(w Window) model.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if w.Handle == 0 {
		d.next++
		w.Handle = d.next
	}
	if _, exists := d.windows[w.Handle]; !exists {
		d.order = append(d.order, w.Handle)
	}
	wCopy := w
	d.windows[w.Handle] = &wCopy
	return w.Handle
}

// Close destroys a window.
func (d *Desktop) Close(h model.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.windows, h)
	for i, o := range d.order {
		if o == h {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	if d.foreground == h {
		d.foreground = 0
	}
}

// Update applies fn to the window with handle h.
func (d *Desktop) Update(h model.Handle, fn func(*Window)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if w, ok := d.windows[h]; ok {
		fn(w)
	}
}

// Window returns a copy of the window with handle h.
func (d *Desktop) Window(h model.Handle) (Window, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.windows[h]
	if !ok {
		return Window{}, false
	}
	return *w, true
}

// SetProcess registers a process name for pid.
func (d *Desktop) SetProcess(pid int, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.processes[pid] = name
}

// SetForeground makes h the foreground window.
func (d *Desktop) SetForeground(h model.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.foreground = h
}

// Calls returns how many times the named method has been called.
func (d *Desktop) Calls(method string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[method]
}

func (d *Desktop) count(method string) {
	d.calls[method]++
}

func (d *Desktop) TopLevelWindows() ([]model.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.count("TopLevelWindows")
	if d.EnumErr != nil {
		return nil, d.EnumErr
	}
	return append([]model.Handle(nil), d.order...), nil
}

func (d *Desktop) ForegroundWindow() (model.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.count("ForegroundWindow")
	if d.ForegroundErr != nil {
		return 0, d.ForegroundErr
	}
	return d.foreground, nil
}

func (d *Desktop) Describe(h model.Handle) (platform.WindowInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.count("Describe")
	w, ok := d.windows[h]
	if !ok {
		return platform.WindowInfo{}, platform.ErrInvalidHandle
	}
	return platform.WindowInfo{
		Title:           w.Title,
		Visible:         w.Visible,
		TaskbarEligible: w.TaskbarEligible,
		Topmost:         w.Topmost,
		Minimized:       w.Minimized,
		PID:             w.PID,
	}, nil
}

func (d *Desktop) ProcessName(pid int) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.count("ProcessName")
	name, ok := d.processes[pid]
	if !ok {
		return "", errors.Errorf("process %d not found", pid)
	}
	return name, nil
}

func (d *Desktop) IsWindow(h model.Handle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.count("IsWindow")
	_, ok := d.windows[h]
	return ok
}

func (d *Desktop) Restore(h model.Handle) error {
	return d.mutate("Restore", h, func(w *Window) { w.Minimized = false })
}

func (d *Desktop) Activate(h model.Handle) error {
	err := d.mutate("Activate", h, func(w *Window) {})
	if err == nil {
		d.mu.Lock()
		d.foreground = h
		d.mu.Unlock()
	}
	return err
}

func (d *Desktop) SetTopmost(h model.Handle, on bool) error {
	return d.mutate("SetTopmost", h, func(w *Window) { w.Topmost = on })
}

func (d *Desktop) mutate(method string, h model.Handle, fn func(*Window)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.count(method)
	w, ok := d.windows[h]
	if !ok {
		return platform.ErrInvalidHandle
	}
	if w.Locked {
		return platform.ErrAccessDenied
	}
	fn(w)
	return nil
}
