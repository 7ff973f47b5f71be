package session

import (
	"testing"

	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/platform"
	"github.com/mj1618/pinwin/internal/platform/memory"
)

// vanishing reports one listed window as already destroyed.
type vanishing struct {
	*memory.Desktop
	gone model.Handle
}

func (v vanishing) Describe(h model.Handle) (platform.WindowInfo, error) {
	if h == v.gone {
		return platform.WindowInfo{}, platform.ErrInvalidHandle
	}
	return v.Desktop.Describe(h)
}

func TestInspector_SkipsVanishedWindow(t *testing.T) {
	d := memory.New()
	keep := d.Open("Keep", 1)
	gone := d.Open("Gone", 1)

	snap, err := NewInspector(vanishing{Desktop: d, gone: gone}, quietLogger()).Enumerate()
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Windows) != 1 || snap.Windows[0].Handle != keep {
		t.Errorf("got %+v, want only Keep", snap.Windows)
	}
}

func TestInspector_ResolvesEachProcessOnce(t *testing.T) {
	d := memory.New()
	d.SetProcess(7, "term")
	d.Open("one", 7)
	d.Open("two", 7)
	d.Add(memory.Window{Title: "hidden", Visible: false, TaskbarEligible: true, PID: 8})

	snap, err := NewInspector(d, quietLogger()).Enumerate()
	if err != nil {
		t.Fatal(err)
	}
	if n := d.Calls("ProcessName"); n != 1 {
		t.Errorf("ProcessName calls: got %d, want 1", n)
	}
	for _, w := range snap.Windows {
		if w.Process != "term" {
			t.Errorf("%s: got process %q, want term", w.Title, w.Process)
		}
	}
}

func TestInspector_NoPIDIsUnknown(t *testing.T) {
	d := memory.New()
	d.Open("orphan", 0)

	snap, err := NewInspector(d, nil).Enumerate()
	if err != nil {
		t.Fatal(err)
	}
	if snap.Windows[0].Process != model.ProcessUnknown {
		t.Errorf("got %q, want Unknown", snap.Windows[0].Process)
	}
	if d.Calls("ProcessName") != 0 {
		t.Error("pid 0 should not be resolved")
	}
}

func TestInspector_EnumerationOrder(t *testing.T) {
	d := memory.New()
	b := d.Open("b", 1)
	a := d.Open("a", 1)
	d.SetForeground(a)

	snap, err := NewInspector(d, quietLogger()).Enumerate()
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Windows) != 2 || snap.Windows[0].Handle != b || snap.Windows[1].Handle != a {
		t.Errorf("inspector must keep enumeration order, got %+v", snap.Windows)
	}
	if snap.Foreground != a {
		t.Errorf("foreground: got %v, want %v", snap.Foreground, a)
	}
}
