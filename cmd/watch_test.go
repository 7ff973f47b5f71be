package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/pinwin/internal/config"
	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/output"
	"github.com/pkg/errors"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var events []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var ev map[string]interface{}
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("invalid JSONL line %q: %v", line, err)
		}
		events = append(events, ev)
	}
	return events
}

func reconciled(foreground model.Handle, raw ...model.RawWindow) model.Reconciliation {
	return model.Reconcile(raw, foreground, model.View{Selection: model.NoSelection})
}

func raw(h model.Handle, title string) model.RawWindow {
	return model.RawWindow{Handle: h, Title: title, Visible: true, TaskbarEligible: true, Process: "app"}
}

func TestWatcher_Events(t *testing.T) {
	var buf bytes.Buffer
	w := &watcher{out: output.NewLineWriter(&buf)}

	w.report(reconciled(1, raw(1, "one"), raw(2, "two")), nil)
	w.report(reconciled(1, raw(1, "one"), raw(2, "two")), nil)
	w.report(model.Reconciliation{}, errors.New("query list windows: boom"))
	w.report(reconciled(1, raw(1, "uno"), raw(3, "three")), nil)

	events := decodeLines(t, &buf)
	var types []string
	for _, ev := range events {
		types = append(types, ev["type"].(string))
	}
	want := []string{"snapshot", "error", "added", "changed", "removed"}
	if strings.Join(types, ",") != strings.Join(want, ",") {
		t.Fatalf("got events %v, want %v", types, want)
	}
	if n := events[0]["count"].(float64); n != 2 {
		t.Errorf("snapshot count = %v, want 2", n)
	}
	if w.events != 3 {
		t.Errorf("events = %d, want 3", w.events)
	}
}

func TestWatcher_IgnoreForeground(t *testing.T) {
	var buf bytes.Buffer
	w := &watcher{out: output.NewLineWriter(&buf), ignoreForeground: true}

	w.report(reconciled(1, raw(1, "one"), raw(2, "two")), nil)
	w.report(reconciled(2, raw(1, "one"), raw(2, "two")), nil)

	if events := decodeLines(t, &buf); len(events) != 1 {
		t.Errorf("got %d events, want only the snapshot", len(events))
	}
}

func TestApplyInterval(t *testing.T) {
	tests := []struct {
		ms      int
		want    time.Duration
		wantErr bool
	}{
		{0, 500 * time.Millisecond, false},
		{250, 250 * time.Millisecond, false},
		{1, 500 * time.Millisecond, true},
		{60000, 500 * time.Millisecond, true},
		{-5, 500 * time.Millisecond, true},
	}
	for _, tt := range tests {
		cfg := config.Default()
		err := applyInterval(cfg, tt.ms)
		if (err != nil) != tt.wantErr {
			t.Errorf("interval %d: got error %v, want error %v", tt.ms, err, tt.wantErr)
		}
		if cfg.Poll.Interval != tt.want {
			t.Errorf("interval %d: got %v, want %v", tt.ms, cfg.Poll.Interval, tt.want)
		}
	}
}
