package model

import (
	"fmt"
	"time"
)

// ChangeType represents the kind of window change detected.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// WindowChange represents a single change between two generations.
type WindowChange struct {
	Type    ChangeType           `json:"type"`
	TS      int64                `json:"ts"`
	Window  *WindowRecord        `json:"window,omitempty"`  // For added: the full record
	Handle  Handle               `json:"handle,omitempty"`  // For removed/changed
	Title   string               `json:"t,omitempty"`       // For removed: last known title
	Changes map[string][2]string `json:"changes,omitempty"` // For changed: field diffs
}

// DiffWindows compares two window lists and returns the changes.
// Records are matched by handle; the output follows curr's order, with
// removals last in prev's order.
func DiffWindows(prev, curr []WindowRecord, now time.Time) []WindowChange {
	prevMap := make(map[Handle]WindowRecord, len(prev))
	for _, w := range prev {
		prevMap[w.Handle] = w
	}
	currMap := make(map[Handle]struct{}, len(curr))
	for _, w := range curr {
		currMap[w.Handle] = struct{}{}
	}

	var changes []WindowChange
	ts := now.Unix()

	for _, w := range curr {
		prevW, existed := prevMap[w.Handle]
		if !existed {
			wCopy := w
			changes = append(changes, WindowChange{
				Type:   ChangeAdded,
				TS:     ts,
				Window: &wCopy,
			})
			continue
		}
		if diffs := diffFields(prevW, w); len(diffs) > 0 {
			changes = append(changes, WindowChange{
				Type:    ChangeChanged,
				TS:      ts,
				Handle:  w.Handle,
				Changes: diffs,
			})
		}
	}

	for _, w := range prev {
		if _, exists := currMap[w.Handle]; !exists {
			changes = append(changes, WindowChange{
				Type:   ChangeRemoved,
				TS:     ts,
				Handle: w.Handle,
				Title:  w.Title,
			})
		}
	}

	return changes
}

// diffFields compares two records and returns changed fields.
func diffFields(prev, curr WindowRecord) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Title != curr.Title {
		diffs["t"] = [2]string{prev.Title, curr.Title}
	}
	if prev.Process != curr.Process {
		diffs["proc"] = [2]string{prev.Process, curr.Process}
	}
	if prev.Topmost != curr.Topmost {
		diffs["top"] = [2]string{fmt.Sprint(prev.Topmost), fmt.Sprint(curr.Topmost)}
	}
	if prev.Foreground != curr.Foreground {
		diffs["fg"] = [2]string{fmt.Sprint(prev.Foreground), fmt.Sprint(curr.Foreground)}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
