package cmd

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/pinwin/internal/journal"
)

func TestHistoryEntries_HexHandle(t *testing.T) {
	rows := []journal.CommandEntry{
		{Timestamp: time.Unix(100, 0), Action: "pin", Handle: 0x1c00007, Title: "Notes", Process: "notes", OK: true},
	}
	data, err := json.Marshal(historyEntries(rows))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"handle":"0x1c00007"`) {
		t.Errorf("got %s, want the handle in hex", data)
	}
}
