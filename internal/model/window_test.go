package model

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestHandle_Hex(t *testing.T) {
	rec := WindowRecord{Handle: 0x2a, Title: "Notes", Process: "notes"}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"handle":"0x2a"`) {
		t.Errorf("json = %s, want hex handle", data)
	}

	data, err = yaml.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "0x2a") {
		t.Errorf("yaml = %s, want hex handle", data)
	}
	var back WindowRecord
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Handle != rec.Handle {
		t.Errorf("got handle %v back, want %v", back.Handle, rec.Handle)
	}

	hl, err := json.Marshal(map[Handle]Highlight{0x10: HighlightTopmost})
	if err != nil {
		t.Fatal(err)
	}
	if string(hl) != `{"0x10":"topmost"}` {
		t.Errorf("highlights = %s", hl)
	}
}

func TestHandle_UnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    Handle
		wantErr bool
	}{
		{"0x2a", 0x2a, false},
		{"42", 42, false},
		{"window", 0, true},
	}
	for _, tt := range tests {
		var h Handle
		err := h.UnmarshalText([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: got error %v, want error %v", tt.in, err, tt.wantErr)
		}
		if h != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, h, tt.want)
		}
	}
}
