package platform

import (
	"testing"

	"github.com/mj1618/pinwin/internal/model"
)

func TestParseHandle_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  model.Handle
	}{
		{"1", 1},
		{"65538", 65538},
		{"0x1a2b", 0x1a2b},
		{"0X1A2B", 0x1a2b},
		{" 0x40000a ", 0x40000a},
	}
	for _, tt := range tests {
		got, err := ParseHandle(tt.input)
		if err != nil {
			t.Errorf("ParseHandle(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHandle(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseHandle_Invalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"0",
		"0x0",
		"-5",
		"abc",
		"0xzz",
	}
	for _, s := range tests {
		if _, err := ParseHandle(s); err == nil {
			t.Errorf("ParseHandle(%q) should fail", s)
		}
	}
}

func TestParseHandle_RoundTrip(t *testing.T) {
	h := model.Handle(0xdeadbeef)
	got, err := ParseHandle(h.String())
	if err != nil {
		t.Fatal(err)
	}
	if got != h {
		t.Errorf("got %v, want %v", got, h)
	}
}
