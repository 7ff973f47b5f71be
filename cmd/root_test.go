package cmd

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"list", "focus", "pin", "unpin", "watch", "serve", "ui", "history"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	tests := []struct {
		name     string
		flagType string
		def      string
	}{
		{"format", "string", "yaml"},
		{"pretty", "bool", "false"},
		{"config", "string", ""},
		{"log-level", "string", ""},
	}
	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected persistent flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
		if f.DefValue != tt.def {
			t.Errorf("flag %q: expected default %q, got %q", tt.name, tt.def, f.DefValue)
		}
	}
}

func TestHandleCommands_TakeOneArg(t *testing.T) {
	for _, c := range []string{"focus", "pin", "unpin"} {
		cmd, _, err := rootCmd.Find([]string{c})
		if err != nil {
			t.Fatalf("%s: %v", c, err)
		}
		if cmd.Args == nil {
			t.Errorf("%s: expected an args validator", c)
			continue
		}
		if err := cmd.Args(cmd, nil); err == nil {
			t.Errorf("%s: expected an error without a handle", c)
		}
		if err := cmd.Args(cmd, []string{"0x1"}); err != nil {
			t.Errorf("%s: unexpected error: %v", c, err)
		}
	}
}
