package cmd

import (
	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/output"
	"github.com/mj1618/pinwin/internal/platform"
	"github.com/mj1618/pinwin/internal/session"
	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin <handle>",
	Short: "Keep a window above all others",
	Long:  "Set a window's always-on-top flag. Pinning an already pinned window is a no-op.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, session.ActionPin, args[0])
	},
}

var unpinCmd = &cobra.Command{
	Use:   "unpin <handle>",
	Short: "Clear a window's always-on-top flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, session.ActionUnpin, args[0])
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(unpinCmd)
}

// runCommand executes action on the window named by arg and prints the
// window as seen by the pass that follows the command.
func runCommand(cmd *cobra.Command, action session.Action, arg string) error {
	h, err := platform.ParseHandle(arg)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	view := model.View{Selection: model.Selected(h)}
	var rec model.Reconciliation
	switch action {
	case session.ActionFocus:
		rec, err = a.session.Focus(cmd.Context(), h, view)
	case session.ActionPin:
		rec, err = a.session.Pin(cmd.Context(), h, view)
	case session.ActionUnpin:
		rec, err = a.session.Unpin(cmd.Context(), h, view)
	}
	if err != nil {
		return err
	}
	return output.Print(output.NewCommandResult(string(action), h, rec))
}
