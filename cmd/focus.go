package cmd

import (
	"github.com/mj1618/pinwin/internal/session"
	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus <handle>",
	Short: "Bring a window to the foreground",
	Long:  "Restore a window if it is minimized and make it the foreground window.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, session.ActionFocus, args[0])
	},
}

func init() {
	rootCmd.AddCommand(focusCmd)
}
