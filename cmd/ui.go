package cmd

import (
	"os/signal"
	"syscall"

	"github.com/mj1618/pinwin/internal/tui"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse windows interactively",
	Long: `Open a terminal UI listing the desktop windows, refreshed on the poll interval.

Keys:
  ↑/↓ or k/j   select a window
  enter        focus the selected window
  p / u        pin / unpin the selected window
  r            refresh now
  q            quit

The foreground window is shown in red and pinned windows in light yellow.
Logs are written to PINWIN_LOG_FILE when set.`,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()
	return tui.Run(ctx, a.session, appConfig, configPath())
}
