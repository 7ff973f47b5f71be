package cmd

import (
	"time"

	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/output"
	"github.com/mj1618/pinwin/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible top-level windows",
	Long: `List the visible, taskbar-eligible windows that have a title, sorted by title.

Each window shows its handle, title, owning process and whether it is
topmost or in the foreground. With --selected, selected_index is the
position of that window in the list, or -1 when it is not listed.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("selected", "", "Handle of a window to resolve in the list")
}

func runList(cmd *cobra.Command, args []string) error {
	view := model.View{Selection: model.NoSelection}
	if s, _ := cmd.Flags().GetString("selected"); s != "" {
		h, err := platform.ParseHandle(s)
		if err != nil {
			return err
		}
		view.Selection = model.Selected(h)
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	rec, err := a.session.Refresh(cmd.Context(), view)
	if err != nil {
		return err
	}
	return output.Print(output.NewListResult(a.provider.Name, rec, time.Now()))
}
