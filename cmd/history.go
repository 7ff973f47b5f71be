package cmd

import (
	"time"

	"github.com/mj1618/pinwin/internal/journal"
	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the command journal",
	Long: `Show recently executed focus, pin and unpin commands, newest first.

Commands are only journaled when journal.enabled is set in the config
file or PINWIN_JOURNAL=true.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 20, "Max entries to show (0 = all)")
	historyCmd.Flags().Bool("clear", false, "Delete all journal entries")
}

type historyResult struct {
	Path    string         `yaml:"path"              json:"path"`
	Total   int64          `yaml:"total"             json:"total"`
	Entries []historyEntry `yaml:"entries,omitempty" json:"entries,omitempty"`
	Cleared int64          `yaml:"cleared,omitempty" json:"cleared,omitempty"`
}

// historyEntry is a journal row as printed, with the handle in hex like
// every other command shows it.
type historyEntry struct {
	Timestamp time.Time    `yaml:"timestamp"       json:"timestamp"`
	Action    string       `yaml:"action"          json:"action"`
	Handle    model.Handle `yaml:"handle"          json:"handle"`
	Title     string       `yaml:"title"           json:"title"`
	Process   string       `yaml:"process"         json:"process"`
	OK        bool         `yaml:"ok"              json:"ok"`
	Error     string       `yaml:"error,omitempty" json:"error,omitempty"`
}

func historyEntries(rows []journal.CommandEntry) []historyEntry {
	entries := make([]historyEntry, len(rows))
	for i, row := range rows {
		ev := row.Event()
		entries[i] = historyEntry{
			Timestamp: ev.Time,
			Action:    ev.Action,
			Handle:    ev.Handle,
			Title:     ev.Title,
			Process:   ev.Process,
			OK:        ev.OK,
			Error:     ev.Error,
		}
	}
	return entries
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	clearAll, _ := cmd.Flags().GetBool("clear")

	path := appConfig.JournalPath()
	db, err := journal.Open(path)
	if err != nil {
		return errors.Wrap(err, "open command journal")
	}
	defer db.Close()
	repo := journal.NewRepository(db)

	res := historyResult{Path: path}
	if clearAll {
		if res.Cleared, err = repo.Clear(); err != nil {
			return err
		}
		return output.Print(res)
	}

	if res.Total, err = repo.Count(); err != nil {
		return err
	}
	rows, err := repo.Recent(limit)
	if err != nil {
		return err
	}
	res.Entries = historyEntries(rows)
	return output.Print(res)
}
