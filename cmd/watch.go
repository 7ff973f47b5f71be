package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/mj1618/pinwin/internal/config"
	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream window changes as JSONL",
	Long: `Poll the window list and emit changes (added, removed, changed windows) as JSONL to stdout.

The first line is a snapshot of the current list. After that a line is only
written when something changes. Failed passes are reported as error events
and polling continues.

Output is always JSONL regardless of the --format flag.

Use Ctrl+C or --duration to stop watching.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Int("interval", 0, "Polling interval in milliseconds (0 = config poll interval)")
	watchCmd.Flags().Int("duration", 0, "Max seconds to watch (0 = until Ctrl+C)")
	watchCmd.Flags().Bool("ignore-foreground", false, "Ignore foreground changes")
}

type snapshotEvent struct {
	Type    string               `json:"type"`
	TS      int64                `json:"ts"`
	Count   int                  `json:"count"`
	Windows []output.WindowEntry `json:"windows"`
}

type errorEvent struct {
	Type  string `json:"type"`
	TS    int64  `json:"ts"`
	Error string `json:"error"`
}

type doneEvent struct {
	Type    string `json:"type"`
	TS      int64  `json:"ts"`
	Elapsed string `json:"elapsed"`
	Events  int    `json:"events"`
}

// watcher turns successive pass results into JSONL events.
type watcher struct {
	out              *output.LineWriter
	ignoreForeground bool
	prev             []model.WindowRecord
	started          bool
	events           int
}

func (w *watcher) report(rec model.Reconciliation, err error) {
	now := time.Now()
	if err != nil {
		w.out.Write(errorEvent{Type: "error", TS: now.Unix(), Error: err.Error()})
		return
	}
	if !w.started {
		w.started = true
		w.prev = rec.Windows
		w.out.Write(snapshotEvent{Type: "snapshot", TS: now.Unix(), Count: len(rec.Windows), Windows: output.Entries(rec)})
		return
	}

	for _, change := range model.DiffWindows(w.prev, rec.Windows, now) {
		if change.Type == model.ChangeChanged {
			if w.ignoreForeground {
				delete(change.Changes, "fg")
			}
			if len(change.Changes) == 0 {
				continue
			}
		}
		w.out.Write(change)
		w.events++
	}
	w.prev = rec.Windows
}

// applyInterval overrides the poll interval with a --interval value in
// milliseconds. Zero keeps the configured interval.
func applyInterval(cfg *config.Config, ms int) error {
	if ms == 0 {
		return nil
	}
	if err := cfg.SetPollInterval(time.Duration(ms) * time.Millisecond); err != nil {
		return errors.Wrap(err, "invalid --interval")
	}
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	intervalMs, _ := cmd.Flags().GetInt("interval")
	durationSec, _ := cmd.Flags().GetInt("duration")
	ignoreForeground, _ := cmd.Flags().GetBool("ignore-foreground")

	if err := applyInterval(appConfig, intervalMs); err != nil {
		return err
	}
	interval := appConfig.Poll.Interval

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if durationSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(durationSec)*time.Second)
		defer cancel()
	}

	w := &watcher{out: output.NewLineWriter(cmd.OutOrStdout()), ignoreForeground: ignoreForeground}
	start := time.Now()
	err = a.session.NewPoller(interval, nil, w.report).Run(ctx)

	w.out.Write(doneEvent{
		Type:    "done",
		TS:      time.Now().Unix(),
		Elapsed: fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
		Events:  w.events,
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
