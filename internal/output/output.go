package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mj1618/pinwin/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// WindowEntry is a listed window with its display class.
type WindowEntry struct {
	model.WindowRecord `yaml:",inline"`
	Highlight          model.Highlight `yaml:"highlight,omitempty" json:"highlight,omitempty"`
}

// ListResult is the top-level output of the `list` command.
type ListResult struct {
	Backend       string        `yaml:"backend"        json:"backend"`
	TS            int64         `yaml:"ts"             json:"ts"`
	SelectedIndex int           `yaml:"selected_index" json:"selected_index"`
	Windows       []WindowEntry `yaml:"windows"        json:"windows"`
}

// CommandResult is the output of `focus`, `pin` and `unpin`.
type CommandResult struct {
	Action string       `yaml:"action"           json:"action"`
	Handle model.Handle `yaml:"handle"           json:"handle"`
	OK     bool         `yaml:"ok"               json:"ok"`
	Window *WindowEntry `yaml:"window,omitempty" json:"window,omitempty"`
}

// Entries pairs each window of rec with its highlight.
func Entries(rec model.Reconciliation) []WindowEntry {
	entries := make([]WindowEntry, len(rec.Windows))
	for i, w := range rec.Windows {
		entries[i] = WindowEntry{WindowRecord: w, Highlight: rec.Highlights[w.Handle]}
	}
	return entries
}

// NewListResult builds the `list` output for rec.
func NewListResult(backend string, rec model.Reconciliation, at time.Time) ListResult {
	return ListResult{
		Backend:       backend,
		TS:            at.UnixMilli(),
		SelectedIndex: rec.SelectedIndex,
		Windows:       Entries(rec),
	}
}

// NewCommandResult builds the output of a successful command on h.
func NewCommandResult(action string, h model.Handle, rec model.Reconciliation) CommandResult {
	res := CommandResult{Action: action, Handle: h, OK: true}
	if i := rec.Find(h); i != model.NoIndex {
		w := rec.Windows[i]
		res.Window = &WindowEntry{WindowRecord: w, Highlight: rec.Highlights[h]}
	}
	return res
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// LineWriter writes one JSON document per line. It is safe for concurrent use.
type LineWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewLineWriter returns a JSONL writer on w.
func NewLineWriter(w io.Writer) *LineWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &LineWriter{enc: enc}
}

// Write encodes v as a single line.
func (lw *LineWriter) Write(v interface{}) error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if err := lw.enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}
