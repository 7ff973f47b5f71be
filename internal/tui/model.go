// Package tui is the interactive terminal front end for a session.
package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/mj1618/pinwin/internal/config"
	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/session"
)

// Commander is the part of a session the UI drives.
type Commander interface {
	Refresh(ctx context.Context, view model.View) (model.Reconciliation, error)
	Focus(ctx context.Context, h model.Handle, view model.View) (model.Reconciliation, error)
	Pin(ctx context.Context, h model.Handle, view model.View) (model.Reconciliation, error)
	Unpin(ctx context.Context, h model.Handle, view model.View) (model.Reconciliation, error)
}

// PassMsg carries the result of a reconciliation pass.
type PassMsg struct {
	Rec model.Reconciliation
	Err error
}

// ConfigMsg delivers a reloaded configuration.
type ConfigMsg struct {
	Config *config.Config
}

type commandMsg struct {
	action session.Action
	title  string
	rec    model.Reconciliation
	err    error
}

const (
	// header, status and help lines around the list
	chromeLines  = 3
	processWidth = 20
	minTitle     = 8

	doubleClick = 400 * time.Millisecond
)

// viewState is the selection and scroll shared with the poller goroutine.
type viewState struct {
	mu   sync.Mutex
	view model.View
}

func (s *viewState) get() model.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *viewState) setSelection(sel model.Selection) {
	s.mu.Lock()
	s.view.Selection = sel
	s.mu.Unlock()
}

func (s *viewState) setScroll(f float64) {
	s.mu.Lock()
	s.view.Scroll = f
	s.mu.Unlock()
}

// Model is the bubbletea model of the window list.
type Model struct {
	ctx      context.Context
	cmd      Commander
	state    *viewState
	keys     keyMap
	styles   Styles
	viewport viewport.Model
	rec      model.Reconciliation

	status     string
	statusErr  bool
	passFailed bool

	width  int
	height int

	lastClickRow int
	lastClickAt  time.Time
	now          func() time.Time
}

// New creates a model that sends commands to c.
func New(ctx context.Context, c Commander, styles Styles) Model {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewportKeys()
	return Model{
		ctx:      ctx,
		cmd:      c,
		state:    &viewState{view: model.View{Selection: model.NoSelection}},
		keys:     defaultKeyMap(),
		styles:   styles,
		viewport: vp,
		rec:      model.Reconciliation{SelectedIndex: model.NoIndex},
		now:      time.Now,
	}
}

// CurrentView returns the selection and scroll to reconcile against. It is
// safe to call from any goroutine.
func (m Model) CurrentView() model.View {
	return m.state.get()
}

// Reconciliation returns the list currently shown.
func (m Model) Reconciliation() model.Reconciliation {
	return m.rec
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("pinwin")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeLines)
		m.render()
		return m, nil

	case PassMsg:
		if msg.Err != nil {
			m.setError(msg.Err.Error())
			m.passFailed = true
		} else if m.passFailed {
			m.setStatus("")
			m.passFailed = false
		}
		m.apply(msg.Rec)
		return m, nil

	case commandMsg:
		m.apply(msg.rec)
		m.passFailed = false
		if msg.err != nil {
			m.setError(msg.err.Error())
		} else {
			m.setStatus(fmt.Sprintf("%s %q", pastTense(msg.action), msg.title))
		}
		return m, nil

	case ConfigMsg:
		if msg.Config != nil {
			m.styles = NewStyles(msg.Config.UI)
			m.render()
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m, m.click(msg.Y)
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			return m, m.command(session.ActionFocus)
		case key.Matches(msg, m.keys.Pin):
			return m, m.command(session.ActionPin)
		case key.Matches(msg, m.keys.Unpin):
			return m, m.command(session.ActionUnpin)
		case key.Matches(msg, m.keys.Refresh):
			return m, m.refresh()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.state.setScroll(m.scrollFraction())
	return m, cmd
}

// apply shows rec, re-resolving the current selection by handle. A selected
// window that is gone clears the selection. A result older than the one
// shown is dropped.
func (m *Model) apply(rec model.Reconciliation) {
	if rec.Seq < m.rec.Seq {
		return
	}
	view := m.state.get()
	rec.SelectedIndex = model.NoIndex
	if h, ok := view.Selection.Get(); ok {
		rec.SelectedIndex = rec.Find(h)
		if rec.SelectedIndex == model.NoIndex {
			m.state.setSelection(model.NoSelection)
		}
	}
	m.rec = rec
	m.render()
	m.setScrollFraction(view.Scroll)
}

func (m *Model) move(delta int) {
	n := len(m.rec.Windows)
	if n == 0 {
		return
	}
	i := m.rec.SelectedIndex
	switch {
	case i == model.NoIndex && delta > 0:
		i = 0
	case i == model.NoIndex:
		i = n - 1
	default:
		i = min(max(i+delta, 0), n-1)
	}
	m.rec.SelectedIndex = i
	m.state.setSelection(model.Selected(m.rec.Windows[i].Handle))
	m.render()

	if i < m.viewport.YOffset {
		m.viewport.SetYOffset(i)
	} else if i >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(i - m.viewport.Height + 1)
	}
	m.state.setScroll(m.scrollFraction())
}

// click selects the row under screen line y. A second click on the same row
// within doubleClick focuses it.
func (m *Model) click(y int) tea.Cmd {
	// the list starts below the header line
	row := y - 1 + m.viewport.YOffset
	if y < 1 || y > m.viewport.Height || row >= len(m.rec.Windows) {
		return nil
	}
	now := m.now()
	double := row == m.lastClickRow && now.Sub(m.lastClickAt) <= doubleClick
	m.lastClickRow, m.lastClickAt = row, now

	m.rec.SelectedIndex = row
	m.state.setSelection(model.Selected(m.rec.Windows[row].Handle))
	m.render()
	if double {
		m.lastClickAt = time.Time{}
		return m.command(session.ActionFocus)
	}
	return nil
}

// command gates action on an explicit selection and the pin/unpin controls,
// then runs it off the UI goroutine.
func (m *Model) command(action session.Action) tea.Cmd {
	w, ok := m.rec.Selected()
	if !ok {
		m.setError("no window selected")
		return nil
	}
	controls := model.ControlsFor(m.rec)
	switch {
	case action == session.ActionPin && !controls.PinEnabled:
		m.setError(fmt.Sprintf("%q is already pinned", w.Title))
		return nil
	case action == session.ActionUnpin && !controls.UnpinEnabled:
		m.setError(fmt.Sprintf("%q is not pinned", w.Title))
		return nil
	}

	var run func(context.Context, model.Handle, model.View) (model.Reconciliation, error)
	switch action {
	case session.ActionFocus:
		run = m.cmd.Focus
	case session.ActionPin:
		run = m.cmd.Pin
	default:
		run = m.cmd.Unpin
	}
	ctx, view := m.ctx, m.state.get()
	return func() tea.Msg {
		rec, err := run(ctx, w.Handle, view)
		return commandMsg{action: action, title: w.Title, rec: rec, err: err}
	}
}

func (m Model) refresh() tea.Cmd {
	ctx, c, view := m.ctx, m.cmd, m.state.get()
	return func() tea.Msg {
		rec, err := c.Refresh(ctx, view)
		return PassMsg{Rec: rec, Err: err}
	}
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(s string) {
	m.status, m.statusErr = s, true
}

func (m Model) maxOffset() int {
	return max(0, m.viewport.TotalLineCount()-m.viewport.Height)
}

func (m Model) scrollFraction() float64 {
	top := m.maxOffset()
	if top == 0 {
		return 0
	}
	return float64(m.viewport.YOffset) / float64(top)
}

func (m *Model) setScrollFraction(f float64) {
	f = math.Min(math.Max(f, 0), 1)
	m.viewport.SetYOffset(int(math.Round(f * float64(m.maxOffset()))))
}

func (m *Model) render() {
	lines := make([]string, len(m.rec.Windows))
	for i, w := range m.rec.Windows {
		lines[i] = m.row(i, w)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m Model) row(i int, w model.WindowRecord) string {
	marker := "  "
	if i == m.rec.SelectedIndex {
		marker = "> "
	}
	width := max(m.width, runewidth.StringWidth(marker)+minTitle+processWidth+2)
	titleWidth := width - runewidth.StringWidth(marker) - processWidth - 2

	title := runewidth.FillRight(runewidth.Truncate(w.Title, titleWidth, "…"), titleWidth)
	process := runewidth.FillRight(runewidth.Truncate(w.Process, processWidth, "…"), processWidth)

	style := m.styles.row(m.rec.Highlights[w.Handle])
	if i == m.rec.SelectedIndex {
		style = style.Bold(true)
	}
	return style.Render(marker + title + "  " + process)
}

func (m Model) View() string {
	if m.width == 0 {
		return "starting pinwin..."
	}
	header := m.styles.Header.Render(fmt.Sprintf("pinwin  %d windows", len(m.rec.Windows)))
	body := m.viewport.View()
	if len(m.rec.Windows) == 0 {
		body = lipgloss.PlaceVertical(m.viewport.Height, lipgloss.Top, m.styles.Status.Render("no windows"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusLine(), m.helpLine())
}

func (m Model) statusLine() string {
	if m.statusErr {
		return m.styles.Error.Render(runewidth.Truncate(m.status, m.width, "…"))
	}
	return m.styles.Status.Render(runewidth.Truncate(m.status, m.width, "…"))
}

func (m Model) helpLine() string {
	_, selected := m.rec.Selected()
	controls := model.ControlsFor(m.rec)
	items := []struct {
		text string
		on   bool
	}{
		{"↑/↓ select", true},
		{helpText(m.keys.Focus), selected},
		{helpText(m.keys.Pin), selected && controls.PinEnabled},
		{helpText(m.keys.Unpin), selected && controls.UnpinEnabled},
		{helpText(m.keys.Refresh), true},
		{helpText(m.keys.Quit), true},
	}
	parts := make([]string, len(items))
	for i, it := range items {
		if it.on {
			parts[i] = m.styles.Help.Render(it.text)
		} else {
			parts[i] = m.styles.Disabled.Render(it.text)
		}
	}
	return strings.Join(parts, "  ")
}

func helpText(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}

func pastTense(a session.Action) string {
	switch a {
	case session.ActionFocus:
		return "focused"
	case session.ActionPin:
		return "pinned"
	case session.ActionUnpin:
		return "unpinned"
	}
	return string(a)
}
