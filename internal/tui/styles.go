package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mj1618/pinwin/internal/config"
	"github.com/mj1618/pinwin/internal/model"
)

// Styles holds the lipgloss styles used to draw the window list.
type Styles struct {
	Header     lipgloss.Style
	Row        lipgloss.Style
	Foreground lipgloss.Style
	Topmost    lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
	Disabled   lipgloss.Style
}

// NewStyles builds styles from the configured highlight colors.
func NewStyles(ui config.UIConfig) Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#87afff")),
		Row:    lipgloss.NewStyle(),
		Foreground: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.ForegroundBg)).
			Foreground(lipgloss.Color(ui.ForegroundFg)),
		Topmost: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.TopmostBg)).
			Foreground(lipgloss.Color(ui.TopmostFg)),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#a8a8a8")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("#4e4e4e")),
	}
}

func (s Styles) row(hl model.Highlight) lipgloss.Style {
	switch hl {
	case model.HighlightForeground:
		return s.Foreground
	case model.HighlightTopmost:
		return s.Topmost
	default:
		return s.Row
	}
}
