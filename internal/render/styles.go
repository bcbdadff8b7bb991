package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles groups the lipgloss styles used for terminal output
type Styles struct {
	Title   lipgloss.Style
	Kind    lipgloss.Style
	Code    lipgloss.Style
	Note    lipgloss.Style
	LineNo  lipgloss.Style
	OK      lipgloss.Style
	Error   lipgloss.Style
	ErrCode lipgloss.Style
	Caret   lipgloss.Style
	Value   lipgloss.Style
}

// NewStyles returns the colored styles, or plain ones when color is false
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Title: plain, Kind: plain, Code: plain, Note: plain, LineNo: plain,
			OK: plain, Error: plain, ErrCode: plain, Caret: plain, Value: plain,
		}
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		Kind: lipgloss.NewStyle().
			Foreground(colorMuted),
		Code: lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true),
		Note: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		LineNo: lipgloss.NewStyle().
			Foreground(colorMuted),
		OK: lipgloss.NewStyle().
			Foreground(colorSecondary),
		Error: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),
		ErrCode: lipgloss.NewStyle().
			Foreground(colorAccent),
		Caret: lipgloss.NewStyle().
			Foreground(colorError),
		Value: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
	}
}
