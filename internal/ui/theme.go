package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style

	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	SymOK, SymFail           string
}

// NewTheme builds the named theme on r. Unknown names fall back to classic.
func NewTheme(r *lipgloss.Renderer, name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Title:        r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        r.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:       r.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      r.NewStyle().Foreground(lipgloss.Color("10")),
			Error:        r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      r.NewStyle().Foreground(lipgloss.Color("11")),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymDone: "✔", SymPending: "•",
			SymOK: "✔", SymFail: "✖",
		}
	case "mono":
		plain := r.NewStyle()
		return Theme{
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Border:       lipgloss.ASCIIBorder(),
			BorderColor:  lipgloss.NoColor{},
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymPending: "-",
			SymOK: "ok", SymFail: "error:",
		}
	default: // classic
		return Theme{
			Title:        r.NewStyle().Bold(true),
			Muted:        r.NewStyle().Faint(true),
			Accent:       r.NewStyle().Foreground(lipgloss.Color("12")),
			Success:      r.NewStyle().Foreground(lipgloss.Color("42")),
			Error:        r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      r.NewStyle().Foreground(lipgloss.Color("214")),
			Border:       lipgloss.NormalBorder(),
			BorderColor:  lipgloss.Color("8"),
			BoxUnchecked: "☐", BoxChecked: "☑",
			SymDone: "✔", SymPending: "•",
			SymOK: "✔", SymFail: "✖",
		}
	}
}
