package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer renders status lines and panels with one theme.
type Printer struct {
	out, errOut io.Writer
	r           *lipgloss.Renderer
	theme       Theme
}

// NewPrinter styles output for out. color is auto, always or never; auto
// lets the renderer detect the terminal.
func NewPrinter(out, errOut io.Writer, theme, color string) *Printer {
	r := lipgloss.NewRenderer(out)
	switch color {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{out: out, errOut: errOut, r: r, theme: NewTheme(r, theme)}
}

func (p *Printer) Theme() Theme { return p.theme }

func (p *Printer) Out() io.Writer { return p.out }

func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.out, p.theme.Success.Render(p.theme.SymOK+" "+msg))
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.errOut, p.theme.Error.Render(p.theme.SymFail+" "+msg))
}

func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.errOut, p.theme.Muted.Render("Hint: "+msg))
}

// Panel draws a framed box around lines.
func (p *Printer) Panel(lines []string) {
	fmt.Fprintln(p.out, p.PanelString(strings.Join(lines, "\n")))
}

func (p *Printer) PanelString(inner string) string {
	border := p.r.NewStyle().
		Border(p.theme.Border).
		BorderForeground(p.theme.BorderColor).
		Padding(0, 1)
	return border.Render(inner)
}

// ProgressBar renders done/total as a bar of the given width.
func ProgressBar(done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = int(float64(done) / float64(total) * float64(width))
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}
