package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles used for human output
type Styles struct {
	color   bool
	Verb    lipgloss.Style
	Path    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds styles bound to w. When color is false Paint returns text unchanged.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		color:   color,
		Verb:    r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFFF"}),
		Path:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#303030", Dark: "#D0D0D0"}),
		Muted:   r.NewStyle().Faint(true),
		Success: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD75F"}),
		Warning: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF5F00", Dark: "#FFAF00"}),
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}),
	}
}

// Color reports whether styles are applied
func (s Styles) Color() bool {
	return s.color
}

// Paint renders text with style, or returns it as-is in plain mode
func (s Styles) Paint(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

// Printer writes one line per action
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a Printer; only FormatTerminal produces styled output
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:      w,
		styles: NewStyles(w, format == FormatTerminal),
	}
}

// Report prints the action
func (p *Printer) Report(a Action) {
	if !p.styles.color {
		fmt.Fprintln(p.w, a.String())
		return
	}

	line := p.styles.Paint(p.styles.Verb, a.Verb()) + " " + p.styles.Paint(p.styles.Path, a.Object())
	if a.DryRun {
		line = p.styles.Paint(p.styles.Muted, DryRunPrefix) + line
	}
	fmt.Fprintln(p.w, line)
}
