package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/cory-johannsen/omega/internal/game/command"
)

var toneStyles = map[command.Tone]lipgloss.Style{
	command.Plain:   lipgloss.NewStyle(),
	command.Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")), // pink
	command.Success: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),             // green
	command.Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),            // red
	command.Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),            // yellow
	command.Score:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Italic(true), // teal
}

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// Renderer turns narration into terminal text.
type Renderer struct {
	width int
	color bool
}

// NewRenderer returns a Renderer wrapping at width columns.
//
// Precondition: width > 0.
func NewRenderer(width int, color bool) *Renderer {
	return &Renderer{width: width, color: color}
}

// Render wraps and styles lines, one narration line per output paragraph.
func (r *Renderer) Render(lines []command.Line) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.line(l))
	}
	return b.String()
}

func (r *Renderer) line(l command.Line) string {
	text := wordwrap.String(l.Text, r.width)
	if !r.color {
		return text
	}
	return toneStyles[l.Tone].Render(text)
}

// Prompt returns the input prompt.
func (r *Renderer) Prompt() string {
	const prompt = "> Enter command: "
	if !r.color {
		return prompt
	}
	return promptStyle.Render(prompt)
}
