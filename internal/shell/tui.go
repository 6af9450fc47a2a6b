package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cory-johannsen/omega/internal/game/command"
)

var (
	narrationPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(0, 1)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	statusLabelStyle = lipgloss.NewStyle().Bold(true)
)

const echoPrefix = "> "

// TUI is the full-screen bubbletea model. It keeps the whole transcript so
// narration can be rewrapped when the window is resized.
type TUI struct {
	game       *Game
	wrapWidth  int
	color      bool
	renderer   *Renderer
	transcript []command.Line
	narration  viewport.Model
	status     viewport.Model
	input      textarea.Model
	width      int
	height     int
	ready      bool
	done       bool
	err        error
}

// NewTUI creates the model and renders the opening narration into its transcript.
//
// Precondition: game must be non-nil and wrapWidth > 0.
// Postcondition: Returns a ready model or a fatal error from the opening turn.
func NewTUI(game *Game, wrapWidth int, color bool) (*TUI, error) {
	lines, done, err := game.Open()
	if err != nil {
		return nil, err
	}

	ta := textarea.New()
	ta.Placeholder = "go north, take key card, help..."
	ta.Focus()
	ta.Prompt = promptStyle.Render(echoPrefix)
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	narration := viewport.New(50, 20)
	narration.MouseWheelEnabled = true

	m := &TUI{
		game:       game,
		wrapWidth:  wrapWidth,
		color:      color,
		renderer:   NewRenderer(wrapWidth, color),
		transcript: lines,
		narration:  narration,
		status:     viewport.New(24, 20),
		input:      ta,
	}
	if done {
		m.finish()
	}
	return m, nil
}

// Err returns the fatal error that stopped the model, if any.
func (m *TUI) Err() error {
	return m.err
}

// Transcript returns every narration line shown so far.
func (m *TUI) Transcript() []command.Line {
	return append([]command.Line(nil), m.transcript...)
}

// Init implements tea.Model.
func (m *TUI) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *TUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.done {
				return m, tea.Quit
			}
			m.submit(m.input.Value())
			m.input.Reset()
			if m.err != nil {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.done {
			return m, nil
		}
	}

	m.input, tiCmd = m.input.Update(msg)
	m.narration, vpCmd = m.narration.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

// submit runs one turn and appends its narration.
func (m *TUI) submit(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}
	m.transcript = append(m.transcript, command.Line{Tone: command.Plain, Text: echoPrefix + input})
	lines, done, err := m.game.Step(input)
	if err != nil {
		m.err = err
		return
	}
	m.transcript = append(m.transcript, lines...)
	if done {
		m.finish()
	}
	m.refresh()
}

func (m *TUI) finish() {
	m.done = true
	m.input.Blur()
	m.transcript = append(m.transcript,
		command.Line{Tone: command.Heading, Text: GameOverLine},
		command.Line{Tone: command.Plain, Text: "Press Enter to leave."},
	)
}

func (m *TUI) resize(width, height int) {
	m.width = width
	m.height = height
	narrationWidth := int(float64(width)*0.72) - 4
	statusWidth := width - narrationWidth - 6

	m.narration.Width = narrationWidth - 2
	m.narration.Height = height - 6
	m.status.Width = statusWidth - 2
	m.status.Height = height - 4
	m.input.SetWidth(narrationWidth - 4)

	wrap := m.wrapWidth
	if m.narration.Width > 0 && m.narration.Width < wrap {
		wrap = m.narration.Width
	}
	m.renderer = NewRenderer(wrap, m.color)
	m.ready = true
	m.refresh()
}

// refresh rewrites both panels from the transcript and the session.
func (m *TUI) refresh() {
	m.narration.SetContent(m.renderer.Render(m.transcript))
	m.narration.GotoBottom()
	m.status.SetContent(m.statusText())
}

func (m *TUI) statusText() string {
	sess := m.game.Session
	p := sess.Player
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", statusLabelStyle.Render("Location"), p.Location)
	fmt.Fprintf(&b, "%s\n%d / %d\n\n", statusLabelStyle.Render("Score"), p.Score, p.MaxScore)
	fmt.Fprintf(&b, "%s\n%d\n\n", statusLabelStyle.Render("Turns"), sess.Turns)
	b.WriteString(statusLabelStyle.Render("Carrying"))
	b.WriteString("\n")
	names := p.Inventory.Names()
	if len(names) == 0 {
		b.WriteString("nothing\n")
	}
	for _, name := range names {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	if p.HasWornSuit {
		fmt.Fprintf(&b, "- %s (worn)\n", sess.World.WearableName())
	}
	if sess.ServerActivated {
		b.WriteString("\nServer online\n")
	}
	return b.String()
}

// View implements tea.Model.
func (m *TUI) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	narrationWidth := int(float64(m.width)*0.72) - 4
	statusWidth := m.width - narrationWidth - 6

	narrationPanel := narrationPanelStyle.Width(narrationWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.narration.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(narrationWidth-4, 0))),
			m.input.View(),
		),
	)
	statusPanel := statusPanelStyle.Width(statusWidth).Height(m.height - 2).Render(m.status.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, narrationPanel, statusPanel)
}

// RunTUI runs the full-screen shell until the player leaves.
//
// Postcondition: Returns the fatal error that ended the session, if any.
func RunTUI(game *Game, wrapWidth int, color bool) error {
	m, err := NewTUI(game, wrapWidth, color)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	if tm, ok := final.(*TUI); ok && tm.Err() != nil {
		return tm.Err()
	}
	return nil
}
