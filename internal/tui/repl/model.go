package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/ngc/foundation/ngc"
)

// entry is one input line and its response in the history pane
type entry struct {
	input  string
	output string
	kind   ResultKind
	failed bool
}

// Model is the REPL TUI model
type Model struct {
	session *Session

	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool

	entries []entry

	// Input recall
	recall    []string
	recallIdx int
}

// New creates a REPL model evaluating with engine
func New(engine *ngc.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "[1 + 2] or #1 = 5, :help for commands"
	ti.Prompt = PromptStyle.Render("ngc> ")
	ti.CharLimit = 1024
	ti.Width = 60
	ti.Focus()

	return Model{
		session: NewSession(engine),
		input:   ti,
	}
}

// Run starts the REPL in the alternate screen and blocks until it exits
func Run(engine *ngc.Engine) error {
	p := tea.NewProgram(New(engine), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			if quit := m.submit(line); quit {
				return m, tea.Quit
			}
			return m, nil

		case tea.KeyUp:
			m.recallPrev()
			return m, nil

		case tea.KeyDown:
			m.recallNext()
			return m, nil

		case tea.KeyCtrlL:
			m.entries = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.input.Width = msg.Width - 10
		m.updateContent()
	}

	// Update components
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit executes line and records it. It reports whether the REPL should
// exit.
func (m *Model) submit(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	m.recall = append(m.recall, line)
	m.recallIdx = len(m.recall)

	res, err := m.session.Execute(line)
	switch {
	case err != nil:
		m.entries = append(m.entries, entry{input: line, output: err.Error(), failed: true})
	case res.Kind == ResultQuit:
		return true
	default:
		m.entries = append(m.entries, entry{input: line, output: res.Output, kind: res.Kind})
	}
	m.updateContent()
	return false
}

func (m *Model) recallPrev() {
	if m.recallIdx == 0 {
		return
	}
	m.recallIdx--
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

func (m *Model) recallNext() {
	if m.recallIdx >= len(m.recall) {
		return
	}
	m.recallIdx++
	if m.recallIdx == len(m.recall) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

func (m *Model) updateContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.history())
	m.viewport.GotoBottom()
}

func (m Model) history() string {
	var s strings.Builder
	for _, e := range m.entries {
		s.WriteString(InputEchoStyle.Render("ngc> " + e.input))
		s.WriteString("\n")
		switch {
		case e.failed:
			s.WriteString(ErrorMessageStyle.Render("error: " + e.output))
		case e.kind == ResultValue:
			s.WriteString(ResultStyle.Render(e.output))
		default:
			s.WriteString(OutputStyle.Render(e.output))
		}
		s.WriteString("\n")
	}
	return s.String()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		TitleStyle.Render("ngc expression REPL"),
		"  ",
		SubtitleStyle.Render(m.session.engine.Options().AngleUnit.String()),
	)

	var s strings.Builder
	s.WriteString(header)
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("Enter evaluate • ↑/↓ history • Ctrl+L clear screen • Esc quit"))
	return s.String()
}
