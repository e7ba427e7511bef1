// Package ui renders the interactive interpreter session in the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"iomode/internal/repl"
)

type replModel struct {
	title      string
	sender     repl.Sender
	outputs    <-chan string
	input      textinput.Model
	spinner    spinner.Model
	transcript []string
	width      int
	height     int
	started    bool
	done       bool
	sendErr    error
}

type outputMsg string
type outputClosedMsg struct{}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// NewReplModel returns a Bubble Tea model driving an interpreter session.
// Lines appearing on outputs are appended to the transcript; submitted input
// goes through sender.
func NewReplModel(title string, sender repl.Sender, outputs <-chan string) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	ti := textinput.New()
	ti.Prompt = promptStyle.Render(repl.Prompt)
	ti.Placeholder = "Io expression"
	ti.Focus()

	return &replModel{
		title:   title,
		sender:  sender,
		outputs: outputs,
		input:   ti,
		spinner: sp,
		width:   80,
		height:  24,
	}
}

func (m *replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.listenForOutput())
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}
	case outputMsg:
		m.started = true
		m.appendLine(string(msg))
		return m, m.listenForOutput()
	case outputClosedMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.started || m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = msg.Width - 4
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	header := truncate(m.title, m.width-4)
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else if !m.started {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	// последние строки, сколько помещается над полем ввода
	visible := m.height - 5
	if visible < 1 {
		visible = 1
	}
	lines := m.transcript
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	for _, line := range lines {
		b.WriteString(truncate(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	if m.sendErr != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.sendErr.Error()))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *replModel) submit() tea.Cmd {
	line := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(line) == "" {
		return nil
	}
	m.appendLine(echoStyle.Render(repl.Prompt + line))
	if err := m.sender.Send(line); err != nil {
		m.sendErr = err
		m.done = true
		return tea.Quit
	}
	m.sendErr = nil
	return nil
}

func (m *replModel) appendLine(line string) {
	m.transcript = append(m.transcript, line)
	// ограничиваем рост transcript при долгих сессиях
	const keep = 2048
	if len(m.transcript) > keep {
		m.transcript = m.transcript[len(m.transcript)-keep:]
	}
}

func (m *replModel) listenForOutput() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-m.outputs
		if !ok {
			return outputClosedMsg{}
		}
		return outputMsg(line)
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
