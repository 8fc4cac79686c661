// Package ui implements the full-screen interactive lexer. Each submitted
// line is lexed like a REPL line, and the token stream is rendered as an
// aligned, styled table of kinds and lexemes.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"monkey/internal/driver"
	"monkey/internal/token"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	inputStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	keywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	literalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	identStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	punctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type historyEntry struct {
	input string
	lines []string
}

type replModel struct {
	input          textinput.Model
	history        []historyEntry
	width          int
	maxDiagnostics int
}

// NewReplModel returns a Bubble Tea model for the interactive lexer.
func NewReplModel(prompt string, maxDiagnostics int) tea.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "let five = 5;"
	ti.Focus()
	return &replModel{
		input:          ti,
		width:          80,
		maxDiagnostics: maxDiagnostics,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			if strings.TrimSpace(line) != "" {
				m.history = append(m.history, m.lexLine(line))
			}
			m.input.SetValue("")
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("monkey lexer"))
	b.WriteString("\n\n")

	// show the most recent entries that fit
	start := 0
	if len(m.history) > 8 {
		start = len(m.history) - 8
	}
	for _, entry := range m.history[start:] {
		b.WriteString(inputStyle.Render(m.input.Prompt + entry.input))
		b.WriteString("\n")
		for _, line := range entry.lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: lex line • esc: quit"))
	return b.String()
}

func (m *replModel) lexLine(line string) historyEntry {
	res := driver.TokenizeSource("repl", []byte(line), m.maxDiagnostics)

	entry := historyEntry{input: line}
	for _, tok := range res.Tokens {
		entry.lines = append(entry.lines, renderToken(tok))
		if tok.Kind == token.EOF {
			break
		}
	}
	for _, d := range res.Bag.Items() {
		entry.lines = append(entry.lines,
			errorStyle.Render(fmt.Sprintf("%s %s: %s", d.Severity, d.Code.ID(), d.Message)))
	}
	return entry
}

const kindColumnWidth = 10

func renderToken(tok token.Token) string {
	kind := tok.Kind.String()
	pad := kindColumnWidth - runewidth.StringWidth(kind)
	if pad < 1 {
		pad = 1
	}
	label := kind + strings.Repeat(" ", pad)

	switch {
	case tok.IsKeyword():
		label = keywordStyle.Render(label)
	case tok.Kind == token.IntLit:
		label = literalStyle.Render(label)
	case tok.Kind == token.Ident:
		label = identStyle.Render(label)
	case tok.Kind == token.Invalid:
		label = errorStyle.Render(label)
	default:
		label = punctStyle.Render(label)
	}

	if tok.Text == "" {
		return "  " + label
	}
	return "  " + label + fmt.Sprintf("%q", tok.Text)
}
