// Package ui provides the interactive destination prompt used by
// "genssh --interactive".
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/treykane/genssh/internal/model"
	"github.com/treykane/genssh/internal/sshinfo"
)

// ErrPromptCancelled is returned when the user leaves the prompt with Esc or Ctrl+C.
var ErrPromptCancelled = errors.New("prompt cancelled")

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type promptModel struct {
	input     textinput.Model
	record    model.ConnectionRecord
	template  bool
	errMsg    string
	done      bool
	cancelled bool
}

func newPrompt() promptModel {
	ti := textinput.New()
	ti.Placeholder = "user@host:port or user@host -p port"
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()
	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" {
				m.record = sshinfo.Template()
				m.template = true
				m.done = true
				return m, tea.Quit
			}
			rec, err := sshinfo.Parse(raw)
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.record = rec
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.errMsg = ""
	}
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("SSH destination") + "\n\n")
	b.WriteString("  " + m.input.View() + "\n\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render("Error: "+m.errMsg) + "\n\n")
	}
	b.WriteString(hintStyle.Render("Enter to save (empty writes a template), Esc to cancel"))
	return b.String()
}

// Prompt asks for a destination on the terminal wired to in/out and returns
// the resulting record. The bool reports whether an empty entry produced the
// placeholder template.
func Prompt(in io.Reader, out io.Writer) (model.ConnectionRecord, bool, error) {
	p := tea.NewProgram(newPrompt(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return model.ConnectionRecord{}, false, fmt.Errorf("run prompt: %w", err)
	}
	m, ok := final.(promptModel)
	if !ok || m.cancelled || !m.done {
		return model.ConnectionRecord{}, false, ErrPromptCancelled
	}
	return m.record, m.template, nil
}
