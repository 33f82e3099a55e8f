// Package prompt provides the small interactive prompts the CLI falls back
// to when a flag or argument was not supplied.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user backs out of a prompt.
var ErrCanceled = errors.New("prompt canceled")

var labelStyle = lipgloss.NewStyle().Bold(true)

type keywordModel struct {
	label    string
	input    textinput.Model
	done     bool
	canceled bool
}

func (m keywordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m keywordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if strings.TrimSpace(m.input.Value()) != "" {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m keywordModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n", labelStyle.Render(m.label), m.input.View())
}

// Keyword asks for a non-empty search keyword.
func Keyword(label string) (string, error) {
	ti := textinput.New()
	ti.Placeholder = "e.g. budget tracker"
	ti.Prompt = "> "
	ti.CharLimit = 100
	ti.Focus()

	final, err := tea.NewProgram(keywordModel{label: label, input: ti}).Run()
	if err != nil {
		return "", err
	}
	m := final.(keywordModel)
	if m.canceled {
		return "", ErrCanceled
	}
	return strings.TrimSpace(m.input.Value()), nil
}

type confirmModel struct {
	label    string
	answer   bool
	answered bool
	canceled bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y":
			m.answer, m.answered = true, true
			return m, tea.Quit
		case "n", "N", "enter":
			m.answered = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered || m.canceled {
		return ""
	}
	return fmt.Sprintf("%s (y/N) ", labelStyle.Render(m.label))
}

// Confirm asks a yes/no question; enter or n means no.
func Confirm(label string) (bool, error) {
	final, err := tea.NewProgram(confirmModel{label: label}).Run()
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.canceled {
		return false, ErrCanceled
	}
	return m.answer, nil
}
