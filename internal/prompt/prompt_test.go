package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestConfirmModelYes(t *testing.T) {
	m := confirmModel{label: "Show details?"}
	next, _ := m.Update(key("y"))
	got := next.(confirmModel)
	if !got.answered || !got.answer {
		t.Errorf("expected answered yes, got %+v", got)
	}
}

func TestConfirmModelEnterMeansNo(t *testing.T) {
	m := confirmModel{label: "Show details?"}
	next, _ := m.Update(key("enter"))
	got := next.(confirmModel)
	if !got.answered || got.answer {
		t.Errorf("expected answered no, got %+v", got)
	}
}

func TestConfirmModelCancel(t *testing.T) {
	m := confirmModel{label: "Show details?"}
	next, _ := m.Update(key("esc"))
	got := next.(confirmModel)
	if !got.canceled {
		t.Errorf("expected canceled, got %+v", got)
	}
}

func TestKeywordModelRejectsEmptyEnter(t *testing.T) {
	m := keywordModel{}
	next, _ := m.Update(key("enter"))
	got := next.(keywordModel)
	if got.done {
		t.Error("empty input should not complete the prompt")
	}
}

func TestKeywordModelCancel(t *testing.T) {
	m := keywordModel{}
	next, _ := m.Update(key("esc"))
	got := next.(keywordModel)
	if !got.canceled {
		t.Error("expected canceled")
	}
}
