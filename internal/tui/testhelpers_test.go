package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m TimerModel, msg tea.Msg) (TimerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	tm, ok := next.(TimerModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return tm, cmd
}

func typeText(t *testing.T, m TimerModel, text string) TimerModel {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, keyPress(string(r)))
	}
	return m
}

// setupTimer returns a widget with the given duration committed and the
// start button focused.
func setupTimer(t *testing.T, raw string) TimerModel {
	t.Helper()
	m := NewTimerModel(Options{})
	m = typeText(t, m, raw)
	m, _ = update(t, m, keyPress("enter"))
	m, _ = update(t, m, keyPress("esc"))
	if m.focus != focusStart {
		t.Fatalf("expected start button focused, got %d", m.focus)
	}
	return m
}

func currentTick(m TimerModel) TickMsg {
	return TickMsg{ID: m.ticker.id}
}
