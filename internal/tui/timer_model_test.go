package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewTimerModelDefaults(t *testing.T) {
	m := NewTimerModel(Options{})
	c := m.Countdown()
	if c.Staged != nil || c.TimeLeft != 0 || c.Active || c.Paused {
		t.Fatalf("unexpected initial state: %+v", c)
	}
	if m.focus != focusInput || !m.input.Focused() {
		t.Fatalf("expected duration field focused")
	}
	if m.Init() == nil {
		t.Fatalf("expected blink command from Init")
	}
}

func TestNewTimerModelPrefillsDefaultDuration(t *testing.T) {
	m := NewTimerModel(Options{DefaultDuration: 90})
	if m.input.Value() != "90" {
		t.Fatalf("input = %q", m.input.Value())
	}
	c := m.Countdown()
	if c.Staged == nil || *c.Staged != 90 {
		t.Fatalf("expected staged 90, got %v", c.Staged)
	}
	if c.TimeLeft != 0 {
		t.Fatalf("default duration must not be committed")
	}
}

func TestSetDurationFromInput(t *testing.T) {
	m := NewTimerModel(Options{})
	m = typeText(t, m, "90")
	m, _ = update(t, m, keyPress("enter"))
	if m.Countdown().TimeLeft != 90 {
		t.Fatalf("TimeLeft = %d", m.Countdown().TimeLeft)
	}
	if !strings.Contains(m.View(), "01:30") {
		t.Fatalf("expected view to show 01:30")
	}
}

func TestInputClearsRejectedText(t *testing.T) {
	m := NewTimerModel(Options{})
	m = typeText(t, m, "0")
	if m.input.Value() != "" || m.Countdown().Staged != nil {
		t.Fatalf("zero should stage empty, got %q", m.input.Value())
	}
	m = typeText(t, m, "12x")
	if m.input.Value() != "" {
		t.Fatalf("non-numeric text should clear the field, got %q", m.input.Value())
	}
	m, _ = update(t, m, keyPress("enter"))
	if m.Countdown().TimeLeft != 0 {
		t.Fatalf("invalid input must not change TimeLeft")
	}
}

func TestInvalidSetLeavesTimeLeft(t *testing.T) {
	m := setupTimer(t, "30")
	m, _ = update(t, m, keyPress("i"))
	m = typeText(t, m, "abc")
	m, _ = update(t, m, keyPress("enter"))
	if m.Countdown().TimeLeft != 30 {
		t.Fatalf("TimeLeft = %d, want 30", m.Countdown().TimeLeft)
	}
}

func TestStartWithZeroIsNoop(t *testing.T) {
	m := NewTimerModel(Options{})
	m, _ = update(t, m, keyPress("esc"))
	m, cmd := update(t, m, keyPress("s"))
	if cmd != nil {
		t.Fatalf("expected no tick to be scheduled")
	}
	if m.Countdown().Active {
		t.Fatalf("expected Active to stay false")
	}
}

func TestFocusCycling(t *testing.T) {
	m := NewTimerModel(Options{})
	m, _ = update(t, m, keyPress("tab"))
	if m.focus != focusSet || m.input.Focused() {
		t.Fatalf("expected Set focused, got %d", m.focus)
	}
	m, _ = update(t, m, keyPress("right"))
	m, _ = update(t, m, keyPress("right"))
	m, _ = update(t, m, keyPress("right"))
	m, _ = update(t, m, keyPress("right"))
	if m.focus != focusReset {
		t.Fatalf("right should stop at Reset, got %d", m.focus)
	}
	m, _ = update(t, m, keyPress("tab"))
	if m.focus != focusInput || !m.input.Focused() {
		t.Fatalf("tab should wrap to input, got %d", m.focus)
	}
	m, _ = update(t, m, keyPress("shift+tab"))
	if m.focus != focusReset {
		t.Fatalf("shift+tab should wrap to Reset, got %d", m.focus)
	}
}

func TestButtonsActivateOnEnter(t *testing.T) {
	m := NewTimerModel(Options{})
	m = typeText(t, m, "5")
	m, _ = update(t, m, keyPress("tab"))
	m, _ = update(t, m, keyPress("enter"))
	if m.Countdown().TimeLeft != 5 {
		t.Fatalf("Set button did not commit, TimeLeft = %d", m.Countdown().TimeLeft)
	}
	m, _ = update(t, m, keyPress("right"))
	m, cmd := update(t, m, keyPress("enter"))
	if !m.Countdown().Running() || cmd == nil {
		t.Fatalf("Start button did not start the countdown")
	}
	m, _ = update(t, m, keyPress("right"))
	m, _ = update(t, m, keyPress("enter"))
	if !m.Countdown().Paused {
		t.Fatalf("Pause button did not pause")
	}
	m, _ = update(t, m, keyPress("right"))
	m, _ = update(t, m, keyPress("enter"))
	if m.Countdown().Paused || m.Countdown().TimeLeft != 5 {
		t.Fatalf("Reset button did not reset: %+v", m.Countdown())
	}
}

func TestQuitShortcuts(t *testing.T) {
	m := NewTimerModel(Options{})
	m, _ = update(t, m, keyPress("q"))
	if m.quitting {
		t.Fatalf("q inside the duration field must not quit")
	}
	m, _ = update(t, m, keyPress("esc"))
	idBefore := m.ticker.id
	m, cmd := update(t, m, keyPress("q"))
	if !m.quitting || cmd == nil {
		t.Fatalf("expected q to quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
	if m.ticker.id == idBefore {
		t.Fatalf("quit must cancel the pending tick")
	}
	if m.View() != "" {
		t.Fatalf("expected empty view after quit")
	}

	m = NewTimerModel(Options{})
	m, cmd = update(t, m, keyPress("ctrl+c"))
	if !m.quitting || cmd == nil {
		t.Fatalf("expected ctrl+c to quit from the input")
	}
}

func TestWindowSizeAdjustsProgress(t *testing.T) {
	m := NewTimerModel(Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
	if m.progress.Width != 30 {
		t.Fatalf("progress width = %d, want 30", m.progress.Width)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if m.progress.Width != 20 {
		t.Fatalf("progress width = %d, want 20", m.progress.Width)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 12, Height: 20})
	if m.progress.Width != 10 {
		t.Fatalf("progress width = %d, want 10", m.progress.Width)
	}
}
