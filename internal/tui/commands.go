package tui

import (
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is delivered once per interval while a countdown runs. ID ties
// the message to the schedule that produced it.
type TickMsg struct {
	ID   int
	Time time.Time
}

// tickScheduler owns the single outstanding tick. Cancelling bumps the
// generation so any tick already in flight is discarded on arrival.
type tickScheduler struct {
	id       int
	interval time.Duration
}

func newTickScheduler() tickScheduler {
	return tickScheduler{interval: config.TickInterval}
}

func (s *tickScheduler) Cancel() {
	s.id++
}

// Schedule cancels the pending tick and returns a command for the next one.
func (s *tickScheduler) Schedule() tea.Cmd {
	s.Cancel()
	id := s.id
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

func (s *tickScheduler) Current(msg TickMsg) bool {
	return msg.ID == s.id
}
