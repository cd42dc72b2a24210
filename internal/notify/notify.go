// Package notify delivers countdown state changes to observers.
package notify

import (
	"fmt"
	"io"
	"log"

	"github.com/akyairhashvil/countdown/internal/models"
)

//go:generate mockgen -source=notify.go -destination=mocks/notifier.go -package=mocks

// Event names a state change of a countdown.
type Event int

const (
	EventDurationSet Event = iota
	EventStarted
	EventResumed
	EventPaused
	EventReset
	EventFinished
)

func (e Event) String() string {
	switch e {
	case EventDurationSet:
		return "duration-set"
	case EventStarted:
		return "started"
	case EventResumed:
		return "resumed"
	case EventPaused:
		return "paused"
	case EventReset:
		return "reset"
	case EventFinished:
		return "finished"
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// Notifier observes countdown state changes. Notify is called on the UI
// goroutine after the change has been applied.
type Notifier interface {
	Notify(event Event, state models.Countdown)
}

// Func adapts a plain function to Notifier.
type Func func(Event, models.Countdown)

func (f Func) Notify(event Event, state models.Countdown) {
	f(event, state)
}

// Multi fans an event out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(event Event, state models.Countdown) {
	for _, n := range m {
		if n != nil {
			n.Notify(event, state)
		}
	}
}

// Bell writes the terminal bell character when a countdown finishes.
type Bell struct {
	W io.Writer
}

func (b Bell) Notify(event Event, _ models.Countdown) {
	if event != EventFinished || b.W == nil {
		return
	}
	if _, err := io.WriteString(b.W, "\a"); err != nil {
		log.Printf("bell: %v", err)
	}
}

// Logger records every event with the remaining time.
type Logger struct {
	L *log.Logger
}

func (l Logger) Notify(event Event, state models.Countdown) {
	logger := l.L
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("countdown %s: %s left (%s)", event, state.Display(), state.Status())
}
