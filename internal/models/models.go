package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/countdown/internal/util"
)

// CountdownStatus summarises the flags of a countdown for display.
type CountdownStatus string

const (
	StatusIdle     CountdownStatus = "idle"
	StatusRunning  CountdownStatus = "running"
	StatusPaused   CountdownStatus = "paused"
	StatusFinished CountdownStatus = "finished"
)

// Countdown is the state of a single countdown timer.
type Countdown struct {
	Staged    *int // Nil means the duration field is empty
	Confirmed int  // Last value accepted by SetDuration
	TimeLeft  int  // Seconds remaining, never negative
	Active    bool
	Paused    bool
}

// NewCountdown returns an idle countdown with an empty staged duration.
func NewCountdown() Countdown {
	return Countdown{}
}

// ParseStaged interprets raw field text as a staged duration. Empty,
// non-numeric and zero input all stage nil.
func ParseStaged(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		return nil
	}
	return util.Ptr(n)
}

// Stage records the raw field text as the staged duration and reports the
// staged value.
func (c *Countdown) Stage(raw string) *int {
	c.Staged = ParseStaged(raw)
	return c.Staged
}

// StagedText renders the staged value the way the duration field shows it.
func (c Countdown) StagedText() string {
	if c.Staged == nil {
		return ""
	}
	return strconv.Itoa(*c.Staged)
}

// SetDuration commits a positive staged duration. It reports whether the
// staged value was accepted.
func (c *Countdown) SetDuration() bool {
	secs := util.Deref(c.Staged)
	if secs <= 0 {
		return false
	}
	c.TimeLeft = secs
	c.Confirmed = secs
	c.Active = false
	c.Paused = false
	return true
}

// Start begins or resumes the countdown. It reports whether the running
// state changed.
func (c *Countdown) Start() bool {
	if c.TimeLeft <= 0 || c.Running() {
		return false
	}
	c.Active = true
	c.Paused = false
	return true
}

// Pause halts a running countdown.
func (c *Countdown) Pause() bool {
	if !c.Active {
		return false
	}
	c.Paused = true
	c.Active = false
	return true
}

// Reset stops the countdown and restores the last confirmed duration. It
// reports whether anything changed.
func (c *Countdown) Reset() bool {
	changed := c.Active || c.Paused || c.TimeLeft != c.Confirmed
	c.Active = false
	c.Paused = false
	c.TimeLeft = c.Confirmed
	return changed
}

// Tick advances a running countdown by one second. It reports whether this
// tick finished the countdown.
func (c *Countdown) Tick() bool {
	if !c.Running() {
		return false
	}
	if c.TimeLeft <= 1 {
		// Finishing also clears Active, so Pause is a no-op on a finished countdown.
		c.TimeLeft = 0
		c.Active = false
		return true
	}
	c.TimeLeft--
	return false
}

// Running reports whether ticks should advance the countdown.
func (c Countdown) Running() bool {
	return c.Active && !c.Paused
}

// StartLabel is the caption of the start control.
func (c Countdown) StartLabel() string {
	if c.Paused {
		return "Resume"
	}
	return "Start"
}

// Status derives the display status from the flags and remaining time.
func (c Countdown) Status() CountdownStatus {
	switch {
	case c.Running():
		return StatusRunning
	case c.Paused:
		return StatusPaused
	case c.Confirmed > 0 && c.TimeLeft == 0:
		return StatusFinished
	default:
		return StatusIdle
	}
}

// Remaining is the fraction of the confirmed duration still left.
func (c Countdown) Remaining() float64 {
	if c.Confirmed <= 0 {
		return 0
	}
	return float64(c.TimeLeft) / float64(c.Confirmed)
}

// Display formats TimeLeft as MM:SS.
func (c Countdown) Display() string {
	return FormatTime(c.TimeLeft)
}

// FormatTime renders seconds as MM:SS. Minutes are not clamped, so 6000
// seconds renders as "100:00".
func FormatTime(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
