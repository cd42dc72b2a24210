package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "1m 30s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatStatus returns a human-readable countdown status.
func FormatStatus(c models.Countdown) string {
	switch c.Status() {
	case models.StatusRunning:
		return "Running"
	case models.StatusPaused:
		return "Paused"
	case models.StatusFinished:
		return "Time's up"
	}
	if c.Confirmed > 0 {
		return fmt.Sprintf("Ready - %s", FormatDuration(time.Duration(c.Confirmed)*time.Second))
	}
	return "Set a duration to begin"
}
