package config

// Layout constants.
const (
	// PanelWidth is the width of the duration entry panel.
	PanelWidth = 36

	// InputCharLimit caps the duration field length.
	InputCharLimit = 9

	// MaxDuration is the largest duration the field can hold.
	MaxDuration = 999999999

	// DefaultProgressWidth is used before the first window size message.
	DefaultProgressWidth = 30

	// MinProgressWidth is the narrowest progress bar rendered.
	MinProgressWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60
)

// Display strings.
const (
	Title            = "Countdown Timer"
	InputPlaceholder = "Enter duration in seconds"

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
