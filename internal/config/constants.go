package config

import "time"

// Timer cadence.
const (
	TickInterval = time.Second
)

// Themes.
const (
	ThemeDefault = "default"
	ThemeDracula = "dracula"
)

// Application settings.
const (
	AppName        = "countdown"
	ConfigFileName = "config.yaml"
	DebugLogName   = "debug.log"
	ConfigEnv      = "COUNTDOWN_CONFIG"
	DebugEnv       = "COUNTDOWN_DEBUG"
)
