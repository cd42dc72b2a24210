package tui

import (
	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Border        lipgloss.Color
	Header        lipgloss.Style
	Panel         lipgloss.Style
	Display       lipgloss.Style
	Finished      lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	SetColor      lipgloss.Color
	StartColor    lipgloss.Color
	PauseColor    lipgloss.Color
	ResetColor    lipgloss.Color
	GradientStart string
	GradientEnd   string
	Focused       lipgloss.Style
	Dim           lipgloss.Style
}

var Themes = map[string]Theme{
	config.ThemeDefault: {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("63"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Panel:         lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("0")).Padding(1, 2),
		Display:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(1, 0),
		Finished:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true).Padding(1, 0),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Padding(0, 2).Bold(true).Underline(true),
		SetColor:      lipgloss.Color("27"),
		StartColor:    lipgloss.Color("34"),
		PauseColor:    lipgloss.Color("178"),
		ResetColor:    lipgloss.Color("160"),
		GradientStart: "#5A56E0",
		GradientEnd:   "#EE6FF8",
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	config.ThemeDracula: {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("62"),                                                                   // Purple
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center), // Cyan
		Panel:         lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")).Padding(1, 2),
		Display:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(1, 0),
		Finished:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true).Padding(1, 0), // Orange
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Padding(0, 2).Bold(true).Underline(true),
		SetColor:      lipgloss.Color("141"), // Purple
		StartColor:    lipgloss.Color("84"),  // Green
		PauseColor:    lipgloss.Color("228"), // Yellow
		ResetColor:    lipgloss.Color("210"), // Red/Pink
		GradientStart: "#BD93F9",
		GradientEnd:   "#FF79C6",
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes[config.ThemeDefault]

// SetTheme switches to the named theme. Unknown names select the default
// theme and report false.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		CurrentTheme = Themes[config.ThemeDefault]
		return false
	}
	CurrentTheme = t
	return true
}
