package tui

import (
	"strings"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return text
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func (m TimerModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		CurrentTheme.Header.Render(config.Title),
		m.renderPanel(),
		m.renderDisplay(),
		m.progress.ViewAs(m.countdown.Remaining()),
		m.renderControls(),
		truncateLabel(m.help.View(m.keys), m.width),
		CurrentTheme.Dim.Render("v" + versionLabel()),
	}
	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 {
		return CurrentTheme.Base.Render(body)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m TimerModel) renderPanel() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderButton("Set", CurrentTheme.SetColor, m.focus == focusSet))
	frame := CurrentTheme.Panel.Width(config.PanelWidth)
	if m.focus == focusInput {
		frame = frame.Border(lipgloss.RoundedBorder()).BorderForeground(CurrentTheme.Border)
	} else {
		frame = frame.Border(lipgloss.HiddenBorder())
	}
	return frame.Render(b.String())
}

func (m TimerModel) renderDisplay() string {
	style := CurrentTheme.Display
	if m.countdown.Status() == models.StatusFinished {
		style = CurrentTheme.Finished
	}
	display := style.Render(m.countdown.Display())
	status := CurrentTheme.Dim.Render(FormatStatus(m.countdown))
	return lipgloss.JoinVertical(lipgloss.Center, display, status)
}

func (m TimerModel) renderControls() string {
	buttons := []string{
		m.renderButton(m.countdown.StartLabel(), CurrentTheme.StartColor, m.focus == focusStart),
		m.renderButton("Pause", CurrentTheme.PauseColor, m.focus == focusPause),
		m.renderButton("Reset", CurrentTheme.ResetColor, m.focus == focusReset),
	}
	return lipgloss.NewStyle().Margin(1, 0).Render(strings.Join(buttons, "  "))
}

func (m TimerModel) renderButton(label string, color lipgloss.Color, focused bool) string {
	style := CurrentTheme.Button
	marker := "  "
	if focused {
		style = CurrentTheme.ButtonFocused
		marker = CurrentTheme.Focused.Render("› ")
	}
	return marker + style.Background(color).Render(label)
}
