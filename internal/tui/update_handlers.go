package tui

import (
	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/notify"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m TimerModel) handleWindowSize(msg tea.WindowSizeMsg) (TimerModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	if m.width > 0 {
		target := config.DefaultProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		m.progress.Width = util.Clamp(target, config.MinProgressWidth, config.DefaultProgressWidth)
	}
	return m, nil
}

func (m TimerModel) handleTick(msg TickMsg) (TimerModel, tea.Cmd) {
	if !m.ticker.Current(msg) || !m.countdown.Running() {
		return m, nil
	}
	if m.countdown.Tick() {
		m.ticker.Cancel()
		m.notify(notify.EventFinished)
		return m, nil
	}
	return m, m.ticker.Schedule()
}

func (m TimerModel) handleKey(msg tea.KeyMsg) (TimerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Next):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}
	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleControlKey(msg)
}

func (m TimerModel) handleInputKey(msg tea.KeyMsg) (TimerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Press):
		return m.setDuration()
	case key.Matches(msg, m.keys.Leave):
		return m.setFocus(focusStart)
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.syncStaged()
	}
	return m, cmd
}

func (m TimerModel) handleControlKey(msg tea.KeyMsg) (TimerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.focus > focusSet {
			return m.setFocus(m.focus - 1)
		}
	case key.Matches(msg, m.keys.Right):
		if m.focus < focusReset {
			return m.setFocus(m.focus + 1)
		}
	case key.Matches(msg, m.keys.Press):
		return m.press()
	case key.Matches(msg, m.keys.Start):
		return m.start()
	case key.Matches(msg, m.keys.Pause):
		return m.pause()
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	case key.Matches(msg, m.keys.Input):
		return m.setFocus(focusInput)
	}
	return m, nil
}

func (m TimerModel) setFocus(f focusArea) (TimerModel, tea.Cmd) {
	m.focus = f
	m.keys.setInputMode(f == focusInput)
	if f == focusInput {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

func (m TimerModel) press() (TimerModel, tea.Cmd) {
	switch m.focus {
	case focusInput, focusSet:
		return m.setDuration()
	case focusStart:
		return m.start()
	case focusPause:
		return m.pause()
	case focusReset:
		return m.reset()
	}
	return m, nil
}

func (m TimerModel) setDuration() (TimerModel, tea.Cmd) {
	if !m.countdown.SetDuration() {
		return m, nil
	}
	m.ticker.Cancel()
	m.notify(notify.EventDurationSet)
	return m, nil
}

func (m TimerModel) start() (TimerModel, tea.Cmd) {
	event := notify.EventStarted
	if m.countdown.Paused {
		event = notify.EventResumed
	}
	if !m.countdown.Start() {
		return m, nil
	}
	m.notify(event)
	return m, m.ticker.Schedule()
}

func (m TimerModel) pause() (TimerModel, tea.Cmd) {
	if !m.countdown.Pause() {
		return m, nil
	}
	m.ticker.Cancel()
	m.notify(notify.EventPaused)
	return m, nil
}

func (m TimerModel) reset() (TimerModel, tea.Cmd) {
	m.ticker.Cancel()
	if !m.countdown.Reset() {
		return m, nil
	}
	m.notify(notify.EventReset)
	return m, nil
}

func (m TimerModel) quit() (TimerModel, tea.Cmd) {
	m.ticker.Cancel()
	m.quitting = true
	return m, tea.Quit
}
