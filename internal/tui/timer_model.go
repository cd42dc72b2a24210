// Package tui renders the countdown timer as a bubbletea program.
package tui

import (
	"strconv"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/notify"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// focusArea is the control currently receiving enter.
type focusArea int

const (
	focusInput focusArea = iota
	focusSet
	focusStart
	focusPause
	focusReset
	focusCount
)

// Options configure a new TimerModel.
type Options struct {
	Theme           string
	DefaultDuration int
	Notifier        notify.Notifier
}

// TimerModel is the countdown widget.
type TimerModel struct {
	countdown models.Countdown
	input     textinput.Model
	progress  progress.Model
	help      help.Model
	keys      keyMap
	ticker    tickScheduler
	notifier  notify.Notifier
	focus     focusArea
	width     int
	height    int
	quitting  bool
}

// NewTimerModel returns an idle widget with the duration field focused.
func NewTimerModel(opts Options) TimerModel {
	SetTheme(opts.Theme)

	ti := textinput.New()
	ti.Placeholder = config.InputPlaceholder
	ti.CharLimit = config.InputCharLimit
	ti.Width = config.PanelWidth - 4
	ti.Focus()

	prog := progress.New(progress.WithGradient(CurrentTheme.GradientStart, CurrentTheme.GradientEnd), progress.WithoutPercentage())
	prog.Width = config.DefaultProgressWidth

	m := TimerModel{
		countdown: models.NewCountdown(),
		input:     ti,
		progress:  prog,
		help:      help.New(),
		keys:      newKeyMap(),
		ticker:    newTickScheduler(),
		notifier:  opts.Notifier,
		focus:     focusInput,
	}
	m.keys.setInputMode(true)
	if opts.DefaultDuration > 0 {
		m.input.SetValue(strconv.Itoa(opts.DefaultDuration))
		m.syncStaged()
	}
	return m
}

func (m TimerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Countdown returns a copy of the widget state.
func (m TimerModel) Countdown() models.Countdown {
	return m.countdown
}

func (m TimerModel) notify(event notify.Event) {
	if m.notifier != nil {
		m.notifier.Notify(event, m.countdown)
	}
}

// syncStaged stages the field text and rewrites the field to match, so
// rejected text clears it.
func (m *TimerModel) syncStaged() {
	m.countdown.Stage(m.input.Value())
	if text := m.countdown.StagedText(); text != m.input.Value() {
		m.input.SetValue(text)
	}
}
