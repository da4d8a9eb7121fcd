package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/schedo/internal/domain"
	"github.com/runoshun/schedo/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgTick:
		// View reads the clock on every redraw; the tick only forces one.
		return m, tickCmd()

	case MsgClearError:
		if msg.Seq == m.errSeq {
			m.err = nil
		}
		return m, nil
	}

	if m.mode.IsInputMode() {
		return m.updateFocusedInput(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c leaves from any mode without a final render
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.log("quit without finishing")
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeInputName, ModeInputDuration, ModeEditName, ModeEditDuration:
		return m.handleInputMode(msg)
	}
	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Finish):
		m.reorder.Apply(domain.EventFinish)
		m.finished = true
		m.log(fmt.Sprintf("finished with %d tasks", m.reorder.Schedule().Len()))
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.apply(domain.EventUp)

	case key.Matches(msg, m.keys.Down):
		m.apply(domain.EventDown)

	case key.Matches(msg, m.keys.Toggle):
		m.apply(domain.EventToggle)

	case key.Matches(msg, m.keys.Add):
		if m.reorder.State() != domain.StateBrowsing {
			return m, nil
		}
		return m, m.startAdd()

	case key.Matches(msg, m.keys.Edit):
		if m.reorder.State() != domain.StateBrowsing {
			return m, nil
		}
		return m, m.startEdit()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		m.help.ShowAll = true
	}
	return m, nil
}

func (m *Model) apply(ev domain.Event) {
	m.err = nil
	m.reorder.Apply(ev)
	m.log(fmt.Sprintf("%s -> %s cursor=%d", ev, m.reorder.State(), m.reorder.Cursor()))
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Cancel) {
		m.mode = ModeNormal
		m.help.ShowAll = false
	}
	return m, nil
}

// startAdd opens the name prompt for a new task.
func (m *Model) startAdd() tea.Cmd {
	m.err = nil
	m.pendingName = ""
	m.nameInput.Reset()
	m.durationInput.Reset()
	m.nameInput.Placeholder = "Task name"
	m.durationInput.Placeholder = "e.g. 30m, 1h, 1h30m"
	m.mode = ModeInputName
	m.durationInput.Blur()
	return tea.Batch(m.nameInput.Focus(), textinput.Blink)
}

// startEdit opens the name prompt for the task under the cursor.
func (m *Model) startEdit() tea.Cmd {
	cur, ok := m.reorder.Current()
	if !ok {
		return nil
	}
	m.err = nil
	m.pendingName = ""
	m.nameInput.Reset()
	m.durationInput.Reset()
	m.nameInput.Placeholder = cur.Name
	m.durationInput.Placeholder = cur.Duration
	m.mode = ModeEditName
	m.durationInput.Blur()
	return tea.Batch(m.nameInput.Focus(), textinput.Blink)
}

func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closePrompt()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.confirmInput()
	}
	return m.updateFocusedInput(msg)
}

func (m *Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case ModeInputName, ModeEditName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case ModeInputDuration, ModeEditDuration:
		m.durationInput, cmd = m.durationInput.Update(msg)
	case ModeNormal, ModeHelp:
	}
	return m, cmd
}

func (m *Model) confirmInput() (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeInputName:
		name := m.nameInput.Value()
		if m.rules.RequireNames {
			if err := domain.ValidateName(name); err != nil {
				return m, m.showError(err)
			}
		}
		m.err = nil
		m.pendingName = name
		m.mode = ModeInputDuration
		m.nameInput.Blur()
		return m, m.durationInput.Focus()

	case ModeInputDuration:
		task, err := usecase.CheckTask(m.pendingName, m.durationInput.Value(), m.rules)
		if err != nil {
			return m, m.showError(err)
		}
		m.reorder.Add(task)
		m.log(fmt.Sprintf("added %q (%s)", task.Name, task.Duration))
		m.closePrompt()
		return m, nil

	case ModeEditName:
		m.pendingName = m.nameInput.Value()
		m.mode = ModeEditDuration
		m.nameInput.Blur()
		return m, m.durationInput.Focus()

	case ModeEditDuration:
		duration := m.durationInput.Value()
		if m.rules.StrictDurations && strings.TrimSpace(duration) != "" {
			if err := domain.ValidateDuration(duration); err != nil {
				return m, m.showError(fmt.Errorf("%w: %q", err, duration))
			}
		}
		m.reorder.Edit(m.pendingName, duration)
		m.log(fmt.Sprintf("edited task #%d", m.reorder.Cursor()+1))
		m.closePrompt()
		return m, nil

	case ModeNormal, ModeHelp:
	}
	return m, nil
}

// closePrompt leaves the add/edit prompt without touching the schedule.
func (m *Model) closePrompt() {
	m.err = nil
	m.pendingName = ""
	m.nameInput.Reset()
	m.durationInput.Reset()
	m.nameInput.Blur()
	m.durationInput.Blur()
	m.mode = ModeNormal
}

// showError displays err and schedules its removal.
func (m *Model) showError(err error) tea.Cmd {
	m.err = err
	m.errSeq++
	seq := m.errSeq
	return tea.Tick(errorTimeout, func(time.Time) tea.Msg {
		return MsgClearError{Seq: seq}
	})
}
