package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/schedo/internal/domain"
	"github.com/runoshun/schedo/internal/render"
)

// Status hints shown under the timeline.
const (
	hintBrowsing = "Use arrow keys to move the cursor. Press space to pick up a task."
	hintMoving   = "Use arrow keys to move the task. Press space to drop."
)

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting || m.finished {
		return ""
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeInputName, ModeInputDuration, ModeEditName, ModeEditDuration:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the timeline with hints, prompts and footer.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	b.WriteString(m.viewTimeline())
	b.WriteString("\n")

	if m.mode.IsInputMode() {
		b.WriteString("\n")
		b.WriteString(m.viewPrompt())
		b.WriteString("\n")
	} else if m.reorder.State() == domain.StateMoving {
		b.WriteString(m.styles.HintMoving.Render(hintMoving))
		b.WriteString("\n")
	} else {
		b.WriteString(m.styles.Hint.Render(hintBrowsing))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title and the schedule span.
func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("Reorder Your Tasks")
	tasks := m.reorder.Schedule().Tasks
	if len(tasks) == 0 {
		return title
	}
	total := domain.TotalDuration(tasks)
	now := m.clock.Now()
	span := fmt.Sprintf("%d tasks · %s - %s", len(tasks), domain.FormatClock(now), domain.FormatClock(now.Add(total)))
	return lipgloss.JoinVertical(lipgloss.Left, title, m.styles.Total.Render(span))
}

// viewTimeline renders the block timeline anchored at now, highlighting the
// block under the cursor and the task being moved.
func (m *Model) viewTimeline() string {
	tasks := m.reorder.Schedule().Tasks
	if len(tasks) == 0 {
		return m.styles.Footer.Render("No tasks yet. Press a to add one.")
	}

	entries := domain.BuildTimeline(tasks, m.clock.Now())
	groups := render.BlockLines(entries, m.renderOpts)
	moving, isMoving := m.reorder.Moving()

	var lines []string
	for i, group := range groups {
		style := m.styles.BlockStyle(i == m.reorder.Cursor(), isMoving && i == moving)
		for _, line := range group {
			lines = append(lines, style.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// viewPrompt renders the add/edit dialog.
func (m *Model) viewPrompt() string {
	var title, step, label, input string
	var cur domain.Task
	if m.mode.IsEditMode() {
		cur, _ = m.reorder.Current()
	}

	switch m.mode {
	case ModeInputName:
		title, step, label = "Add a new task", "Step 1 of 2", "Enter task name"
		input = m.nameInput.View()
	case ModeInputDuration:
		title, step, label = "Add a new task", "Step 2 of 2", "Enter task duration (e.g., 30m, 1h)"
		input = m.durationInput.View()
	case ModeEditName:
		title, step = "Edit task: "+cur.Label(), "Step 1 of 2"
		label = fmt.Sprintf("Enter new name (leave blank to keep '%s')", cur.Name)
		input = m.nameInput.View()
	case ModeEditDuration:
		title, step = "Edit task: "+cur.Label(), "Step 2 of 2"
		label = fmt.Sprintf("Enter new duration (leave blank to keep '%s')", cur.Duration)
		input = m.durationInput.View()
	case ModeNormal, ModeHelp:
		return ""
	}

	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" confirm  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" cancel")

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DialogTitle.Render(title),
		m.styles.Footer.Render(step),
		"",
		m.styles.InputPrompt.Render(label),
		input,
		"",
		hint,
	)
	return m.styles.Dialog.Render(content)
}

// viewFooter renders the short help line.
func (m *Model) viewFooter() string {
	if m.mode.IsInputMode() {
		return ""
	}
	return m.help.View(m.keys)
}

// viewHelp renders the full keybinding list.
func (m *Model) viewHelp() string {
	title := m.styles.DialogTitle.Render("KEYBOARD SHORTCUTS")
	return m.styles.Help.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", m.help.View(m.keys)))
}
