package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/schedo/internal/app"
	"github.com/runoshun/schedo/internal/domain"
	"github.com/runoshun/schedo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func sampleTasks() []domain.Task {
	return []domain.Task{
		{Name: "Write report", Duration: "1h"},
		{Name: "Email team", Duration: "15m"},
		{Name: "Lunch", Duration: "45m"},
	}
}

func newTestModel(t *testing.T, tasks []domain.Task, cfg *domain.Config) *Model {
	t.Helper()
	c := app.NewWithDeps(app.Config{}, cfg, testutil.NewMockScheduleRepository(nil), &testutil.MockRenderWriter{}, &testutil.MockClock{NowTime: testNow}, nil)
	return New(c, tasks)
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		send(m, keyRunes(string(r)))
	}
}

func names(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Name
	}
	return out
}

func TestUpdate_PickUpAndMoveToBottom(t *testing.T) {
	m := newTestModel(t, sampleTasks(), nil)

	send(m, keySpace, keyDown, keyDown, keySpace)

	assert.Equal(t, []string{"Email team", "Lunch", "Write report"}, names(m.Tasks()))
	assert.Equal(t, 2, m.Cursor())
	assert.Equal(t, domain.StateBrowsing, m.State())
}

func TestUpdate_VimKeysMoveCursor(t *testing.T) {
	m := newTestModel(t, sampleTasks(), nil)

	send(m, keyRunes("j"), keyRunes("j"), keyRunes("j"))
	assert.Equal(t, 2, m.Cursor())

	send(m, keyRunes("k"), keyUp, keyUp)
	assert.Equal(t, 0, m.Cursor())
}

func TestUpdate_FinishQuits(t *testing.T) {
	m := newTestModel(t, sampleTasks(), nil)

	cmd := send(m, keySpace, keyDown, keyEsc)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Finished())
	assert.Equal(t, []string{"Email team", "Write report", "Lunch"}, names(m.Tasks()))
}

func TestUpdate_CtrlCQuitsWithoutFinishing(t *testing.T) {
	m := newTestModel(t, sampleTasks(), nil)

	cmd := send(m, keyCtrlC)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Finished())
}

func TestUpdate_AddTask(t *testing.T) {
	m := newTestModel(t, sampleTasks(), nil)

	send(m, keyRunes("a"))
	assert.Equal(t, ModeInputName, m.Mode())

	typeText(m, "Gym")
	send(m, keyEnter)
	assert.Equal(t, ModeInputDuration, m.Mode())

	typeText(m, "30m")
	send(m, keyEnter)

	assert.Equal(t, ModeNormal, m.Mode())
	require.Len(t, m.Tasks(), 4)
	assert.Equal(t, domain.Task{Name: "Gym", Duration: "30m"}, m.Tasks()[3])
	assert.Equal(t, 3, m.Cursor())
}

func TestUpdate_AddTask_EmptyNameAccepted(t *testing.T) {
	m := newTestModel(t, sampleTasks(), nil)

	send(m, keyRunes("a"), keyEnter)
	assert.Equal(t, ModeInputDuration, m.Mode())
	typeText(m, "10m")
	send(m, keyEnter)

	assert.Equal(t, ModeNormal, m.Mode())
	require.Len(t, m.Tasks(), 4)
	assert.Equal(t, domain.Task{Name: "", Duration: "10m"}, m.Tasks()[3])
}

func TestUpdate_AddTask_RequireNames(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Input.RequireNames = true
	m := newTestModel(t, sampleTasks(), cfg)

	send(m, keyRunes("a"), keyEnter)

	assert.Equal(t, ModeInputName, m.Mode())
	assert.ErrorIs(t, m.Err(), domain.ErrEmptyName)
}

func TestUpdate_AddTask_Cancel(t *testing.T) {
	m := newTestModel(t, sampleTasks(), nil)

	send(m, keyRunes("a"))
	typeText(m, "Gym")
	send(m, keyEsc)

	assert.Equal(t, ModeNormal, m.Mode())
	assert.Len(t, m.Tasks(), 3)
	assert.False(t, m.Finished())
}

func TestUpdate_AddTask_StrictDuration(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Input.StrictDurations = true
	m := newTestModel(t, sampleTasks(), cfg)

	send(m, keyRunes("a"))
	typeText(m, "Gym")
	send(m, keyEnter)
	typeText(m, "soon")
	send(m, keyEnter)

	assert.Equal(t, ModeInputDuration, m.Mode())
	assert.ErrorIs(t, m.Err(), domain.ErrInvalidDuration)
	assert.Len(t, m.Tasks(), 3)
}

func TestUpdate_AddIgnoredWhileMoving(t *testing.T) {
	m := newTestModel(t, sampleTasks(), nil)

	send(m, keySpace, keyRunes("a"), keyRunes("e"))

	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, domain.StateMoving, m.State())
}

func TestUpdate_EditTask(t *testing.T) {
	m := newTestModel(t, sampleTasks(), nil)

	send(m, keyDown, keyRunes("e"))
	assert.Equal(t, ModeEditName, m.Mode())

	send(m, keyEnter) // keep name
	assert.Equal(t, ModeEditDuration, m.Mode())

	typeText(m, "20m")
	send(m, keyEnter)

	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, domain.Task{Name: "Email team", Duration: "20m"}, m.Tasks()[1])
}

func TestUpdate_EmptyScheduleOpensAddPrompt(t *testing.T) {
	m := newTestModel(t, nil, nil)

	cmd := m.Init()

	assert.NotNil(t, cmd)
	assert.Equal(t, ModeInputName, m.Mode())
}

func TestUpdate_EditOnEmptyScheduleIgnored(t *testing.T) {
	m := newTestModel(t, nil, nil)

	send(m, keyRunes("e"), keySpace)

	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, domain.StateBrowsing, m.State())
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := newTestModel(t, sampleTasks(), nil)

	send(m, keyRunes("?"))
	assert.Equal(t, ModeHelp, m.Mode())

	send(m, keyDown)
	assert.Equal(t, 0, m.Cursor())

	send(m, keyRunes("?"))
	assert.Equal(t, ModeNormal, m.Mode())
}

func TestUpdate_ErrorClearsAfterTimeout(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Input.RequireNames = true
	m := newTestModel(t, sampleTasks(), cfg)

	cmd := send(m, keyRunes("a"), keyEnter)
	require.NotNil(t, cmd)
	require.ErrorIs(t, m.Err(), domain.ErrEmptyName)

	send(m, MsgClearError{Seq: 1})
	assert.NoError(t, m.Err())
}

func TestUpdate_StaleClearKeepsNewerError(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Input.RequireNames = true
	m := newTestModel(t, sampleTasks(), cfg)

	send(m, keyRunes("a"), keyEnter, keyEnter)
	require.Error(t, m.Err())

	send(m, MsgClearError{Seq: 1})
	assert.Error(t, m.Err())

	send(m, MsgClearError{Seq: 2})
	assert.NoError(t, m.Err())
}

func TestUpdate_TickSchedulesNextTick(t *testing.T) {
	m := newTestModel(t, sampleTasks(), nil)

	cmd := send(m, MsgTick{Time: testNow})

	assert.NotNil(t, cmd)
}
