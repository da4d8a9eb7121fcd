package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/schedo/internal/app"
	"github.com/runoshun/schedo/internal/domain"
	"github.com/runoshun/schedo/internal/render"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	clock   domain.Clock
	logger  domain.Logger
	reorder *domain.Reorder
	err     error

	// Components (structs with pointers)
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state (large structs)
	nameInput     textinput.Model
	durationInput textinput.Model
	pendingName   string

	renderOpts render.Options
	rules      domain.InputConfig

	// Numeric state (smaller types last)
	mode     Mode
	width    int
	height   int
	errSeq   int
	finished bool
	quitting bool
}

// New creates a new TUI Model editing tasks with the given container.
// The model owns a copy of tasks; read the result with Tasks.
func New(c *app.Container, tasks []domain.Task) *Model {
	ni := textinput.New()
	ni.Placeholder = "Task name"
	ni.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "e.g. 30m, 1h, 1h30m"
	di.CharLimit = 50

	return &Model{
		clock:         c.Clock,
		logger:        c.Logger,
		reorder:       domain.NewReorder(domain.NewSchedule(tasks)),
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		help:          help.New(),
		nameInput:     ni,
		durationInput: di,
		renderOpts:    c.RenderOptions(),
		mode:          ModeNormal,
		rules:         c.InputRules(),
	}
}

// Init initializes the model and returns the initial command.
// An empty schedule opens straight into the add prompt.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if m.reorder.Schedule().IsEmpty() {
		cmds = append(cmds, m.startAdd())
	}
	return tea.Batch(cmds...)
}

// errorTimeout is how long an input error stays on screen.
const errorTimeout = 5 * time.Second

// tickCmd schedules the next wall-clock refresh.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return MsgTick{Time: t}
	})
}

// Tasks returns the current task order.
func (m *Model) Tasks() []domain.Task {
	return m.reorder.Schedule().Snapshot()
}

// Finished reports whether the user accepted the order with the finish key.
func (m *Model) Finished() bool {
	return m.finished
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Cursor returns the highlighted task index.
func (m *Model) Cursor() int {
	return m.reorder.Cursor()
}

// State returns the state of the reorder loop.
func (m *Model) State() domain.ReorderState {
	return m.reorder.State()
}

// Err returns the error shown in the error line, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) log(msg string) {
	if m.logger != nil {
		m.logger.Debug("tui", msg)
	}
}

// Run starts the bubbletea program on in/out and returns the final model.
func Run(ctx context.Context, m *Model, in io.Reader, out io.Writer) (*Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := final.(*Model); ok {
		return fm, nil
	}
	return m, nil
}
