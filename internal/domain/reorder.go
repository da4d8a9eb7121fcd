package domain

// ReorderState is the state of the reorder loop.
type ReorderState int

const (
	StateBrowsing ReorderState = iota // Cursor moves freely
	StateMoving                       // A task is picked up and moves with the cursor
)

// String returns the string representation of the state.
func (s ReorderState) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// Event is an input event understood by the reorder loop.
type Event int

const (
	EventUp     Event = iota // Arrow up
	EventDown                // Arrow down
	EventToggle              // Space: pick up or drop
	EventFinish              // Escape: leave the loop
)

// String returns the string representation of the event.
func (e Event) String() string {
	switch e {
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventToggle:
		return "toggle"
	case EventFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Reorder is the cursor-based list editor. It mutates its schedule in place.
// The cursor always stays within [0, len-1] (0 for an empty schedule).
type Reorder struct {
	schedule *Schedule
	state    ReorderState
	cursor   int
	moving   int
	done     bool
}

// NewReorder starts a reorder loop over s in the browsing state with the cursor on the first task.
func NewReorder(s *Schedule) *Reorder {
	return &Reorder{schedule: s, state: StateBrowsing}
}

// Schedule returns the schedule being edited.
func (r *Reorder) Schedule() *Schedule { return r.schedule }

// State returns the current state.
func (r *Reorder) State() ReorderState { return r.state }

// Cursor returns the highlighted index.
func (r *Reorder) Cursor() int { return r.cursor }

// Done reports whether EventFinish has been applied.
func (r *Reorder) Done() bool { return r.done }

// Moving returns the index of the picked-up task and true while in the moving state.
func (r *Reorder) Moving() (int, bool) {
	if r.state != StateMoving {
		return 0, false
	}
	return r.moving, true
}

// Apply feeds one event into the loop and reports whether the loop is finished.
// Events after finish are ignored.
func (r *Reorder) Apply(ev Event) bool {
	if r.done {
		return true
	}
	if ev == EventFinish {
		r.done = true
		return true
	}

	switch r.state {
	case StateBrowsing:
		r.browse(ev)
	case StateMoving:
		r.move(ev)
	}
	return false
}

func (r *Reorder) browse(ev Event) {
	switch ev {
	case EventUp:
		r.cursor = r.clamp(r.cursor - 1)
	case EventDown:
		r.cursor = r.clamp(r.cursor + 1)
	case EventToggle:
		if r.schedule.IsEmpty() {
			return
		}
		r.state = StateMoving
		r.moving = r.cursor
	}
}

func (r *Reorder) move(ev Event) {
	switch ev {
	case EventUp:
		if r.moving > 0 && r.schedule.Swap(r.moving, r.moving-1) {
			r.moving--
		}
	case EventDown:
		if r.moving < r.schedule.Len()-1 && r.schedule.Swap(r.moving, r.moving+1) {
			r.moving++
		}
	case EventToggle:
		r.cursor = r.moving
		r.state = StateBrowsing
	}
	r.cursor = r.moving
}

// Add appends a task and moves the cursor onto it. Ignored while moving.
func (r *Reorder) Add(t Task) bool {
	if r.state != StateBrowsing || r.done {
		return false
	}
	r.cursor = r.schedule.Append(t)
	return true
}

// Edit replaces the name and duration of the task under the cursor.
// Blank values keep the current ones. Ignored while moving or on an empty schedule.
func (r *Reorder) Edit(name, duration string) bool {
	if r.state != StateBrowsing || r.done {
		return false
	}
	t, err := r.schedule.At(r.cursor)
	if err != nil {
		return false
	}
	return r.schedule.Replace(r.cursor, t.Edit(name, duration)) == nil
}

// Current returns the task under the cursor.
func (r *Reorder) Current() (Task, bool) {
	t, err := r.schedule.At(r.cursor)
	return t, err == nil
}

func (r *Reorder) clamp(i int) int {
	if i > r.schedule.Len()-1 {
		i = r.schedule.Len() - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// RunScript applies events to a copy of tasks until the events run out or the
// loop finishes, and returns the resulting order.
func RunScript(tasks []Task, events []Event) []Task {
	s := NewSchedule(tasks)
	r := NewReorder(s)
	for _, ev := range events {
		if r.Apply(ev) {
			break
		}
	}
	return s.Snapshot()
}
