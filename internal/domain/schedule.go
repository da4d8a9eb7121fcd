package domain

// Schedule is the ordered task list. Order is schedule order.
type Schedule struct {
	Tasks []Task
}

// NewSchedule creates a schedule over a copy of tasks.
func NewSchedule(tasks []Task) *Schedule {
	s := &Schedule{Tasks: make([]Task, len(tasks))}
	copy(s.Tasks, tasks)
	return s
}

// Len returns the number of tasks.
func (s *Schedule) Len() int {
	return len(s.Tasks)
}

// IsEmpty returns true if the schedule has no tasks.
func (s *Schedule) IsEmpty() bool {
	return len(s.Tasks) == 0
}

// At returns the task at index i.
func (s *Schedule) At(i int) (Task, error) {
	if !s.valid(i) {
		return Task{}, ErrIndexOutOfRange
	}
	return s.Tasks[i], nil
}

// Append adds a task to the end and returns its index.
func (s *Schedule) Append(t Task) int {
	s.Tasks = append(s.Tasks, t)
	return len(s.Tasks) - 1
}

// Replace overwrites the task at index i.
func (s *Schedule) Replace(i int, t Task) error {
	if !s.valid(i) {
		return ErrIndexOutOfRange
	}
	s.Tasks[i] = t
	return nil
}

// Remove deletes the task at index i, keeping the order of the rest.
func (s *Schedule) Remove(i int) (Task, error) {
	if !s.valid(i) {
		return Task{}, ErrIndexOutOfRange
	}
	t := s.Tasks[i]
	s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
	return t, nil
}

// Swap exchanges the tasks at i and j.
// It returns false and leaves the schedule untouched if either index is out of range.
func (s *Schedule) Swap(i, j int) bool {
	if !s.valid(i) || !s.valid(j) {
		return false
	}
	s.Tasks[i], s.Tasks[j] = s.Tasks[j], s.Tasks[i]
	return true
}

// Snapshot returns a copy of the task slice.
func (s *Schedule) Snapshot() []Task {
	out := make([]Task, len(s.Tasks))
	copy(out, s.Tasks)
	return out
}

func (s *Schedule) valid(i int) bool {
	return i >= 0 && i < len(s.Tasks)
}
