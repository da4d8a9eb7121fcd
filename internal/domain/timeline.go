package domain

import "time"

// Entry is one task placed on the timeline.
type Entry struct {
	Start    time.Time
	Finish   time.Time
	Task     Task
	Duration time.Duration
	Index    int
}

// BuildTimeline places tasks back to back starting at anchor.
// The first task starts at anchor and every later task starts when the
// previous one finishes.
func BuildTimeline(tasks []Task, anchor time.Time) []Entry {
	entries := make([]Entry, 0, len(tasks))
	current := anchor
	for i, t := range tasks {
		d := t.Length()
		finish := current.Add(d)
		entries = append(entries, Entry{
			Index:    i,
			Task:     t,
			Start:    current,
			Finish:   finish,
			Duration: d,
		})
		current = finish
	}
	return entries
}

// TotalDuration returns the summed duration of all tasks.
func TotalDuration(tasks []Task) time.Duration {
	var total time.Duration
	for _, t := range tasks {
		total += t.Length()
	}
	return total
}
