// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Task is a named block of work with a free-text duration.
// Duration is kept as the user typed it and parsed on every render pass.
type Task struct {
	Name     string `json:"name" yaml:"name"`         // Task name (not unique)
	Duration string `json:"duration" yaml:"duration"` // Raw duration text, e.g. "1h30m"
}

// NewTask creates a task. Any name is accepted, including an empty one.
func NewTask(name, duration string) Task {
	return Task{Name: name, Duration: duration}
}

// ValidateName reports ErrEmptyName for a blank name.
// It is only consulted when names are required.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Length returns the parsed duration of the task.
func (t Task) Length() time.Duration {
	return ParseDuration(t.Duration)
}

// Label returns the "name (duration)" text shown inside a block.
func (t Task) Label() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.Duration)
}

// Edit returns a copy of the task with non-blank fields replaced.
// Blank input keeps the existing value.
func (t Task) Edit(name, duration string) Task {
	if strings.TrimSpace(name) != "" {
		t.Name = name
	}
	if strings.TrimSpace(duration) != "" {
		t.Duration = duration
	}
	return t
}
