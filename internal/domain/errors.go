package domain

import "errors"

// Domain errors.
var (
	ErrScheduleNotFound = errors.New("no saved schedule found")
	ErrEmptyName        = errors.New("task name cannot be empty")
	ErrInvalidDuration  = errors.New("duration has no hour or minute component")
	ErrIndexOutOfRange  = errors.New("task index out of range")
	ErrInvalidSchedule  = errors.New("invalid schedule file")
	ErrInvalidFormat    = errors.New("invalid export format")
	ErrInvalidClock     = errors.New("invalid clock time (want HH:MM)")
	ErrEmptySchedule    = errors.New("schedule has no tasks")
	ErrConfigExists     = errors.New("config file already exists")
)
