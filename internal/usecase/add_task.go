package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/schedo/internal/domain"
)

// AddTaskInput contains the parameters for appending a task to the saved schedule.
type AddTaskInput struct {
	Name     string // Task name (may be blank unless names are required)
	Duration string // Raw duration text
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task  domain.Task
	Index int // Zero-based position of the new task
}

// AddTask is the use case for appending a task to the saved schedule.
type AddTask struct {
	schedules domain.ScheduleRepository
	logger    domain.Logger
	rules     domain.InputConfig
}

// NewAddTask creates a new AddTask use case.
// rules selects the optional name and duration checks.
func NewAddTask(schedules domain.ScheduleRepository, logger domain.Logger, rules domain.InputConfig) *AddTask {
	return &AddTask{
		schedules: schedules,
		logger:    logger,
		rules:     rules,
	}
}

// Execute appends the task to the end of the saved schedule.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	task, err := CheckTask(in.Name, in.Duration, uc.rules)
	if err != nil {
		return nil, err
	}

	var index int
	err = uc.schedules.Update(func(tasks []domain.Task) ([]domain.Task, error) {
		s := domain.NewSchedule(tasks)
		index = s.Append(task)
		return s.Tasks, nil
	})
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("added %q (%s) at #%d", task.Name, task.Duration, index+1))
	}
	return &AddTaskOutput{Task: task, Index: index}, nil
}

// CheckTask builds a task from user input. Without rules any input is accepted.
func CheckTask(name, duration string, rules domain.InputConfig) (domain.Task, error) {
	if rules.RequireNames {
		if err := domain.ValidateName(name); err != nil {
			return domain.Task{}, err
		}
	}
	if rules.StrictDurations {
		if err := domain.ValidateDuration(duration); err != nil {
			return domain.Task{}, fmt.Errorf("%w: %q", err, duration)
		}
	}
	return domain.NewTask(name, duration), nil
}
