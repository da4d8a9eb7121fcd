package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/schedo/internal/domain"
)

// RemoveTaskInput contains the parameters for removing a task.
type RemoveTaskInput struct {
	Index int // Zero-based position
}

// RemoveTaskOutput contains the removed task.
type RemoveTaskOutput struct {
	Task domain.Task
}

// RemoveTask is the use case for deleting a task from the saved schedule.
type RemoveTask struct {
	schedules domain.ScheduleRepository
	logger    domain.Logger
}

// NewRemoveTask creates a new RemoveTask use case.
func NewRemoveTask(schedules domain.ScheduleRepository, logger domain.Logger) *RemoveTask {
	return &RemoveTask{
		schedules: schedules,
		logger:    logger,
	}
}

// Execute removes the task at in.Index, keeping the order of the rest.
func (uc *RemoveTask) Execute(_ context.Context, in RemoveTaskInput) (*RemoveTaskOutput, error) {
	if !uc.schedules.Exists() {
		return nil, domain.ErrScheduleNotFound
	}

	var removed domain.Task
	err := uc.schedules.Update(func(tasks []domain.Task) ([]domain.Task, error) {
		s := domain.NewSchedule(tasks)
		t, err := s.Remove(in.Index)
		if err != nil {
			return nil, err
		}
		removed = t
		return s.Tasks, nil
	})
	if err != nil {
		return nil, fmt.Errorf("remove task #%d: %w", in.Index+1, err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("removed %q", removed.Name))
	}
	return &RemoveTaskOutput{Task: removed}, nil
}
