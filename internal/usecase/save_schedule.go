package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/schedo/internal/domain"
)

// SaveScheduleInput contains the tasks to persist.
type SaveScheduleInput struct {
	Tasks []domain.Task
}

// SaveScheduleOutput contains the result of saving.
type SaveScheduleOutput struct {
	Count int
}

// SaveSchedule is the use case for persisting the ordered task list.
type SaveSchedule struct {
	schedules domain.ScheduleRepository
	logger    domain.Logger
}

// NewSaveSchedule creates a new SaveSchedule use case.
func NewSaveSchedule(schedules domain.ScheduleRepository, logger domain.Logger) *SaveSchedule {
	return &SaveSchedule{
		schedules: schedules,
		logger:    logger,
	}
}

// Execute overwrites the saved schedule with in.Tasks.
func (uc *SaveSchedule) Execute(_ context.Context, in SaveScheduleInput) (*SaveScheduleOutput, error) {
	if err := uc.schedules.Save(in.Tasks); err != nil {
		if uc.logger != nil {
			uc.logger.Error("schedule", fmt.Sprintf("save failed: %v", err))
		}
		return nil, fmt.Errorf("save schedule: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("schedule", fmt.Sprintf("saved %d tasks", len(in.Tasks)))
	}
	return &SaveScheduleOutput{Count: len(in.Tasks)}, nil
}
