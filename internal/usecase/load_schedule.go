// Package usecase contains application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/schedo/internal/domain"
)

// LoadScheduleInput contains the parameters for loading the saved schedule.
type LoadScheduleInput struct {
	AllowMissing bool // Return an empty list instead of ErrScheduleNotFound
}

// LoadScheduleOutput contains the loaded tasks.
type LoadScheduleOutput struct {
	Tasks []domain.Task
	Found bool
}

// LoadSchedule is the use case for reading the saved schedule.
type LoadSchedule struct {
	schedules domain.ScheduleRepository
	logger    domain.Logger
}

// NewLoadSchedule creates a new LoadSchedule use case.
func NewLoadSchedule(schedules domain.ScheduleRepository, logger domain.Logger) *LoadSchedule {
	return &LoadSchedule{
		schedules: schedules,
		logger:    logger,
	}
}

// Execute loads the saved tasks in schedule order.
func (uc *LoadSchedule) Execute(_ context.Context, in LoadScheduleInput) (*LoadScheduleOutput, error) {
	tasks, err := uc.schedules.Load()
	if err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) && in.AllowMissing {
			return &LoadScheduleOutput{Tasks: []domain.Task{}}, nil
		}
		if errors.Is(err, domain.ErrScheduleNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Debug("schedule", fmt.Sprintf("loaded %d tasks", len(tasks)))
	}
	return &LoadScheduleOutput{Tasks: tasks, Found: true}, nil
}
