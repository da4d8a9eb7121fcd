package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/schedo/internal/domain"
	"github.com/runoshun/schedo/internal/render"
)

// FinishScheduleInput contains the final task order.
type FinishScheduleInput struct {
	Tasks []domain.Task
}

// FinishScheduleOutput contains the final block render.
type FinishScheduleOutput struct {
	Lines []string
}

// FinishSchedule renders the final block timeline anchored at now and
// writes it to the render file.
type FinishSchedule struct {
	clock  domain.Clock
	writer domain.RenderWriter
	logger domain.Logger
	opts   render.Options
}

// NewFinishSchedule creates a new FinishSchedule use case.
func NewFinishSchedule(clock domain.Clock, writer domain.RenderWriter, logger domain.Logger, opts render.Options) *FinishSchedule {
	return &FinishSchedule{
		clock:  clock,
		writer: writer,
		logger: logger,
		opts:   opts,
	}
}

// Execute renders and writes the final schedule.
func (uc *FinishSchedule) Execute(_ context.Context, in FinishScheduleInput) (*FinishScheduleOutput, error) {
	if len(in.Tasks) == 0 {
		return nil, domain.ErrEmptySchedule
	}

	lines := render.Schedule(in.Tasks, uc.clock.Now(), uc.opts)
	if err := uc.writer.WriteLines(lines); err != nil {
		return nil, fmt.Errorf("write schedule: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("render", fmt.Sprintf("wrote %d lines for %d tasks", len(lines), len(in.Tasks)))
	}
	return &FinishScheduleOutput{Lines: lines}, nil
}
