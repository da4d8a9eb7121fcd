package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/runoshun/schedo/internal/domain"
	"github.com/runoshun/schedo/internal/infra/export"
	"github.com/runoshun/schedo/internal/render"
)

// ExportScheduleInput contains the parameters for exporting a timeline.
type ExportScheduleInput struct {
	Anchor time.Time // Start of the first task (zero = now)
	Writer io.Writer
	Format export.Format
	Tasks  []domain.Task
}

// ExportScheduleOutput contains the result of an export.
type ExportScheduleOutput struct {
	Entries []domain.Entry
}

// ExportSchedule is the use case for encoding the timeline as text, table, JSON or YAML.
type ExportSchedule struct {
	clock domain.Clock
	opts  render.Options
}

// NewExportSchedule creates a new ExportSchedule use case.
func NewExportSchedule(clock domain.Clock, opts render.Options) *ExportSchedule {
	return &ExportSchedule{
		clock: clock,
		opts:  opts,
	}
}

// Execute writes the timeline to in.Writer.
func (uc *ExportSchedule) Execute(_ context.Context, in ExportScheduleInput) (*ExportScheduleOutput, error) {
	anchor := in.Anchor
	if anchor.IsZero() {
		anchor = uc.clock.Now()
	}

	entries := domain.BuildTimeline(in.Tasks, anchor)
	if err := export.Encode(in.Writer, in.Format, entries, uc.opts); err != nil {
		return nil, fmt.Errorf("export %s: %w", in.Format, err)
	}
	return &ExportScheduleOutput{Entries: entries}, nil
}
