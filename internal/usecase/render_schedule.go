package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/runoshun/schedo/internal/domain"
	"github.com/runoshun/schedo/internal/render"
)

// RenderScheduleInput contains the parameters for rendering a timeline.
type RenderScheduleInput struct {
	Anchor time.Time // Start of the first task (zero = now)
	Mode   string    // domain.RenderModeBlock or domain.RenderModeTable (empty = block)
	Tasks  []domain.Task
}

// RenderScheduleOutput contains the computed timeline and its text form.
type RenderScheduleOutput struct {
	Entries []domain.Entry
	Lines   []string
}

// RenderSchedule is the use case for computing and rendering the timeline.
type RenderSchedule struct {
	clock domain.Clock
	opts  render.Options
}

// NewRenderSchedule creates a new RenderSchedule use case.
func NewRenderSchedule(clock domain.Clock, opts render.Options) *RenderSchedule {
	return &RenderSchedule{
		clock: clock,
		opts:  opts,
	}
}

// Execute anchors the timeline and renders it in the requested mode.
func (uc *RenderSchedule) Execute(_ context.Context, in RenderScheduleInput) (*RenderScheduleOutput, error) {
	anchor := in.Anchor
	if anchor.IsZero() {
		anchor = uc.clock.Now()
	}

	entries := domain.BuildTimeline(in.Tasks, anchor)
	var lines []string
	switch in.Mode {
	case "", domain.RenderModeBlock:
		lines = render.Block(entries, uc.opts)
	case domain.RenderModeTable:
		lines = strings.Split(render.Table(entries), "\n")
	default:
		return nil, domain.ErrInvalidFormat
	}

	return &RenderScheduleOutput{Entries: entries, Lines: lines}, nil
}
