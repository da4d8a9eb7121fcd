// Package render turns a timeline into text: the proportional block layout
// and the one-row-per-task table.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/schedo/internal/domain"
)

// Options controls the block layout.
type Options struct {
	MinutesPerLine int // Minutes represented by one line
	LabelWidth     int // Width of the time label column
	ContentWidth   int // Width of the task column
}

// DefaultOptions returns the standard layout: one line per 10 minutes, 15/30 columns.
func DefaultOptions() Options {
	return Options{
		MinutesPerLine: domain.DefaultMinutesPerLine,
		LabelWidth:     domain.DefaultLabelWidth,
		ContentWidth:   domain.DefaultContentWidth,
	}
}

// OptionsFromConfig builds Options from the [render] section, falling back to
// defaults for non-positive values.
func OptionsFromConfig(cfg domain.RenderConfig) Options {
	opts := DefaultOptions()
	if cfg.MinutesPerLine > 0 {
		opts.MinutesPerLine = cfg.MinutesPerLine
	}
	if cfg.LabelWidth > 0 {
		opts.LabelWidth = cfg.LabelWidth
	}
	if cfg.ContentWidth > 0 {
		opts.ContentWidth = cfg.ContentWidth
	}
	return opts
}

// BlockHeight returns the number of lines a task of length d occupies (at least one).
func BlockHeight(d time.Duration, opts Options) int {
	unit := opts.MinutesPerLine
	if unit <= 0 {
		unit = domain.DefaultMinutesPerLine
	}
	h := int(d / (time.Duration(unit) * time.Minute))
	if h < 1 {
		h = 1
	}
	return h
}

// TimeLabel returns "HH:MM - HH:MM" for an entry.
func TimeLabel(e domain.Entry) string {
	return domain.FormatClock(e.Start) + " - " + domain.FormatClock(e.Finish)
}

// BlockLines renders each entry as its own group of lines.
// The label is printed on the first line of a block and the task label on the middle line.
func BlockLines(entries []domain.Entry, opts Options) [][]string {
	groups := make([][]string, 0, len(entries))
	for _, e := range entries {
		height := BlockHeight(e.Duration, opts)
		label := TimeLabel(e)
		blank := strings.Repeat(" ", len(label))
		content := e.Task.Label()

		lines := make([]string, 0, height)
		for i := 0; i < height; i++ {
			l := blank
			if i == 0 {
				l = label
			}
			c := ""
			if i == height/2 {
				c = content
			}
			lines = append(lines, fmt.Sprintf("%-*s | %-*s", opts.LabelWidth, l, opts.ContentWidth, c))
		}
		groups = append(groups, lines)
	}
	return groups
}

// Block renders the timeline as a flat list of lines.
func Block(entries []domain.Entry, opts Options) []string {
	var out []string
	for _, g := range BlockLines(entries, opts) {
		out = append(out, g...)
	}
	return out
}

// Schedule builds the timeline for tasks at anchor and renders it as block lines.
func Schedule(tasks []domain.Task, anchor time.Time, opts Options) []string {
	return Block(domain.BuildTimeline(tasks, anchor), opts)
}
