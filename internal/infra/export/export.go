// Package export encodes a computed timeline for use outside the terminal.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/schedo/internal/domain"
	"github.com/runoshun/schedo/internal/render"
	"gopkg.in/yaml.v3"
)

// Format is an export format.
type Format string

// Supported export formats.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// AllFormats returns the supported formats in display order.
func AllFormats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON, FormatYAML}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllFormats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidFormat, s)
}

// Record is one timeline entry as written by the json and yaml formats.
type Record struct {
	Name     string `json:"name" yaml:"name"`
	Duration string `json:"duration" yaml:"duration"`
	Start    string `json:"start" yaml:"start"`
	Finish   string `json:"finish" yaml:"finish"`
	Minutes  int    `json:"minutes" yaml:"minutes"`
}

// Records converts timeline entries to export records.
func Records(entries []domain.Entry) []Record {
	out := make([]Record, 0, len(entries))
	for _, e := range entries {
		out = append(out, Record{
			Name:     e.Task.Name,
			Duration: e.Task.Duration,
			Start:    domain.FormatClock(e.Start),
			Finish:   domain.FormatClock(e.Finish),
			Minutes:  int(e.Duration.Minutes()),
		})
	}
	return out
}

// Encode writes entries to w in the given format.
func Encode(w io.Writer, format Format, entries []domain.Entry, opts render.Options) error {
	switch format {
	case FormatText:
		for _, l := range render.Block(entries, opts) {
			if _, err := fmt.Fprintln(w, l); err != nil {
				return err
			}
		}
		return nil
	case FormatTable:
		_, err := fmt.Fprintln(w, render.Table(entries))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(Records(entries))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Records(entries)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidFormat, string(format))
	}
}
