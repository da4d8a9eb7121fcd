// Package textfile writes rendered timeline lines to a plain text file.
package textfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/schedo/internal/domain"
)

// Writer implements domain.RenderWriter for a single file that is overwritten on each write.
type Writer struct {
	path string
}

// New creates a Writer for path.
func New(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the target file path.
func (w *Writer) Path() string {
	return w.path
}

// WriteLines overwrites the file with one newline-terminated line per element.
func (w *Writer) WriteLines(lines []string) error {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}

	if dir := filepath.Dir(w.path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	if err := os.WriteFile(w.path, []byte(b.String()), 0o644); err != nil { //nolint:gosec // plain text output
		return fmt.Errorf("write render file: %w", err)
	}
	return nil
}

var _ domain.RenderWriter = (*Writer)(nil)
