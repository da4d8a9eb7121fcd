package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/runoshun/schedo/internal/domain"
)

// TableHeaders are the column titles of the tabular render.
var TableHeaders = []string{"Start", "Finish", "Task", "Duration"}

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#636E72"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// TableRows returns one row per entry: start, finish, name, duration text.
func TableRows(entries []domain.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			domain.FormatClock(e.Start),
			domain.FormatClock(e.Finish),
			e.Task.Name,
			e.Task.Duration,
		})
	}
	return rows
}

// Table renders the timeline as a bordered table with no proportional sizing.
func Table(entries []domain.Entry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(TableHeaders...).
		Rows(TableRows(entries)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	return t.Render()
}
