package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Block colors
	BlockText  lipgloss.Color
	CursorBg   lipgloss.Color
	CursorText lipgloss.Color
	MovingBg   lipgloss.Color
	MovingText lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	BlockText:  lipgloss.Color("#DFE6E9"), // Light gray
	CursorBg:   lipgloss.Color("#0984E3"), // Blue
	CursorText: lipgloss.Color("#FFFFFF"),
	MovingBg:   lipgloss.Color("#00B894"), // Green
	MovingText: lipgloss.Color("#2D3436"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header lipgloss.Style
	Total  lipgloss.Style

	// Timeline blocks
	Block       lipgloss.Style
	BlockCursor lipgloss.Style
	BlockMoving lipgloss.Style

	// Status hint under the timeline
	Hint       lipgloss.Style
	HintMoving lipgloss.Style

	// Help
	Help lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Warning).
			MarginBottom(1),

		Total: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Block: lipgloss.NewStyle().
			Foreground(Colors.BlockText),

		BlockCursor: lipgloss.NewStyle().
			Background(Colors.CursorBg).
			Foreground(Colors.CursorText).
			Bold(true),

		BlockMoving: lipgloss.NewStyle().
			Background(Colors.MovingBg).
			Foreground(Colors.MovingText).
			Bold(true),

		Hint: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true).
			MarginTop(1),

		HintMoving: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true).
			MarginTop(1),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Warning),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// BlockStyle returns the style for a task block.
func (s Styles) BlockStyle(cursor, moving bool) lipgloss.Style {
	switch {
	case moving:
		return s.BlockMoving
	case cursor:
		return s.BlockCursor
	default:
		return s.Block
	}
}
