package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/runoshun/schedo/internal/app"
	"github.com/runoshun/schedo/internal/domain"
	"github.com/runoshun/schedo/internal/infra/export"
	"github.com/runoshun/schedo/internal/usecase"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command for appending a task to the saved schedule.
func newAddCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <duration>",
		Short: "Append a task to the saved schedule",
		Long: `Append a task to the end of the saved schedule.

The duration is free text; the first "<n>h" and "<n>m" found are used.

Examples:
  # Add a one and a half hour task
  schedo add "Write report" 1h30m

  # Durations may contain spaces when quoted
  schedo add Lunch "45 m"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := withScheduleFile(cmd, c)
			out, err := cc.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Name:     args[0],
				Duration: args[1],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d: %s\n", out.Index+1, out.Task.Label())
			return nil
		},
	}

	return cmd
}

// newShowCommand creates the show command for rendering the saved schedule.
func newShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		at    string
		table bool
	}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the saved schedule",
		Long: `Render the saved schedule as a timeline starting now.

Examples:
  # Block timeline starting now
  schedo show

  # Table starting at 13:30 today
  schedo show --table --at 13:30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := withScheduleFile(cmd, c)
			anchor, err := parseAt(opts.at, cc.Clock)
			if err != nil {
				return err
			}

			loaded, err := cc.LoadScheduleUseCase().Execute(cmd.Context(), usecase.LoadScheduleInput{})
			if err != nil {
				return err
			}

			mode := cc.AppConfig.Render.Mode
			if opts.table {
				mode = domain.RenderModeTable
			}
			out, err := cc.RenderScheduleUseCase().Execute(cmd.Context(), usecase.RenderScheduleInput{
				Anchor: anchor,
				Mode:   mode,
				Tasks:  loaded.Tasks,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Entries) == 0 {
				_, _ = fmt.Fprintln(w, "No tasks in schedule.")
				return nil
			}
			for _, line := range out.Lines {
				_, _ = fmt.Fprintln(w, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.table, "table", "t", false, "Render as a table instead of blocks")
	cmd.Flags().StringVar(&opts.at, "at", "", "Start time HH:MM (default now)")

	return cmd
}

// newExportCommand creates the export command for writing the timeline in a machine-readable format.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		format string
		output string
		at     string
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the saved schedule",
		Long: fmt.Sprintf(`Export the saved schedule as a timeline.

Formats: %s

Examples:
  # YAML to stdout
  schedo export --format yaml

  # JSON file starting at 08:00
  schedo export --format json --output plan.json --at 08:00`, formatList()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			cc := withScheduleFile(cmd, c)
			format, err := export.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			anchor, err := parseAt(opts.at, cc.Clock)
			if err != nil {
				return err
			}

			loaded, err := cc.LoadScheduleUseCase().Execute(cmd.Context(), usecase.LoadScheduleInput{})
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if opts.output != "" {
				f, createErr := os.Create(domain.ResolvePath(cc.Config.WorkDir, opts.output))
				if createErr != nil {
					return fmt.Errorf("create %s: %w", opts.output, createErr)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = cerr
					}
				}()
				w = f
			}

			_, err = cc.ExportScheduleUseCase().Execute(cmd.Context(), usecase.ExportScheduleInput{
				Anchor: anchor,
				Writer: w,
				Format: format,
				Tasks:  loaded.Tasks,
			})
			return err
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", string(export.FormatText), "Output format ("+formatList()+")")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringVar(&opts.at, "at", "", "Start time HH:MM (default now)")

	return cmd
}

// newRmCommand creates the rm command for removing a task from the saved schedule.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove a task from the saved schedule",
		Long: `Remove a task from the saved schedule by its position.

Positions start at 1, in schedule order (see "schedo show").

Examples:
  # Remove the first task
  schedo rm 1

  # Using # prefix
  schedo rm "#2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return fmt.Errorf("invalid task index: %w", err)
			}

			cc := withScheduleFile(cmd, c)
			out, err := cc.RemoveTaskUseCase().Execute(cmd.Context(), usecase.RemoveTaskInput{
				Index: index - 1,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed task #%d: %s\n", index, out.Task.Label())
			return nil
		},
	}

	return cmd
}

// parseIndex parses a 1-based task position.
func parseIndex(s string) (int, error) {
	s = strings.TrimPrefix(s, "#")
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task index %q", s)
	}
	if index <= 0 {
		return 0, fmt.Errorf("task index must be positive")
	}
	return index, nil
}

// parseAt resolves the --at flag; an empty value means now.
func parseAt(at string, clock domain.Clock) (time.Time, error) {
	if at == "" {
		return time.Time{}, nil
	}
	return domain.ParseClock(at, clock.Now())
}

func formatList() string {
	formats := export.AllFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
