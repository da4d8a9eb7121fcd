// Package cli provides the command-line interface for schedo.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/runoshun/schedo/internal/app"
	"github.com/runoshun/schedo/internal/domain"
	"github.com/runoshun/schedo/internal/tui"
	"github.com/runoshun/schedo/internal/usecase"
	"github.com/spf13/cobra"
)

// launchTUIFunc is a function variable for launching the reorder TUI, allowing it to be mocked in tests.
// It returns the final task order and whether the user finished (rather than quit).
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for schedo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var resume bool
	var fresh bool
	var outPath string

	root := &cobra.Command{
		Use:   "schedo",
		Short: "Plan a day as a timeline of tasks",
		Long: `schedo turns a list of named tasks with durations into a timeline
that starts now. Tasks are reordered interactively, then the final
schedule is printed, written to a text file and optionally saved.

Keys in the reorder view:
  ↑/↓ (k/j)  move the cursor, or the picked-up task
  space      pick up / drop the task under the cursor
  a          add a task
  e          edit the task under the cursor
  esc        finish
  ctrl+c     quit without rendering`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if resume && fresh {
				return errors.New("cannot use --resume and --new together")
			}
			if c == nil {
				return errors.New("schedo is not initialized")
			}

			cc := withScheduleFile(cmd, c)
			if outPath != "" {
				cc = cc.WithRenderPath(outPath)
			}
			return runInteractive(cmd, cc, resumeChoice{resume: resume, fresh: fresh})
		},
	}

	root.PersistentFlags().StringP("file", "f", "", "Schedule file (default from config, schedule.json)")
	root.Flags().BoolVarP(&resume, "resume", "r", false, "Continue with the saved schedule without asking")
	root.Flags().BoolVarP(&fresh, "new", "n", false, "Start a new schedule without asking")
	root.Flags().StringVarP(&outPath, "out", "o", "", "Rendered schedule file (default from config, schedule.txt)")

	root.AddCommand(
		newAddCommand(c),
		newShowCommand(c),
		newExportCommand(c),
		newRmCommand(c),
		newConfigCommand(c),
	)

	return root
}

// withScheduleFile applies the persistent --file flag to the container.
func withScheduleFile(cmd *cobra.Command, c *app.Container) *app.Container {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return c
	}
	return c.WithSchedulePath(path)
}

// resumeChoice holds the --resume / --new flags.
type resumeChoice struct {
	resume bool
	fresh  bool
}

// runInteractive runs the full flow: resume prompt, task entry, reorder view,
// final render and the save prompt.
func runInteractive(cmd *cobra.Command, c *app.Container, choice resumeChoice) error {
	ctx := cmd.Context()
	con := newConsole(cmd.InOrStdin(), cmd.OutOrStdout())

	tasks, err := initialTasks(ctx, con, c, choice)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		tasks = enterTasks(con, c.InputRules())
	}
	if len(tasks) == 0 {
		con.note("No tasks added.")
		con.farewell()
		return nil
	}

	tasks, finished, err := launchTUIFunc(ctx, c, tasks, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("reorder tasks: %w", err)
	}
	if !finished {
		con.note("Quit without rendering.")
		return nil
	}

	out, err := c.FinishScheduleUseCase().Execute(ctx, usecase.FinishScheduleInput{Tasks: tasks})
	if err != nil {
		return err
	}
	con.println("")
	con.success("Final Schedule:")
	for _, line := range out.Lines {
		con.println(line)
	}
	con.println("")
	con.info(fmt.Sprintf("Schedule written to %s", c.Config.RenderPath))

	con.println("")
	answer, _ := con.ask("Save this schedule? (y/n): ")
	if isYes(answer) {
		if _, err := c.SaveScheduleUseCase().Execute(ctx, usecase.SaveScheduleInput{Tasks: tasks}); err != nil {
			return err
		}
		con.success("Schedule saved")
	}

	con.farewell()
	return nil
}

// initialTasks loads the saved schedule when the user chooses to resume.
func initialTasks(ctx context.Context, con *console, c *app.Container, choice resumeChoice) ([]domain.Task, error) {
	if choice.fresh || !c.Schedules.Exists() {
		return nil, nil
	}

	if !choice.resume {
		con.heading("A saved schedule was found.")
		answer, _ := con.ask("Continue with existing schedule? (y/n): ")
		if !isYes(answer) {
			con.note("Starting with a new schedule.")
			return nil, nil
		}
	}

	out, err := c.LoadScheduleUseCase().Execute(ctx, usecase.LoadScheduleInput{AllowMissing: true})
	if err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// enterTasks prompts for tasks line by line until "done" or end of input.
func enterTasks(con *console, rules domain.InputConfig) []domain.Task {
	var tasks []domain.Task
	for {
		name, err := con.ask("Enter task name (or type 'done' to finish): ")
		if isDone(name) || (err != nil && name == "") {
			return tasks
		}
		duration, _ := con.ask("Enter task duration (e.g., 30m, 1h): ")

		task, err := usecase.CheckTask(name, duration, rules)
		if err != nil {
			con.failure(fmt.Sprintf("Error: %v", err))
			continue
		}
		tasks = append(tasks, task)
		con.success(fmt.Sprintf("Task '%s' with duration '%s' added.", task.Name, task.Duration))
		con.println("")
	}
}

// launchTUI runs the reorder view on the terminal.
func launchTUI(ctx context.Context, c *app.Container, tasks []domain.Task, in io.Reader, out io.Writer) ([]domain.Task, bool, error) {
	m, err := tui.Run(ctx, tui.New(c, tasks), in, out)
	if err != nil {
		return nil, false, err
	}
	return m.Tasks(), m.Finished(), nil
}
