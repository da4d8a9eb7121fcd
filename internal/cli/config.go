package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/runoshun/schedo/internal/app"
	"github.com/runoshun/schedo/internal/domain"
	"github.com/runoshun/schedo/internal/infra/config"
	"github.com/runoshun/schedo/internal/usecase"
	"github.com/spf13/cobra"
)

var errConfigNotLoaded = errors.New("configuration is not loaded")

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	var showPaths bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after merging all sources.

Sources, later ones winning:
  - built-in defaults
  - $XDG_CONFIG_HOME/schedo/config.toml
  - .schedo.toml in the current directory

Use --paths to list the config files and whether they exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil || c.AppConfig == nil {
				return errConfigNotLoaded
			}
			w := cmd.OutOrStdout()

			effective := c.AppConfig
			if c.ConfigManager != nil && c.ConfigLoader != nil {
				out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
				if err != nil {
					return err
				}
				effective = out.EffectiveConfig
				if showPaths {
					printConfigPaths(w, out.GlobalConfig, out.LocalConfig)
				}
			}

			data, err := config.Marshal(effective)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, _ = w.Write(data)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPaths, "paths", false, "List config file locations")
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigInitCommand creates the config init command.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Long: `Write a commented config file holding the effective settings.

By default .schedo.toml is created in the current directory.
Use --global to create $XDG_CONFIG_HOME/schedo/config.toml instead.
Existing files are never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil || c.ConfigManager == nil {
				return errConfigNotLoaded
			}
			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				Config: c.AppConfig,
				Global: global,
			})
			if err != nil {
				if errors.Is(err, domain.ErrConfigExists) {
					return fmt.Errorf("%w (edit it directly or remove it first)", err)
				}
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&global, "global", "g", false, "Create the global config file")

	return cmd
}

func printConfigPaths(w io.Writer, infos ...domain.ConfigInfo) {
	_, _ = fmt.Fprintln(w, "[Loaded from]")
	for _, info := range infos {
		if info.Path == "" {
			continue
		}
		if info.Exists {
			_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
		} else {
			_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
		}
	}
	_, _ = fmt.Fprintln(w)
}
