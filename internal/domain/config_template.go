package domain

import (
	"fmt"
	"strings"
)

// RenderConfigTemplate returns a commented TOML document holding the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	var b strings.Builder

	b.WriteString("# schedo configuration\n")
	b.WriteString("# Global: $XDG_CONFIG_HOME/schedo/config.toml\n")
	b.WriteString("# Local:  .schedo.toml (overrides global)\n\n")

	b.WriteString("[files]\n")
	b.WriteString("# Saved task list, relative to the working directory\n")
	fmt.Fprintf(&b, "schedule = %q\n", cfg.Files.Schedule)
	b.WriteString("# Rendered timeline written when you finish reordering\n")
	fmt.Fprintf(&b, "render = %q\n\n", cfg.Files.Render)

	b.WriteString("[render]\n")
	b.WriteString("# \"block\" or \"table\"\n")
	fmt.Fprintf(&b, "mode = %q\n", cfg.Render.Mode)
	b.WriteString("# Minutes represented by one line of a block\n")
	fmt.Fprintf(&b, "minutes_per_line = %d\n", cfg.Render.MinutesPerLine)
	fmt.Fprintf(&b, "label_width = %d\n", cfg.Render.LabelWidth)
	fmt.Fprintf(&b, "content_width = %d\n\n", cfg.Render.ContentWidth)

	b.WriteString("[input]\n")
	b.WriteString("# Reject durations like \"soon\" that have no h or m component\n")
	fmt.Fprintf(&b, "strict_durations = %t\n", cfg.Input.StrictDurations)
	b.WriteString("# Reject blank task names\n")
	fmt.Fprintf(&b, "require_names = %t\n\n", cfg.Input.RequireNames)

	b.WriteString("[log]\n")
	b.WriteString("# debug, info, warn, error\n")
	fmt.Fprintf(&b, "level = %q\n", cfg.Log.Level)

	return b.String()
}
