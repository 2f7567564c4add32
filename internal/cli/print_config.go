package cli

import (
	"io"

	"rebrand/internal/rewrite"
)

func cmdPrintConfig(out io.Writer, cfg rewrite.Config, args []string) int {
	if hasHelpFlag(args) {
		fprintln(out, "Usage: rebrand print-config")
		fprintln(out, "")
		fprintln(out, "Display the effective configuration and which files it was loaded from.")

		return 0
	}

	fprintln(out, "effective_cwd="+cfg.EffectiveCwd)
	fprintln(out, "root="+cfg.RootAbs)
	fprintln(out, "include="+cfg.Include)
	fprintln(out, "exclude="+cfg.Exclude)
	fprintln(out, "search="+cfg.Search)
	fprintln(out, "replace="+cfg.Replace)

	fprintln(out, "")
	fprintln(out, "# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		fprintln(out, "(defaults only)")

		return 0
	}

	if cfg.Sources.Global != "" {
		fprintln(out, "global_config="+cfg.Sources.Global)
	}

	if cfg.Sources.Project != "" {
		fprintln(out, "project_config="+cfg.Sources.Project)
	}

	return 0
}
