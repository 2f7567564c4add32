package cli

import (
	"io"
	"path/filepath"

	"rebrand/internal/fs"
	"rebrand/internal/rewrite"

	flag "github.com/spf13/pflag"
)

const applyHelp = `  apply [options]        Rewrite matching files under the root
    -s, --search           Literal to search for (required)
    -r, --replace          Replacement literal [default: ""]
    --root                 Directory to walk [default: "."]
    --include              Keep only paths containing this substring
    --exclude              Skip paths containing this substring
    -y, --yes              Do not ask for confirmation`

func cmdApply(stdin io.Reader, out, errOut io.Writer, fsys fs.FS, cfg rewrite.Config, args []string) int {
	flagSet := flag.NewFlagSet("apply", flag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.Usage = func() {
		w := flagSet.Output()
		fprintf(w, "Usage: rebrand apply [options]\n\n")
		fprintf(w, "Walk the root, pick files whose path contains --include and not\n")
		fprintf(w, "--exclude, and replace every occurrence of --search with --replace\n")
		fprintf(w, "in place. Prints each file's path before rewriting it.\n\n")
		fprintf(w, "Options:\n")
		flagSet.PrintDefaults()
	}

	search := flagSet.StringP("search", "s", "", "Literal to search for")
	replace := flagSet.StringP("replace", "r", "", "Replacement literal")
	root := flagSet.String("root", "", "Directory to walk")
	include := flagSet.String("include", "", "Keep only paths containing this substring")
	exclude := flagSet.String("exclude", "", "Skip paths containing this substring")
	yes := flagSet.BoolP("yes", "y", false, "Do not ask for confirmation")

	if hasHelpFlag(args) {
		flagSet.SetOutput(out)
		flagSet.Usage()

		return 0
	}

	parseErr := flagSet.Parse(args)
	if parseErr != nil {
		fprintf(errOut, "error: %v\n\n", parseErr)
		flagSet.Usage()

		return 1
	}

	// Flag overrides on top of file config. Changed() rather than non-empty
	// so --exclude="" can clear a configured exclusion.
	if flagSet.Changed("search") {
		cfg.Search = *search
	}

	if flagSet.Changed("replace") {
		cfg.Replace = *replace
	}

	if flagSet.Changed("include") {
		cfg.Include = *include
	}

	if flagSet.Changed("exclude") {
		cfg.Exclude = *exclude
	}

	if flagSet.Changed("root") {
		cfg.Root = *root
		cfg.RootAbs = *root

		if !filepath.IsAbs(cfg.RootAbs) {
			cfg.RootAbs = filepath.Join(cfg.EffectiveCwd, cfg.Root)
		}
	}

	if err := cfg.Validate(); err != nil {
		errprintln(errOut, err)

		return 1
	}

	if !*yes {
		ok, err := confirmApply(stdin, cfg)
		if err != nil {
			errprintln(errOut, err)

			return 1
		}

		if !ok {
			fprintln(errOut, "aborted")

			return 0
		}
	}

	paint := pathSprint(out)

	_, err := rewrite.Run(fsys, cfg, func(path string) {
		fprintln(out, paint("%s", path))
	})
	if err != nil {
		errprintln(errOut, err)

		return 1
	}

	return 0
}
