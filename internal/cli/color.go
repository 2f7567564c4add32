package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// sprintFunc renders a string for output, possibly colorized.
type sprintFunc func(format string, a ...any) string

// isTerminal reports whether the stream (a reader or writer) is an
// interactive terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd())
}

// pathSprint returns the sprint func for progress path lines on out.
// Plain when out is not a terminal, so piped output is exactly the path.
func pathSprint(out io.Writer) sprintFunc {
	if isTerminal(out) {
		return color.CyanString
	}

	return plainSprintf
}

// errSprint returns the sprint func for the "error:" prefix on errOut.
func errSprint(errOut io.Writer) sprintFunc {
	if isTerminal(errOut) {
		return color.RedString
	}

	return plainSprintf
}

func plainSprintf(format string, a ...any) string {
	return fmt.Sprintf(format, a...)
}

// errprintln prints "error: <err>" to errOut, with a red prefix on a terminal.
func errprintln(errOut io.Writer, err error) {
	fprintln(errOut, errSprint(errOut)("error:"), err)
}
