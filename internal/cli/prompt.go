package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"rebrand/internal/rewrite"

	"github.com/peterh/liner"
)

// confirmApply asks for confirmation before rewriting the tree in place.
//
// Only interactive runs are prompted: when stdin is not a terminal (pipes,
// scripts, tests) the pass proceeds as if confirmed. Returns false when the
// user declines or aborts the prompt.
func confirmApply(stdin io.Reader, cfg rewrite.Config) (bool, error) {
	if !isTerminal(stdin) {
		return true, nil
	}

	l := liner.NewLiner()
	defer l.Close()

	l.SetCtrlCAborts(true)

	prompt := fmt.Sprintf("rewrite %q -> %q under %s? [y/N] ", cfg.Search, cfg.Replace, cfg.RootAbs)

	line, err := l.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return false, nil
		}

		return false, fmt.Errorf("reading input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
