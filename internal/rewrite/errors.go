// Package rewrite implements the tree rewrite pass: enumerate a directory
// tree, select files by path substrings, and replace a literal in each
// selected file in place.
package rewrite

import "errors"

// Error variables for configuration and the rewrite pass.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrRootEmpty          = errors.New("root cannot be empty")
	ErrSearchRequired     = errors.New("search literal is required (set -s/--search or config search)")
	ErrFlagRequiresArg    = errors.New("flag requires an argument")
	ErrUnknownFlag        = errors.New("unknown flag")
	ErrNotADirectory      = errors.New("not a directory")
)
