package rewrite

import (
	"fmt"
	"path/filepath"
	"strings"

	"rebrand/internal/fs"
)

// Enumerate returns the path of every non-directory entry under root, in
// depth-first pre-order with each directory expanded in [fs.FS.ReadDir]
// order. Paths are built by joining root and entry names level by level, so
// a relative root yields root-relative paths.
//
// The traversal uses an explicit work-list instead of recursion, so tree
// depth is bounded by heap, not goroutine stack. Symlinks to directories
// are not followed: anything that is not a plain directory is a leaf.
func Enumerate(fsys fs.FS, root string) ([]string, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("enumerate %s: %w", root, ErrNotADirectory)
	}

	var out []string

	// LIFO work-list. Entries are pushed in reverse ReadDir order so pop
	// order matches listing order.
	type item struct {
		path string
		dir  bool
	}

	stack := []item{{path: root, dir: true}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !top.dir {
			out = append(out, top.path)

			continue
		}

		entries, err := fsys.ReadDir(top.path)
		if err != nil {
			return nil, fmt.Errorf("enumerate %s: %w", top.path, err)
		}

		for i := len(entries) - 1; i >= 0; i-- {
			entry := entries[i]
			stack = append(stack, item{
				path: filepath.Join(top.path, entry.Name()),
				dir:  entry.IsDir(),
			})
		}
	}

	return out, nil
}

// Filter returns the paths that contain include and do not contain exclude,
// preserving input order. Containment is tested on the full path string,
// directory components included.
//
// Exclusion is a hard veto: a path containing both substrings is dropped.
// An empty exclude means no exclusion (every path contains the empty
// string, so the naive check would drop everything). An empty include
// keeps its natural meaning and matches every path.
func Filter(paths []string, exclude, include string) []string {
	var out []string

	for _, p := range paths {
		if exclude != "" && strings.Contains(p, exclude) {
			continue
		}

		if !strings.Contains(p, include) {
			continue
		}

		out = append(out, p)
	}

	return out
}
