package rewrite

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"rebrand/internal/fs"
)

const filePerms = os.FileMode(0o644)

// RewriteFile replaces every non-overlapping occurrence of search in the
// file at path with replace, left to right in a single pass, and writes the
// result back atomically (temp file + rename, so a crash leaves the
// original intact). If search does not occur the file is rewritten with
// identical bytes.
func RewriteFile(fsys fs.FS, path, search, replace string) error {
	content, err := fsys.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	rewritten := bytes.ReplaceAll(content, []byte(search), []byte(replace))

	if err := fsys.WriteFileAtomic(path, rewritten, filePerms); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Notify receives the path of a file just before it is rewritten.
type Notify func(path string)

// Run executes one rewrite pass: enumerate cfg.RootAbs, filter the
// root-relative paths by the include/exclude substrings, then rewrite each
// surviving file in sequence.
// notify is called with each file's path before that file is touched, so on
// failure the last notified path is the file being processed when the
// error struck.
//
// There is no local recovery: the first filesystem error aborts the pass,
// leaving earlier files rewritten and later files untouched. Returns the
// number of files rewritten.
func Run(fsys fs.FS, cfg Config, notify Notify) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	paths, err := Enumerate(fsys, cfg.RootAbs)
	if err != nil {
		return 0, err
	}

	// Selection sees root-relative paths only. Filtering the absolute paths
	// would let the machine-specific prefix above the root participate in
	// substring matching.
	rels := make([]string, 0, len(paths))

	for _, path := range paths {
		rel, relErr := filepath.Rel(cfg.RootAbs, path)
		if relErr != nil {
			return 0, fmt.Errorf("relativize %s: %w", path, relErr)
		}

		rels = append(rels, rel)
	}

	selected := Filter(rels, cfg.Exclude, cfg.Include)

	for i, rel := range selected {
		path := filepath.Join(cfg.RootAbs, rel)

		if notify != nil {
			notify(path)
		}

		if err := RewriteFile(fsys, path, cfg.Search, cfg.Replace); err != nil {
			return i, err
		}
	}

	return len(selected), nil
}
