package rewrite_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"rebrand/internal/fs"
	"rebrand/internal/rewrite"

	"github.com/google/go-cmp/cmp"
)

// buildTree creates the given files (slash-separated, relative) under dir,
// creating parent directories as needed. Empty-string entries ending in "/"
// create bare directories.
func buildTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))

		if rel[len(rel)-1] == '/' {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatalf("setup mkdir %s: %v", rel, err)
			}

			continue
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir for %s: %v", rel, err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("setup write %s: %v", rel, err)
		}
	}
}

func TestEnumerate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		files map[string]string
		want  []string // slash-separated, relative to root
	}{
		{
			name:  "empty tree",
			files: nil,
			want:  nil,
		},
		{
			name: "flat directory in listing order",
			files: map[string]string{
				"b.txt": "",
				"a.txt": "",
				"c.txt": "",
			},
			// os.ReadDir sorts by name.
			want: []string{"a.txt", "b.txt", "c.txt"},
		},
		{
			name: "depth-first pre-order",
			files: map[string]string{
				"a/x.txt": "",
				"a/y.txt": "",
				"b.txt":   "",
				"c/z.txt": "",
			},
			want: []string{"a/x.txt", "a/y.txt", "b.txt", "c/z.txt"},
		},
		{
			name: "nested directories expanded in place",
			files: map[string]string{
				"a/inner/deep.txt": "",
				"a/last.txt":       "",
				"top.txt":          "",
			},
			want: []string{"a/inner/deep.txt", "a/last.txt", "top.txt"},
		},
		{
			name: "empty subdirectories yield nothing",
			files: map[string]string{
				"empty/":      "",
				"also/empty/": "",
				"real.txt":    "",
			},
			want: []string{"real.txt"},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			buildTree(t, dir, tt.files)

			got, err := rewrite.Enumerate(fs.NewReal(), dir)
			if err != nil {
				t.Fatalf("Enumerate: %v", err)
			}

			var rel []string
			for _, p := range got {
				r, relErr := filepath.Rel(dir, p)
				if relErr != nil {
					t.Fatalf("Rel(%s, %s): %v", dir, p, relErr)
				}

				rel = append(rel, filepath.ToSlash(r))
			}

			if diff := cmp.Diff(tt.want, rel); diff != "" {
				t.Fatalf("Enumerate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnumerate_DeepTreeDoesNotRecurse(t *testing.T) {
	t.Parallel()

	// Deep enough to blow a recursive walk with small frames; trivial for
	// the explicit work-list.
	dir := t.TempDir()
	path := dir

	const depth = 512

	for i := 0; i < depth; i++ {
		next := filepath.Join(path, fmt.Sprintf("d%03d", i%100))

		// Stay under typical PATH_MAX.
		if len(next) > 3500 {
			break
		}

		path = next
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := os.WriteFile(filepath.Join(path, "leaf.txt"), nil, 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	got, err := rewrite.Enumerate(fs.NewReal(), dir)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	if len(got) != 1 || filepath.Base(got[0]) != "leaf.txt" {
		t.Fatalf("got %v, want single leaf.txt", got)
	}
}

func TestEnumerate_CompletenessRegardlessOfShape(t *testing.T) {
	t.Parallel()

	// Property: the enumerated set is exactly the non-directory entries
	// reachable from root, no duplicates, no omissions.
	dir := t.TempDir()
	files := map[string]string{
		"a/b/c/d.txt":  "x",
		"a/b/e.txt":    "x",
		"a/f.txt":      "x",
		"g.txt":        "x",
		"h/i/j/k/l.md": "x",
		"h/sibling":    "x",
	}
	buildTree(t, dir, files)

	got, err := rewrite.Enumerate(fs.NewReal(), dir)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	var want []string
	for rel := range files {
		want = append(want, filepath.Join(dir, filepath.FromSlash(rel)))
	}

	sort.Strings(want)

	gotSorted := append([]string(nil), got...)
	sort.Strings(gotSorted)

	if diff := cmp.Diff(want, gotSorted); diff != "" {
		t.Fatalf("enumerated set mismatch (-want +got):\n%s", diff)
	}

	seen := make(map[string]bool, len(got))
	for _, p := range got {
		if seen[p] {
			t.Fatalf("duplicate path %s", p)
		}

		seen[p] = true
	}
}

func TestEnumerate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()

		_, err := rewrite.Enumerate(fs.NewReal(), filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("err=%v, want ErrNotExist", err)
		}
	})

	t.Run("root is a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")

		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := rewrite.Enumerate(fs.NewReal(), path)
		if !errors.Is(err, rewrite.ErrNotADirectory) {
			t.Fatalf("err=%v, want ErrNotADirectory", err)
		}
	})

	t.Run("stat on root fails", func(t *testing.T) {
		t.Parallel()

		injected := errors.New("injected stat failure")

		dir := t.TempDir()

		fsys := fs.NewFault(fs.NewReal())
		fsys.FailAlways(fs.OpStat, dir, injected)

		_, err := rewrite.Enumerate(fsys, dir)
		if !errors.Is(err, injected) {
			t.Fatalf("err=%v, want injected error", err)
		}
	})

	t.Run("unreadable subdirectory aborts", func(t *testing.T) {
		t.Parallel()

		injected := errors.New("injected readdir failure")

		dir := t.TempDir()
		buildTree(t, dir, map[string]string{
			"ok/a.txt":  "",
			"bad/b.txt": "",
		})

		fsys := fs.NewFault(fs.NewReal())
		fsys.FailAlways(fs.OpReadDir, "bad", injected)

		_, err := rewrite.Enumerate(fsys, dir)
		if !errors.Is(err, injected) {
			t.Fatalf("err=%v, want injected error", err)
		}
	})
}

func TestFilter(t *testing.T) {
	t.Parallel()

	paths := []string{
		"./examples/a.txt",
		"./target/b.txt",
		"./other/c.txt",
		"./examples/target/both.txt",
	}

	for _, tt := range []struct {
		name    string
		exclude string
		include string
		want    []string
	}{
		{
			name:    "include and exclude",
			exclude: "target",
			include: "examples",
			want:    []string{"./examples/a.txt"},
		},
		{
			name:    "exclude vetoes include",
			exclude: "target",
			include: "both",
			want:    nil,
		},
		{
			name:    "empty include matches everything",
			exclude: "target",
			include: "",
			want:    []string{"./examples/a.txt", "./other/c.txt"},
		},
		{
			name:    "empty exclude excludes nothing",
			exclude: "",
			include: "examples",
			want:    []string{"./examples/a.txt", "./examples/target/both.txt"},
		},
		{
			name:    "both empty keeps all",
			exclude: "",
			include: "",
			want:    paths,
		},
		{
			name:    "include matches directory component",
			exclude: "",
			include: "other/",
			want:    []string{"./other/c.txt"},
		},
		{
			name:    "no match",
			exclude: "",
			include: "missing",
			want:    nil,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := rewrite.Filter(paths, tt.exclude, tt.include)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_IsSubsetAndOrderPreserving(t *testing.T) {
	t.Parallel()

	paths := []string{"z/1", "a/2", "m/3", "a/4"}
	got := rewrite.Filter(paths, "", "a")

	if diff := cmp.Diff([]string{"a/2", "a/4"}, got); diff != "" {
		t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
	}
}
