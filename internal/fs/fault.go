package fs

import (
	"os"
	"strings"
	"sync"
)

// Op identifies an [FS] operation for fault triggers.
type Op string

// Operations that [Fault] can fail.
const (
	OpRead    Op = "read_file"
	OpWrite   Op = "write_file_atomic"
	OpReadDir Op = "read_dir"
	OpStat    Op = "stat"
)

// Fault wraps an [FS] and fails selected operations with injected errors.
//
// Unlike random fault injection, triggers are deterministic: an operation
// fails when its path contains the trigger's substring. Each trigger fires
// at most Count times (0 means unlimited). This is enough to verify that a
// caller aborts on the first error and leaves later files untouched.
//
// Safe for concurrent use.
type Fault struct {
	fs FS

	mu       sync.Mutex
	triggers []*trigger
}

type trigger struct {
	op    Op
	match string
	err   error
	count int // remaining fires; -1 means unlimited
}

// NewFault returns a [Fault] wrapping the given filesystem with no
// triggers armed.
func NewFault(fsys FS) *Fault {
	return &Fault{fs: fsys}
}

// FailOnce arms a trigger that fails the next matching operation with err,
// then disarms itself.
func (f *Fault) FailOnce(op Op, pathSubstring string, err error) {
	f.arm(op, pathSubstring, err, 1)
}

// FailAlways arms a trigger that fails every matching operation with err.
func (f *Fault) FailAlways(op Op, pathSubstring string, err error) {
	f.arm(op, pathSubstring, err, -1)
}

func (f *Fault) arm(op Op, match string, err error, count int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.triggers = append(f.triggers, &trigger{op: op, match: match, err: err, count: count})
}

// check returns the injected error for (op, path), if a trigger matches.
func (f *Fault) check(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range f.triggers {
		if t.op != op || t.count == 0 {
			continue
		}

		if !strings.Contains(path, t.match) {
			continue
		}

		if t.count > 0 {
			t.count--
		}

		return t.err
	}

	return nil
}

func (f *Fault) ReadFile(path string) ([]byte, error) {
	if err := f.check(OpRead, path); err != nil {
		return nil, err
	}

	return f.fs.ReadFile(path)
}

func (f *Fault) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := f.check(OpWrite, path); err != nil {
		return err
	}

	return f.fs.WriteFileAtomic(path, data, perm)
}

func (f *Fault) ReadDir(path string) ([]os.DirEntry, error) {
	if err := f.check(OpReadDir, path); err != nil {
		return nil, err
	}

	return f.fs.ReadDir(path)
}

func (f *Fault) Stat(path string) (os.FileInfo, error) {
	if err := f.check(OpStat, path); err != nil {
		return nil, err
	}

	return f.fs.Stat(path)
}

func (f *Fault) Exists(path string) (bool, error) {
	if err := f.check(OpStat, path); err != nil {
		return false, err
	}

	return f.fs.Exists(path)
}

// Compile-time interface check.
var _ FS = (*Fault)(nil)
