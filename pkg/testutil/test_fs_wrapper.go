package testutil

import (
	"io"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/carp/pkg/types"
)

// Op names a types.FS method for fault injection.
type Op string

const (
	OpLstat     Op = "lstat"
	OpReadDir   Op = "readdir"
	OpOpen      Op = "open"
	OpRename    Op = "rename"
	OpRemove    Op = "remove"
	OpRemoveAll Op = "removeall"
)

// Call records one mutating call made through a FaultFS.
type Call struct {
	Op   Op
	Args []string
}

// FaultFS wraps a types.FS, failing selected operations and recording the
// mutating calls that reached the underlying filesystem.
type FaultFS struct {
	inner types.FS

	mu     sync.Mutex
	faults map[Op]map[string]error
	calls  []Call
}

// NewFaultFS wraps inner.
func NewFaultFS(inner types.FS) *FaultFS {
	return &FaultFS{
		inner:  inner,
		faults: make(map[Op]map[string]error),
	}
}

// Fail makes op on path return err. For Rename the path is the source.
func (f *FaultFS) Fail(op Op, path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.faults[op] == nil {
		f.faults[op] = make(map[string]error)
	}
	f.faults[op][filepath.Clean(path)] = err
}

// Calls returns the mutating calls that succeeded, in order.
func (f *FaultFS) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FaultFS) fault(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faults[op][filepath.Clean(path)]
}

func (f *FaultFS) record(op Op, args ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: op, Args: args})
}

func (f *FaultFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.fault(OpLstat, name); err != nil {
		return nil, err
	}
	return f.inner.Lstat(name)
}

func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.fault(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.inner.ReadDir(name)
}

func (f *FaultFS) Open(name string) (io.ReadCloser, error) {
	if err := f.fault(OpOpen, name); err != nil {
		return nil, err
	}
	return f.inner.Open(name)
}

func (f *FaultFS) Rename(oldpath, newpath string) error {
	if err := f.fault(OpRename, oldpath); err != nil {
		return err
	}
	if err := f.inner.Rename(oldpath, newpath); err != nil {
		return err
	}
	f.record(OpRename, oldpath, newpath)
	return nil
}

func (f *FaultFS) Remove(name string) error {
	if err := f.fault(OpRemove, name); err != nil {
		return err
	}
	if err := f.inner.Remove(name); err != nil {
		return err
	}
	f.record(OpRemove, name)
	return nil
}

func (f *FaultFS) RemoveAll(path string) error {
	if err := f.fault(OpRemoveAll, path); err != nil {
		return err
	}
	if err := f.inner.RemoveAll(path); err != nil {
		return err
	}
	f.record(OpRemoveAll, path)
	return nil
}
