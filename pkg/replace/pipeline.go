package replace

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"

	"github.com/arthur-debert/carp/pkg/errors"
	"github.com/arthur-debert/carp/pkg/types"
)

// synthAdapter exposes a types.FS as a synthfs filesystem. Carp only ever
// renames and removes, so content writes, directory creation and links are
// refused.
type synthAdapter struct {
	fs types.FS
}

var _ synthfs.FullFileSystem = (*synthAdapter)(nil)

func unsupported(op, name string) error {
	return &fs.PathError{Op: op, Path: name, Err: stderrors.ErrUnsupported}
}

func (a *synthAdapter) Open(name string) (fs.File, error) { return nil, unsupported("open", name) }

// Stat does not follow symlinks, so a link is removed rather than its target.
func (a *synthAdapter) Stat(name string) (fs.FileInfo, error) { return a.fs.Lstat(name) }

func (a *synthAdapter) WriteFile(name string, _ []byte, _ fs.FileMode) error {
	return unsupported("write", name)
}

func (a *synthAdapter) MkdirAll(path string, _ fs.FileMode) error { return unsupported("mkdir", path) }

func (a *synthAdapter) Symlink(_, newname string) error { return unsupported("symlink", newname) }

func (a *synthAdapter) Readlink(name string) (string, error) {
	return "", unsupported("readlink", name)
}

func (a *synthAdapter) Remove(name string) error { return a.fs.Remove(name) }

func (a *synthAdapter) RemoveAll(name string) error { return a.fs.RemoveAll(name) }

func (a *synthAdapter) Rename(oldpath, newpath string) error { return a.fs.Rename(oldpath, newpath) }

type stepKind int

const (
	stepRemoveTree stepKind = iota
	stepRemoveFile
	stepMove
)

// step is one mutation of a Replacer operation.
type step struct {
	kind     stepKind
	from, to string
}

func removeTree(path string) step { return step{kind: stepRemoveTree, from: path} }
func removeFile(path string) step { return step{kind: stepRemoveFile, from: path} }
func move(from, to string) step   { return step{kind: stepMove, from: from, to: to} }

func (s step) fail(err error) error {
	switch s.kind {
	case stepMove:
		return errors.Wrapf(err, errors.ErrFileMove, "failed to move %s to %s", s.from, s.to)
	default:
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", s.from)
	}
}

// operation builds the synthfs operation for s. Trees go through synthfs's
// delete, which uses RemoveAll on directories. Single files and renames are
// custom operations: synthfs's delete ignores a failed Remove on a file, and
// its move falls back to copy and delete when the rename fails.
func (s step) operation(id string) synthfs.Operation {
	switch s.kind {
	case stepRemoveTree:
		return synthfs.NewOperationsPackageAdapter(
			operations.NewDeleteOperation(core.OperationID(id), s.from))
	case stepRemoveFile:
		return synthfs.NewCustomOperationAdapter(
			synthfs.NewCustomOperation(id, func(_ context.Context, fsys filesystem.FileSystem) error {
				return fsys.Remove(s.from)
			}).WithDescription("remove " + s.from))
	default:
		op := synthfs.NewCustomOperation(id, func(_ context.Context, fsys filesystem.FileSystem) error {
			return fsys.Rename(s.from, s.to)
		}).WithDescription("move " + s.from + " to " + s.to)
		op.SetPaths(s.from, s.to)
		return synthfs.NewCustomOperationAdapter(op)
	}
}

// run executes steps in order as one synthfs pipeline. Each step depends on
// the one before it, the pipeline stops at the first failure, and nothing
// is rolled back.
func (r *Replacer) run(steps ...step) error {
	pipeline := synthfs.NewMemPipeline()
	var prev synthfs.Operation
	for i, s := range steps {
		op := s.operation(fmt.Sprintf("carp-%d", i))
		if prev != nil {
			op.AddDependency(prev.ID())
		}
		if err := pipeline.Add(op); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to build filesystem pipeline")
		}
		prev = op
	}

	opts := synthfs.DefaultPipelineOptions()
	opts.RollbackOnError = false
	opts.ContinueOnError = false

	result := synthfs.NewExecutor().RunWithOptions(context.Background(), pipeline, &synthAdapter{fs: r.fs}, opts)

	done := 0
	for _, raw := range result.GetOperations() {
		opResult, ok := raw.(synthfs.OperationResult)
		if !ok {
			continue
		}
		if opResult.Status == synthfs.StatusFailure {
			return steps[done].fail(opResult.Error)
		}
		r.logStep(steps[done])
		done++
	}

	if err := result.GetError(); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "filesystem pipeline did not run")
	}
	return nil
}

func (r *Replacer) logStep(s step) {
	switch s.kind {
	case stepMove:
		r.logger.Debug().Str("from", s.from).Str("to", s.to).Msg("moved")
	default:
		r.logger.Debug().Str("path", s.from).Msg("removed")
	}
}
