// Package replace performs the filesystem mutations of a merge.
//
// Every operation is a short sequence of removes and renames, executed in
// order as a synthfs pipeline over the merge's types.FS. There is no
// rollback: if a step fails, the steps before it stay done and the error
// names the step that failed. With dry run on, each operation announces
// what it would do on the status stream and touches nothing.
package replace

import (
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/carp/pkg/errors"
	"github.com/arthur-debert/carp/pkg/logging"
	"github.com/arthur-debert/carp/pkg/types"
	"github.com/arthur-debert/carp/pkg/ui"
)

// Option configures a Replacer.
type Option func(*Replacer)

// WithDryRun turns mutations into announcements.
func WithDryRun(dryRun bool) Option {
	return func(r *Replacer) { r.dryRun = dryRun }
}

// Replacer mutates trees through a types.FS.
type Replacer struct {
	fs           types.FS
	backupSuffix string
	dryRun       bool
	console      *ui.Console
	logger       zerolog.Logger
}

// New creates a Replacer. backupSuffix is appended to a current file's path
// to name its single backup generation.
func New(fsys types.FS, backupSuffix string, console *ui.Console, opts ...Option) *Replacer {
	r := &Replacer{
		fs:           fsys,
		backupSuffix: backupSuffix,
		console:      console,
		logger:       logging.GetLogger("replace"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DryRun reports whether mutations are suppressed.
func (r *Replacer) DryRun() bool { return r.dryRun }

// BackupPath is where BackupThenReplace keeps the previous current file.
func (r *Replacer) BackupPath(current string) string {
	return current + r.backupSuffix
}

// InstallWholeTree removes the current tree, then moves the new tree into
// its place. The removal completes before the move starts.
func (r *Replacer) InstallWholeTree(root types.MergeRoot) error {
	if r.dryRun {
		r.console.Status("would remove %s and move %s there", root.CurrentRoot, root.NewRoot)
		return nil
	}
	return r.run(removeTree(root.CurrentRoot), move(root.NewRoot, root.CurrentRoot))
}

// DiscardNewTree removes the new tree and leaves the current one alone.
func (r *Replacer) DiscardNewTree(root types.MergeRoot) error {
	if r.dryRun {
		r.console.Status("would remove %s", root.NewRoot)
		return nil
	}
	return r.run(removeTree(root.NewRoot))
}

// RemoveUnchangedNewTree removes a new tree that would have no effect.
func (r *Replacer) RemoveUnchangedNewTree(root types.MergeRoot) error {
	if r.dryRun {
		r.console.Status("would remove unchanged %s", root.NewRoot)
		return nil
	}
	return r.run(removeTree(root.NewRoot))
}

// ReplaceFile moves the new file onto the current one.
func (r *Replacer) ReplaceFile(pair types.PathPair) error {
	if r.dryRun {
		r.console.Status("would move %s onto %s", pair.New, pair.Current)
		return nil
	}
	return r.run(move(pair.New, pair.Current))
}

// BackupThenReplace keeps exactly one backup generation: any previous
// backup (file or directory) is removed, the current file becomes the
// backup, and the new file takes its place. It returns the backup path.
func (r *Replacer) BackupThenReplace(pair types.PathPair) (string, error) {
	backup := r.BackupPath(pair.Current)

	if r.dryRun {
		r.console.Status("would move %s to %s and %s onto %s", pair.Current, backup, pair.New, pair.Current)
		return backup, nil
	}

	steps, err := r.removeBackup(backup)
	if err != nil {
		return backup, err
	}
	steps = append(steps, move(pair.Current, backup), move(pair.New, pair.Current))
	return backup, r.run(steps...)
}

// InstallCandidate moves a candidate into place when there is no current
// object.
func (r *Replacer) InstallCandidate(pair types.PathPair) error {
	if r.dryRun {
		r.console.Status("would move %s to %s", pair.New, pair.Current)
		return nil
	}
	return r.run(move(pair.New, pair.Current))
}

// RemoveCandidate removes a single candidate file identical to its current
// file.
func (r *Replacer) RemoveCandidate(pair types.PathPair) error {
	if r.dryRun {
		r.console.Status("would remove %s", pair.New)
		return nil
	}
	return r.run(removeFile(pair.New))
}

// removeBackup returns the step that clears a previous backup, if any.
func (r *Replacer) removeBackup(backup string) ([]step, error) {
	info, err := r.fs.Lstat(backup)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check backup %s", backup)
	}
	if info.Mode()&fs.ModeDir != 0 {
		return []step{removeTree(backup)}, nil
	}
	return []step{removeFile(backup)}, nil
}
