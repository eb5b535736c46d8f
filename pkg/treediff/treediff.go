// Package treediff walks a current and a new directory tree in lock-step and
// classifies every entry into a types.Action.
package treediff

import (
	"path"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/carp/pkg/compare"
	"github.com/arthur-debert/carp/pkg/errors"
	"github.com/arthur-debert/carp/pkg/logging"
	"github.com/arthur-debert/carp/pkg/types"
	"github.com/rs/zerolog"
)

// entry is one listed name on one side of a comparison.
type entry struct {
	name string
	kind types.FileKind
	path string
}

// pair holds the entries found under one name; either side may be nil.
type pair struct {
	current *entry
	new     *entry
}

// Option configures a Differ.
type Option func(*Differ)

// WithIgnoredHook calls fn with the full path of every ignored entry.
func WithIgnoredHook(fn func(path string)) Option {
	return func(d *Differ) {
		d.onIgnored = fn
	}
}

// Differ compares two directory trees.
type Differ struct {
	fs        types.FS
	ignore    []string
	onIgnored func(path string)
	logger    zerolog.Logger
}

// New returns a Differ that skips names matching any of the ignore globs.
func New(fsys types.FS, ignore []string, opts ...Option) *Differ {
	d := &Differ{
		fs:     fsys,
		ignore: ignore,
		logger: logging.GetLogger("treediff"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Diff returns the Action of every relative path under the merged tree.
// Directories present on both sides produce no Action of their own.
func (d *Differ) Diff(root types.MergeRoot) (types.ActionSet, error) {
	done := logging.LogOperationStart(d.logger, "diff")
	defer done()

	actions, err := d.diffLevel(root, "")
	if err != nil {
		return nil, err
	}
	d.logger.Debug().
		Str("current", root.CurrentRoot).
		Str("new", root.NewRoot).
		Int("actions", len(actions)).
		Msg("Tree comparison finished")
	return actions, nil
}

// diffLevel classifies the entries of the directory rel (slash separated,
// "" for the roots) and returns its contribution, including everything
// below it.
func (d *Differ) diffLevel(root types.MergeRoot, rel string) (types.ActionSet, error) {
	currentDir := filepath.Join(root.CurrentRoot, filepath.FromSlash(rel))
	newDir := filepath.Join(root.NewRoot, filepath.FromSlash(rel))

	currentEntries, err := d.list(currentDir)
	if err != nil {
		return nil, err
	}
	newEntries, err := d.list(newDir)
	if err != nil {
		return nil, err
	}

	pairs := make(map[string]*pair, len(currentEntries)+len(newEntries))
	for _, e := range currentEntries {
		pairs[e.name] = &pair{current: e}
	}
	for _, e := range newEntries {
		if p, ok := pairs[e.name]; ok {
			p.new = e
		} else {
			pairs[e.name] = &pair{new: e}
		}
	}

	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)

	actions := make(types.ActionSet)
	for _, name := range names {
		p := pairs[name]
		itemRel := path.Join(rel, name)

		switch {
		case p.current == nil && p.new == nil:
			return nil, errors.Newf(errors.ErrInternal, "no entry on either side for %s", itemRel)

		case p.new == nil:
			actions[itemRel] = types.DeleteAction{Current: p.current.path}

		case p.current == nil:
			actions[itemRel] = types.CreateAction{New: p.new.path}

		case p.current.kind == types.KindOther || p.new.kind == types.KindOther:
			unsupported := p.current.path
			if p.current.kind != types.KindOther {
				unsupported = p.new.path
			}
			return nil, errors.Newf(errors.ErrUnsupportedType,
				"%s is neither a regular file nor a directory", unsupported).
				WithDetail("path", itemRel)

		case p.current.kind != p.new.kind:
			return nil, errors.Newf(errors.ErrTypeMismatch,
				"%s is a %s, but %s is a %s",
				p.current.path, p.current.kind, p.new.path, p.new.kind).
				WithDetail("path", itemRel)

		case p.current.kind == types.KindFile:
			same, err := compare.Identical(d.fs, p.current.path, p.new.path)
			if err != nil {
				return nil, err
			}
			if same {
				actions[itemRel] = types.LeaveAction{Current: p.current.path, New: p.new.path}
			} else {
				actions[itemRel] = types.AlterAction{Current: p.current.path, New: p.new.path}
			}

		default:
			sub, err := d.diffLevel(root, itemRel)
			if err != nil {
				return nil, err
			}
			if err := actions.Merge(sub); err != nil {
				return nil, errors.Wrap(err, errors.ErrInternal, "failed to merge subtree actions")
			}
		}
	}

	return actions, nil
}

// list reads one directory, dropping ignored names.
func (d *Differ) list(dir string) ([]*entry, error) {
	dirEntries, err := d.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", dir)
	}

	entries := make([]*entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		full := filepath.Join(dir, de.Name())
		if d.ignored(de.Name()) {
			d.logger.Debug().Str("path", full).Msg("Ignoring entry")
			if d.onIgnored != nil {
				d.onIgnored(full)
			}
			continue
		}
		entries = append(entries, &entry{
			name: de.Name(),
			kind: compare.KindOf(de.Type()),
			path: full,
		})
	}
	return entries, nil
}

func (d *Differ) ignored(name string) bool {
	for _, pattern := range d.ignore {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
