package merge

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/carp/pkg/actions"
	"github.com/arthur-debert/carp/pkg/compare"
	"github.com/arthur-debert/carp/pkg/config"
	"github.com/arthur-debert/carp/pkg/errors"
	"github.com/arthur-debert/carp/pkg/logging"
	"github.com/arthur-debert/carp/pkg/replace"
	"github.com/arthur-debert/carp/pkg/report"
	"github.com/arthur-debert/carp/pkg/selector"
	"github.com/arthur-debert/carp/pkg/treediff"
	"github.com/arthur-debert/carp/pkg/types"
	"github.com/arthur-debert/carp/pkg/ui"
	"github.com/arthur-debert/carp/pkg/viewer"
)

// Options holds everything a Merger needs.
type Options struct {
	FS       types.FS
	Config   *config.Config
	Console  *ui.Console
	Renderer report.Renderer
	Asker    selector.Asker
	Viewer   viewer.Viewer

	// DirPrefix is joined in front of every argument.
	DirPrefix string
	DryRun    bool
}

// Merger processes path arguments one at a time.
type Merger struct {
	fs        types.FS
	cfg       *config.Config
	console   *ui.Console
	renderer  report.Renderer
	selector  *selector.Selector
	replacer  *replace.Replacer
	differ    *treediff.Differ
	dirPrefix string
	dryRun    bool
	logger    zerolog.Logger
}

// New creates a Merger. Every collaborator in opts is required.
func New(opts Options) (*Merger, error) {
	switch {
	case opts.FS == nil:
		return nil, errors.New(errors.ErrInvalidInput, "merge: FS is required")
	case opts.Config == nil:
		return nil, errors.New(errors.ErrInvalidInput, "merge: Config is required")
	case opts.Console == nil:
		return nil, errors.New(errors.ErrInvalidInput, "merge: Console is required")
	case opts.Renderer == nil:
		return nil, errors.New(errors.ErrInvalidInput, "merge: Renderer is required")
	case opts.Asker == nil:
		return nil, errors.New(errors.ErrInvalidInput, "merge: Asker is required")
	case opts.Viewer == nil:
		return nil, errors.New(errors.ErrInvalidInput, "merge: Viewer is required")
	}

	m := &Merger{
		fs:        opts.FS,
		cfg:       opts.Config,
		console:   opts.Console,
		renderer:  opts.Renderer,
		selector:  selector.New(opts.Asker, opts.Viewer, opts.Console),
		replacer:  replace.New(opts.FS, opts.Config.Backup.Suffix, opts.Console, replace.WithDryRun(opts.DryRun)),
		dirPrefix: opts.DirPrefix,
		dryRun:    opts.DryRun,
		logger:    logging.GetLogger("merge"),
	}
	m.differ = treediff.New(opts.FS, opts.Config.Ignore.Patterns,
		treediff.WithIgnoredHook(func(path string) {
			m.console.Status("ignoring: %s", path)
		}))
	return m, nil
}

// Run processes every argument in order and returns one Result per
// argument reached. It stops early only when the operator aborts, in which
// case the returned error has code ABORTED, or when ctx is done.
func (m *Merger) Run(ctx context.Context, args []string) (types.Summary, error) {
	done := logging.LogOperationStart(m.logger, "merge")
	defer done()

	var summary types.Summary
	for _, arg := range args {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := m.mergeOne(ctx, arg)
		summary.Add(result)

		m.logger.Info().
			Str("arg", arg).
			Str("outcome", string(result.Outcome)).
			Msg("argument processed")

		if err != nil && errors.IsErrorCode(err, errors.ErrAborted) {
			return summary, err
		}
	}
	return summary, nil
}

// mergeOne handles a single argument. Any error other than ABORTED has
// already been reported and is reflected in the result.
func (m *Merger) mergeOne(ctx context.Context, arg string) (types.Result, error) {
	pair := ResolvePair(JoinPrefix(m.dirPrefix, arg), m.cfg.Candidate.Suffix)
	result := types.Result{Arg: arg, Current: pair.Current, New: pair.New, DryRun: m.dryRun}

	outcome, err := m.dispatch(ctx, pair)
	result.Outcome = outcome
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrAborted) {
			return result, err
		}
		result.Outcome = types.OutcomeFailed
		result.Error = errors.Describe(err)
		m.console.Error("%s", result.Error)
		m.logger.Debug().Err(err).Str("arg", arg).Msg("argument failed")
	}
	return result, nil
}

func (m *Merger) dispatch(ctx context.Context, pair types.PathPair) (types.Outcome, error) {
	newExists, err := m.exists(pair.New)
	if err != nil {
		return types.OutcomeFailed, err
	}
	if !newExists {
		return types.OutcomeFailed, errors.Newf(errors.ErrMissingCandidate,
			"new_path does not exist: %s", pair.New).WithDetail("path", pair.New)
	}

	currentExists, err := m.exists(pair.Current)
	if err != nil {
		return types.OutcomeFailed, err
	}
	if !currentExists {
		m.console.Status("%s does not exist, so installing %s there", pair.Current, pair.New)
		if err := m.replacer.InstallCandidate(pair); err != nil {
			return types.OutcomeFailed, err
		}
		return types.OutcomeCreated, nil
	}

	currentKind, err := compare.Classify(m.fs, pair.Current)
	if err != nil {
		return types.OutcomeFailed, err
	}
	newKind, err := compare.Classify(m.fs, pair.New)
	if err != nil {
		return types.OutcomeFailed, err
	}
	if currentKind != newKind {
		return types.OutcomeFailed, errors.Newf(errors.ErrTypeMismatch,
			"%s is a %s, but %s is a %s", pair.Current, currentKind, pair.New, newKind)
	}

	switch currentKind {
	case types.KindFile:
		return m.mergeFile(ctx, pair)
	case types.KindDirectory:
		return m.mergeTree(ctx, types.MergeRoot{CurrentRoot: pair.Current, NewRoot: pair.New})
	default:
		return types.OutcomeFailed, errors.Newf(errors.ErrInternal, "unexpected kind %s", currentKind)
	}
}

func (m *Merger) mergeFile(ctx context.Context, pair types.PathPair) (types.Outcome, error) {
	same, err := compare.Identical(m.fs, pair.Current, pair.New)
	if err != nil {
		return types.OutcomeFailed, err
	}
	if same {
		m.console.Status("No change from %s", pair.Current)
		if err := m.replacer.RemoveCandidate(pair); err != nil {
			return types.OutcomeFailed, err
		}
		return types.OutcomeUnchanged, nil
	}

	decision, err := m.selector.SelectFile(ctx, pair)
	if err != nil {
		return m.inputFailed(pair.New, err)
	}

	switch decision {
	case selector.FileReplace:
		if err := m.replacer.ReplaceFile(pair); err != nil {
			return types.OutcomeFailed, err
		}
		return types.OutcomeInstalled, nil
	case selector.FileBackupReplace:
		if _, err := m.replacer.BackupThenReplace(pair); err != nil {
			return types.OutcomeFailed, err
		}
		return types.OutcomeBackedUp, nil
	case selector.FileAbort:
		return types.OutcomeAborted, errors.Newf(errors.ErrAborted, "aborted at %s", pair.Current)
	default:
		m.console.Status("(not overwriting)")
		return types.OutcomeSkipped, nil
	}
}

func (m *Merger) mergeTree(ctx context.Context, root types.MergeRoot) (types.Outcome, error) {
	set, err := m.differ.Diff(root)
	if err != nil {
		return types.OutcomeFailed, err
	}

	plan := report.Plan{Root: root, Groups: actions.Aggregate(set)}
	if err := m.renderer.RenderPlan(plan); err != nil {
		return types.OutcomeFailed, errors.Wrap(err, errors.ErrInternal, "failed to render report")
	}

	if !plan.HasEffect() {
		if err := m.replacer.RemoveUnchangedNewTree(root); err != nil {
			return types.OutcomeFailed, err
		}
		return types.OutcomeUnchanged, nil
	}

	decision, err := m.selector.SelectTree(ctx, root, plan.Groups)
	if err != nil {
		return m.inputFailed(root.NewRoot, err)
	}

	if decision == selector.TreeInstall {
		m.console.Status("installing %s...", root.NewRoot)
		if err := m.replacer.InstallWholeTree(root); err != nil {
			return types.OutcomeFailed, err
		}
		return types.OutcomeInstalled, nil
	}

	m.console.Status("skipping %s...", root.NewRoot)
	if m.cfg.Candidate.KeepSkipped {
		return types.OutcomeSkipped, nil
	}
	if err := m.replacer.DiscardNewTree(root); err != nil {
		return types.OutcomeFailed, err
	}
	return types.OutcomeSkipped, nil
}

// exists reports whether path is present, without following symlinks.
func (m *Merger) exists(path string) (bool, error) {
	_, err := m.fs.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
}

// inputFailed turns a closed or failed operator input into a skip.
func (m *Merger) inputFailed(newPath string, err error) (types.Outcome, error) {
	if errors.IsErrorCode(err, errors.ErrInputClosed) {
		m.console.Warn("input closed, skipping %s", newPath)
		return types.OutcomeSkipped, nil
	}
	return types.OutcomeFailed, fmt.Errorf("operator input: %w", err)
}
