// Package selector drives the operator decisions of a merge.
//
// The directory workflow loops over the alphabet {d, c, a, l, y, n}: a verb
// letter shows every path of that group in the viewer and asks again, y
// installs the new tree and n skips it. The single-file workflow shows the
// pair once and asks over {y, b, n, q}.
package selector

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/carp/pkg/errors"
	"github.com/arthur-debert/carp/pkg/logging"
	"github.com/arthur-debert/carp/pkg/types"
	"github.com/arthur-debert/carp/pkg/ui"
	"github.com/arthur-debert/carp/pkg/viewer"
)

// TreePrompt is asked until the operator installs or skips the new tree.
const TreePrompt = "select a group to examine [dcal] or 'y' to install the new or 'n' to skip it:"

// TreeAnswers is the directory workflow alphabet.
var TreeAnswers = []string{"d", "c", "a", "l", "y", "n"}

// FileAnswers is the single-file workflow alphabet.
var FileAnswers = []string{"y", "b", "n", "q"}

// TreeDecision is the terminal state of the directory workflow.
type TreeDecision int

const (
	TreeSkip TreeDecision = iota
	TreeInstall
)

func (d TreeDecision) String() string {
	if d == TreeInstall {
		return "install"
	}
	return "skip"
}

// FileDecision is the answer to the single-file prompt.
type FileDecision int

const (
	FileSkip FileDecision = iota
	FileReplace
	FileBackupReplace
	FileAbort
)

func (d FileDecision) String() string {
	switch d {
	case FileReplace:
		return "replace"
	case FileBackupReplace:
		return "backup-replace"
	case FileAbort:
		return "abort"
	default:
		return "skip"
	}
}

// Asker asks one question over a closed alphabet.
type Asker interface {
	Ask(question string, valid []string) (string, error)
}

// Selector asks the operator and shows groups in the viewer.
type Selector struct {
	asker   Asker
	viewer  viewer.Viewer
	console *ui.Console
}

// New creates a Selector.
func New(asker Asker, v viewer.Viewer, console *ui.Console) *Selector {
	return &Selector{asker: asker, viewer: v, console: console}
}

// SelectTree runs the directory loop for root. Errors come only from the
// operator input; viewer failures are reported and the loop goes on.
func (s *Selector) SelectTree(ctx context.Context, root types.MergeRoot, groups types.VerbGroup) (TreeDecision, error) {
	logger := logging.GetLogger("selector")

	for {
		s.console.Blank()
		answer, err := s.asker.Ask(TreePrompt, TreeAnswers)
		if err != nil {
			return TreeSkip, err
		}

		switch answer {
		case "y":
			return TreeInstall, nil
		case "n":
			return TreeSkip, nil
		}

		verb, ok := types.VerbForKey(answer)
		if !ok {
			return TreeSkip, errors.Newf(errors.ErrInternal, "no verb for answer %q", answer)
		}

		paths := groups.Paths(verb)
		logger.Debug().
			Str("verb", string(verb)).
			Int("paths", len(paths)).
			Msg("examining group")

		for _, rel := range paths {
			if err := ctx.Err(); err != nil {
				return TreeSkip, err
			}
			left, right := viewPair(root, verb, rel)
			s.view(ctx, left, right)
		}
	}
}

// SelectFile shows the pair in the viewer once, then asks whether to
// update the current file.
func (s *Selector) SelectFile(ctx context.Context, pair types.PathPair) (FileDecision, error) {
	s.view(ctx, pair.Current, pair.New)

	answer, err := s.asker.Ask("update "+pair.Current+" ?", FileAnswers)
	if err != nil {
		return FileSkip, err
	}

	switch answer {
	case "y":
		return FileReplace, nil
	case "b":
		return FileBackupReplace, nil
	case "q":
		return FileAbort, nil
	default:
		return FileSkip, nil
	}
}

func (s *Selector) view(ctx context.Context, left, right string) {
	if err := s.viewer.View(ctx, left, right); err != nil {
		s.console.Warn("%s", errors.Message(err))
	}
}

// viewPair maps a relative path of a group to the two viewer arguments.
// The side that does not exist is the null device.
func viewPair(root types.MergeRoot, verb types.Verb, rel string) (string, string) {
	native := filepath.FromSlash(rel)
	left := filepath.Join(root.CurrentRoot, native)
	right := filepath.Join(root.NewRoot, native)

	switch verb {
	case types.VerbDelete:
		right = os.DevNull
	case types.VerbCreate:
		left = os.DevNull
	}
	return left, right
}
