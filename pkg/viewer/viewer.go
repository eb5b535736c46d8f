// Package viewer runs the external visual diff tool on a pair of paths.
package viewer

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	carperrors "github.com/arthur-debert/carp/pkg/errors"
	"github.com/arthur-debert/carp/pkg/logging"
)

// Viewer shows two paths side by side and blocks until the operator is done.
// An error from View is advisory: callers report it and carry on.
type Viewer interface {
	View(ctx context.Context, left, right string) error
}

// External runs a command with the two paths appended to its argv.
type External struct {
	argv   []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExternal creates a viewer running argv. The viewer inherits the
// process stdin, and its output goes to errOut so it never mixes with the
// report stream.
func NewExternal(argv []string, errOut io.Writer) *External {
	return &External{
		argv:   append([]string(nil), argv...),
		stdin:  os.Stdin,
		stdout: errOut,
		stderr: errOut,
	}
}

// Command returns the configured argv.
func (e *External) Command() []string {
	return append([]string(nil), e.argv...)
}

// View runs the viewer on left and right. A non-zero exit or a failure to
// start yields a VIEWER_FAILED error naming both paths. Reporting it is the
// caller's job, so nothing is logged above debug.
func (e *External) View(ctx context.Context, left, right string) error {
	logger := logging.GetLogger("viewer")

	if len(e.argv) == 0 {
		return carperrors.New(carperrors.ErrViewerFailed, "no viewer command configured")
	}

	args := append(e.argv[1:len(e.argv):len(e.argv)], left, right)
	cmd := exec.CommandContext(ctx, e.argv[0], args...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	logger.Debug().
		Str("command", e.argv[0]).
		Strs("args", args).
		Msg("Running viewer")

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Debug().
			Int("exit_code", exitErr.ExitCode()).
			Str("left", left).
			Str("right", right).
			Msg("Viewer exited with non-zero status")
		viewErr := carperrors.Newf(carperrors.ErrViewerFailed,
			"viewer on %s and %s: return code was %d", left, right, exitErr.ExitCode()).
			WithDetail("exit_code", exitErr.ExitCode()).
			WithDetail("left", left).
			WithDetail("right", right)
		viewErr.Wrapped = err
		return viewErr
	}

	logger.Debug().Err(err).Str("command", e.argv[0]).Msg("Viewer could not be started")
	return carperrors.Wrapf(err, carperrors.ErrViewerFailed, "failed to run %s on %s and %s", e.argv[0], left, right)
}
