package selector_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/carp/pkg/errors"
	"github.com/arthur-debert/carp/pkg/selector"
	"github.com/arthur-debert/carp/pkg/testutil"
	"github.com/arthur-debert/carp/pkg/types"
	"github.com/arthur-debert/carp/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var root = types.MergeRoot{CurrentRoot: "cur", NewRoot: "cur.new"}

func sampleGroups() types.VerbGroup {
	g := types.NewVerbGroup()
	g.Add(types.VerbDelete, "b")
	g.Add(types.VerbCreate, "c")
	g.Add(types.VerbCreate, "sub/d")
	g.Add(types.VerbAlter, "e")
	g.Add(types.VerbLeave, "a")
	return g
}

func newSelector(input string, v *testutil.RecordingViewer) (*selector.Selector, *bytes.Buffer) {
	var errOut bytes.Buffer
	console := ui.NewConsole(&bytes.Buffer{}, &errOut, false)
	return selector.New(ui.NewPrompter(strings.NewReader(input), console), v, console), &errOut
}

func TestSelectTreeTerminalAnswers(t *testing.T) {
	tests := []struct {
		input    string
		expected selector.TreeDecision
	}{
		{"y\n", selector.TreeInstall},
		{"n\n", selector.TreeSkip},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			v := &testutil.RecordingViewer{}
			s, errOut := newSelector(tt.input, v)

			decision, err := s.SelectTree(context.Background(), root, sampleGroups())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decision)
			assert.Empty(t, v.Calls())
			assert.Contains(t, errOut.String(), selector.TreePrompt)
		})
	}
}

func TestSelectTreeExaminesGroups(t *testing.T) {
	v := &testutil.RecordingViewer{}
	s, _ := newSelector("d\nc\na\nl\nn\n", v)

	decision, err := s.SelectTree(context.Background(), root, sampleGroups())
	require.NoError(t, err)
	assert.Equal(t, selector.TreeSkip, decision)

	assert.Equal(t, []testutil.ViewCall{
		{Left: filepath.Join("cur", "b"), Right: os.DevNull},
		{Left: os.DevNull, Right: filepath.Join("cur.new", "c")},
		{Left: os.DevNull, Right: filepath.Join("cur.new", "sub", "d")},
		{Left: filepath.Join("cur", "e"), Right: filepath.Join("cur.new", "e")},
		{Left: filepath.Join("cur", "a"), Right: filepath.Join("cur.new", "a")},
	}, v.Calls())
}

func TestSelectTreeInvalidInputReprompts(t *testing.T) {
	v := &testutil.RecordingViewer{}
	s, errOut := newSelector("x\nq\nY\ny\n", v)

	decision, err := s.SelectTree(context.Background(), root, sampleGroups())
	require.NoError(t, err)
	assert.Equal(t, selector.TreeInstall, decision)
	assert.Equal(t, 4, strings.Count(errOut.String(), selector.TreePrompt))
	assert.Contains(t, errOut.String(), "You responded 'q'")
	assert.Empty(t, v.Calls())
}

func TestSelectTreeEmptyGroupShowsNothing(t *testing.T) {
	v := &testutil.RecordingViewer{}
	s, _ := newSelector("a\ny\n", v)

	g := types.NewVerbGroup()
	g.Add(types.VerbDelete, "b")

	_, err := s.SelectTree(context.Background(), root, g)
	require.NoError(t, err)
	assert.Empty(t, v.Calls())
}

func TestSelectTreeViewerFailureContinues(t *testing.T) {
	v := &testutil.RecordingViewer{Err: errors.New(errors.ErrViewerFailed, "viewer on cur/b and /dev/null: return code was 1")}
	s, errOut := newSelector("d\ny\n", v)

	decision, err := s.SelectTree(context.Background(), root, sampleGroups())
	require.NoError(t, err)
	assert.Equal(t, selector.TreeInstall, decision)
	assert.Len(t, v.Calls(), 1)
	assert.Equal(t, 1, strings.Count(errOut.String(), "WARNING: viewer on cur/b and /dev/null: return code was 1"))
}

func TestSelectTreeInputClosed(t *testing.T) {
	s, _ := newSelector("d\n", &testutil.RecordingViewer{})

	decision, err := s.SelectTree(context.Background(), root, sampleGroups())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputClosed))
	assert.Equal(t, selector.TreeSkip, decision)
}

func TestSelectTreeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := &testutil.RecordingViewer{}
	s, _ := newSelector("d\n", v)

	_, err := s.SelectTree(ctx, root, sampleGroups())
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, v.Calls())
}

func TestSelectFile(t *testing.T) {
	pair := types.PathPair{Current: "conf", New: "conf.new"}

	tests := []struct {
		input    string
		expected selector.FileDecision
	}{
		{"y\n", selector.FileReplace},
		{"b\n", selector.FileBackupReplace},
		{"n\n", selector.FileSkip},
		{"q\n", selector.FileAbort},
		{"d\nyes\nb\n", selector.FileBackupReplace},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			v := &testutil.RecordingViewer{}
			s, errOut := newSelector(tt.input, v)

			decision, err := s.SelectFile(context.Background(), pair)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decision)

			// The viewer runs once, before the first prompt
			assert.Equal(t, []testutil.ViewCall{{Left: "conf", Right: "conf.new"}}, v.Calls())
			assert.True(t, strings.HasPrefix(errOut.String(), "update conf ? "))
		})
	}
}

func TestSelectFileInputClosed(t *testing.T) {
	s, _ := newSelector("", &testutil.RecordingViewer{})

	decision, err := s.SelectFile(context.Background(), types.PathPair{Current: "a", New: "a.new"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputClosed))
	assert.Equal(t, selector.FileSkip, decision)
}
