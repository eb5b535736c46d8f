package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerbKeys(t *testing.T) {
	for _, v := range Verbs {
		got, ok := VerbForKey(v.Key())
		require.True(t, ok, v)
		assert.Equal(t, v, got)
	}
	assert.Equal(t, "d", VerbDelete.Key())
	assert.Equal(t, "l", VerbLeave.Key())

	_, ok := VerbForKey("y")
	assert.False(t, ok)
}

func TestVerbMutating(t *testing.T) {
	assert.True(t, VerbDelete.Mutating())
	assert.True(t, VerbCreate.Mutating())
	assert.True(t, VerbAlter.Mutating())
	assert.False(t, VerbLeave.Mutating())
}

func TestActionAccessors(t *testing.T) {
	tests := []struct {
		action  Action
		verb    Verb
		current string
		new     string
	}{
		{DeleteAction{Current: "c"}, VerbDelete, "c", ""},
		{CreateAction{New: "n"}, VerbCreate, "", "n"},
		{AlterAction{Current: "c", New: "n"}, VerbAlter, "c", "n"},
		{LeaveAction{Current: "c", New: "n"}, VerbLeave, "c", "n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.verb), func(t *testing.T) {
			assert.Equal(t, tt.verb, tt.action.Verb())
			assert.Equal(t, tt.current, tt.action.CurrentPath())
			assert.Equal(t, tt.new, tt.action.NewPath())
		})
	}
}

func TestActionSetMerge(t *testing.T) {
	set := ActionSet{"a": DeleteAction{Current: "a"}}

	require.NoError(t, set.Merge(ActionSet{"b/c": CreateAction{New: "b/c"}}))
	assert.Equal(t, []string{"a", "b/c"}, set.Paths())

	assert.Error(t, set.Merge(ActionSet{"a": LeaveAction{}}))
}

func TestFileKindString(t *testing.T) {
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "directory", KindDirectory.String())
	assert.Equal(t, "other", KindOther.String())
}

func TestSummaryCounts(t *testing.T) {
	var s Summary
	assert.False(t, s.Aborted())

	s.Add(Result{Arg: "a", Outcome: OutcomeInstalled})
	s.Add(Result{Arg: "b", Outcome: OutcomeSkipped})
	s.Add(Result{Arg: "c", Outcome: OutcomeSkipped})

	assert.Equal(t, 1, s.Count(OutcomeInstalled))
	assert.Equal(t, 2, s.Count(OutcomeSkipped))
	assert.Equal(t, 0, s.Count(OutcomeFailed))
	assert.False(t, s.Aborted())

	s.Add(Result{Arg: "d", Outcome: OutcomeAborted})
	assert.True(t, s.Aborted())
	assert.Len(t, s.Results, 4)
}
