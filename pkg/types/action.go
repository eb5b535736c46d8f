package types

import (
	"fmt"
	"sort"
)

// Verb names the disposition of a single relative path.
type Verb string

const (
	VerbDelete Verb = "delete"
	VerbCreate Verb = "create"
	VerbAlter  Verb = "alter"
	VerbLeave  Verb = "leave"
)

// Verbs lists every verb in display order.
var Verbs = []Verb{VerbDelete, VerbCreate, VerbAlter, VerbLeave}

// Key returns the single-letter selector used at the directory prompt.
func (v Verb) Key() string {
	return string(v[0])
}

// Mutating reports whether installing the candidate tree changes anything
// for paths with this verb.
func (v Verb) Mutating() bool {
	return v != VerbLeave
}

// VerbForKey maps a prompt letter back to its verb.
func VerbForKey(key string) (Verb, bool) {
	for _, v := range Verbs {
		if v.Key() == key {
			return v, true
		}
	}
	return "", false
}

// Action is the classified disposition of one relative path. The set of
// implementations is closed: DeleteAction, CreateAction, AlterAction and
// LeaveAction.
type Action interface {
	Verb() Verb
	// CurrentPath is empty for CreateAction.
	CurrentPath() string
	// NewPath is empty for DeleteAction.
	NewPath() string

	isAction()
}

// DeleteAction: the path exists only in the current tree.
type DeleteAction struct {
	Current string
}

// CreateAction: the path exists only in the new tree.
type CreateAction struct {
	New string
}

// AlterAction: both sides are regular files with different contents.
type AlterAction struct {
	Current string
	New     string
}

// LeaveAction: both sides are regular files with identical contents.
type LeaveAction struct {
	Current string
	New     string
}

func (DeleteAction) Verb() Verb { return VerbDelete }
func (CreateAction) Verb() Verb { return VerbCreate }
func (AlterAction) Verb() Verb  { return VerbAlter }
func (LeaveAction) Verb() Verb  { return VerbLeave }

func (a DeleteAction) CurrentPath() string { return a.Current }
func (a CreateAction) CurrentPath() string { return "" }
func (a AlterAction) CurrentPath() string  { return a.Current }
func (a LeaveAction) CurrentPath() string  { return a.Current }

func (a DeleteAction) NewPath() string { return "" }
func (a CreateAction) NewPath() string { return a.New }
func (a AlterAction) NewPath() string  { return a.New }
func (a LeaveAction) NewPath() string  { return a.New }

func (DeleteAction) isAction() {}
func (CreateAction) isAction() {}
func (AlterAction) isAction()  {}
func (LeaveAction) isAction()  {}

// ActionSet maps a relative path (slash separated, no leading "./") to its
// Action.
type ActionSet map[string]Action

// Paths returns the relative paths in lexicographic order.
func (s ActionSet) Paths() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Merge copies every entry of other into s. A path already present in s is
// an internal error since each relative path is visited exactly once.
func (s ActionSet) Merge(other ActionSet) error {
	for p, a := range other {
		if _, exists := s[p]; exists {
			return fmt.Errorf("duplicate action for %s", p)
		}
		s[p] = a
	}
	return nil
}

// VerbGroup holds, for every verb, the sorted relative paths carrying it.
type VerbGroup struct {
	groups map[Verb][]string
}

// NewVerbGroup returns a VerbGroup with all four verbs present and empty.
func NewVerbGroup() VerbGroup {
	g := VerbGroup{groups: make(map[Verb][]string, len(Verbs))}
	for _, v := range Verbs {
		g.groups[v] = []string{}
	}
	return g
}

// Add appends a path to the group for v. Callers add in sorted order.
func (g VerbGroup) Add(v Verb, relPath string) {
	g.groups[v] = append(g.groups[v], relPath)
}

// Paths returns the paths for v. The returned slice must not be modified.
func (g VerbGroup) Paths(v Verb) []string {
	return g.groups[v]
}

// Len returns the number of paths across all verbs.
func (g VerbGroup) Len() int {
	n := 0
	for _, paths := range g.groups {
		n += len(paths)
	}
	return n
}

// HasEffect reports whether any mutating group is non-empty.
func (g VerbGroup) HasEffect() bool {
	for _, v := range Verbs {
		if v.Mutating() && len(g.groups[v]) > 0 {
			return true
		}
	}
	return false
}
