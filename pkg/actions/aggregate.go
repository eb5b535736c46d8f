// Package actions groups a tree comparison by verb.
package actions

import (
	"fmt"

	"github.com/arthur-debert/carp/pkg/types"
)

// Aggregate groups every action of set under its verb. Each group's paths
// are in lexicographic order and every path lands in exactly one group.
func Aggregate(set types.ActionSet) types.VerbGroup {
	group := types.NewVerbGroup()
	for _, p := range set.Paths() {
		group.Add(verbOf(set[p]), p)
	}
	return group
}

// verbOf switches over the closed Action variants so that a new variant
// without a case here fails loudly instead of being dropped.
func verbOf(a types.Action) types.Verb {
	switch a.(type) {
	case types.DeleteAction:
		return types.VerbDelete
	case types.CreateAction:
		return types.VerbCreate
	case types.AlterAction:
		return types.VerbAlter
	case types.LeaveAction:
		return types.VerbLeave
	default:
		panic(fmt.Sprintf("actions: unhandled action type %T", a))
	}
}
