// Package types defines the core types shared across carp.
//
// The central type is Action, a closed sum type with one struct per verb
// (DeleteAction, CreateAction, AlterAction, LeaveAction). A tree comparison
// produces an ActionSet keyed by relative path; aggregating an ActionSet by
// verb yields a VerbGroup for reporting and selection.
package types
