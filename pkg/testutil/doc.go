// Package testutil provides utilities for testing carp components.
//
// Key components:
//   - WriteTree / Snapshot: declarative real-filesystem fixtures under
//     t.TempDir(), and a path → content snapshot to compare trees
//   - FaultFS: a types.FS wrapper that injects errors per operation and path
//   - RecordingViewer: a viewer.Viewer fake that records every invocation
//
// All test data should be defined inline, not in external files.
package testutil
