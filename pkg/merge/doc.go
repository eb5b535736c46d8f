// Package merge runs carp over its path arguments.
//
// Each argument names a current object or its candidate. The pair is
// classified and then either installed outright (no current object),
// handled as a single file, or handled as a directory merge:
//
//	treediff.Diff -> actions.Aggregate -> report.RenderPlan -> selector.SelectTree -> replace
//
// Failures are isolated per argument: they are reported on the status
// stream, recorded in the Summary, and the next argument is processed. Only
// the operator's abort answer stops the batch.
package merge
