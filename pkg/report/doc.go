// Package report renders what a directory merge would do, and what a run
// did, on the report stream.
//
// Two renderers exist. The text renderer writes the indented verb listing
// operators are used to, optionally styled:
//
//	Replacing conf with conf.new would...
//
//	    delete:
//	        b
//
//	    create:
//	        c
//
// The JSON renderer writes one indented document per call, tagged with a
// "type" field ("plan" or "summary") so a stream of them stays parseable.
package report
