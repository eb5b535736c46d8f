package report

import (
	"fmt"
	"os"

	"github.com/arthur-debert/carp/pkg/types"
	"github.com/arthur-debert/carp/pkg/ui"
)

// Plan is the aggregated comparison of one directory merge.
type Plan struct {
	Root   types.MergeRoot
	Groups types.VerbGroup
}

// HasEffect reports whether installing the new tree would change anything.
func (p Plan) HasEffect() bool {
	return p.Groups.HasEffect()
}

// Renderer writes plans and summaries to the console's report stream.
type Renderer interface {
	// RenderPlan renders the verb groups of one merge. When the plan has
	// no effect it says so and announces the removal of the new tree.
	RenderPlan(p Plan) error

	// RenderSummary renders the outcome of every argument of a run.
	RenderSummary(s types.Summary) error
}

// NewRenderer creates the renderer for format. FormatAuto is resolved
// against the report stream when it is a terminal.
func NewRenderer(format ui.Format, console *ui.Console, leaveLimit int) (Renderer, error) {
	if leaveLimit < 0 {
		return nil, fmt.Errorf("leave limit must not be negative: %d", leaveLimit)
	}

	switch format {
	case ui.FormatAuto:
		if file, ok := console.Out().(*os.File); ok {
			return NewRenderer(format.Resolve(file, !console.Color()), console, leaveLimit)
		}
		return NewRenderer(ui.FormatText, console, leaveLimit)
	case ui.FormatTerminal:
		return newTextRenderer(console, leaveLimit, true), nil
	case ui.FormatText:
		return newTextRenderer(console, leaveLimit, false), nil
	case ui.FormatJSON:
		return newJSONRenderer(console.Out()), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
