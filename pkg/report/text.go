package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/carp/pkg/types"
	"github.com/arthur-debert/carp/pkg/ui"
)

const indent = "    "

var verbStyles = map[types.Verb]string{
	types.VerbDelete: ui.StyleVerbDelete,
	types.VerbCreate: ui.StyleVerbCreate,
	types.VerbAlter:  ui.StyleVerbAlter,
	types.VerbLeave:  ui.StyleVerbLeave,
}

type textRenderer struct {
	out        io.Writer
	console    *ui.Console
	styled     bool
	leaveLimit int
}

func newTextRenderer(console *ui.Console, leaveLimit int, styled bool) *textRenderer {
	return &textRenderer{
		out:        console.Out(),
		console:    console,
		styled:     styled,
		leaveLimit: leaveLimit,
	}
}

func (r *textRenderer) style(name, text string) string {
	if !r.styled {
		return text
	}
	return r.console.Style(name, text)
}

func (r *textRenderer) RenderPlan(p Plan) error {
	var b strings.Builder

	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "%s %s %s %s %s\n",
		r.style(ui.StyleHeader, "Replacing"),
		r.style(ui.StylePath, p.Root.CurrentRoot),
		r.style(ui.StyleHeader, "with"),
		r.style(ui.StylePath, p.Root.NewRoot),
		r.style(ui.StyleHeader, "would..."))

	if !p.HasEffect() {
		fmt.Fprintf(&b, "%shave no effect,\n", indent)
		fmt.Fprintf(&b, "%sso removing %s...\n", indent, r.style(ui.StylePath, p.Root.NewRoot))
		_, err := io.WriteString(r.out, b.String())
		return err
	}

	for _, verb := range types.Verbs {
		paths := p.Groups.Paths(verb)

		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "%s%s\n", indent, r.style(verbStyles[verb], string(verb)+":"))

		switch {
		case len(paths) == 0:
			fmt.Fprintf(&b, "%s%s\n", indent+indent, r.style(ui.StyleMuted, "(nothing)"))
		case verb == types.VerbLeave && len(paths) > r.leaveLimit:
			fmt.Fprintf(&b, "%s%s\n", indent+indent, r.style(ui.StyleCount, fmt.Sprintf("(%d items)", len(paths))))
		default:
			for _, path := range paths {
				fmt.Fprintf(&b, "%s%s\n", indent+indent, path)
			}
		}
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *textRenderer) RenderSummary(s types.Summary) error {
	var b strings.Builder

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, r.style(ui.StyleHeader, "Summary:"))
	for _, res := range s.Results {
		line := fmt.Sprintf("%s%-10s %s", indent, res.Outcome, res.Current)
		if res.DryRun {
			line += " " + r.style(ui.StyleMuted, "(dry run)")
		}
		if res.Error != "" {
			line += ": " + r.style(ui.StyleError, res.Error)
		}
		fmt.Fprintln(&b, line)
	}

	var counts []string
	for _, o := range types.Outcomes {
		if n := s.Count(o); n > 0 {
			counts = append(counts, fmt.Sprintf("%d %s", n, o))
		}
	}
	if len(counts) > 0 {
		fmt.Fprintf(&b, "%s%s\n", indent, r.style(ui.StyleCount, strings.Join(counts, ", ")))
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}
