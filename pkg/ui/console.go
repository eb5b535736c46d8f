package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Console splits output into the report stream (Out) and the
// status/error stream (Err). Styling is applied only when color is on.
type Console struct {
	out   io.Writer
	err   io.Writer
	color bool
	theme *Theme
}

// NewConsole creates a console writing the report to out and status
// messages to errOut.
func NewConsole(out, errOut io.Writer, color bool) *Console {
	r := lipgloss.NewRenderer(errOut)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{
		out:   out,
		err:   errOut,
		color: color,
		theme: DefaultTheme(r),
	}
}

// Out is the report stream.
func (c *Console) Out() io.Writer { return c.out }

// Err is the status stream.
func (c *Console) Err() io.Writer { return c.err }

// Color reports whether styles are rendered.
func (c *Console) Color() bool { return c.color }

// Style renders text in the named style, or returns it unchanged when
// color is off.
func (c *Console) Style(name, text string) string {
	if !c.color {
		return text
	}
	return c.theme.Get(name).Render(text)
}

// Status writes an informational line to the status stream.
func (c *Console) Status(format string, args ...interface{}) {
	c.line(StyleStatus, "", format, args...)
}

// Warn writes a warning line to the status stream.
func (c *Console) Warn(format string, args ...interface{}) {
	c.line(StyleWarning, "WARNING: ", format, args...)
}

// Error writes an error line to the status stream.
func (c *Console) Error(format string, args ...interface{}) {
	c.line(StyleError, "ERROR: ", format, args...)
}

// Blank writes an empty line to the status stream.
func (c *Console) Blank() {
	_, _ = fmt.Fprintln(c.err)
}

func (c *Console) line(style, prefix, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if prefix != "" {
		msg = c.Style(style, prefix) + msg
	} else {
		msg = c.Style(style, msg)
	}
	_, _ = fmt.Fprintln(c.err, msg)
}
