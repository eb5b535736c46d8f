package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format is the rendering of the structured report on stdout.
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText from the output's capabilities
	FormatAuto Format = iota
	// FormatTerminal renders styled text
	FormatTerminal
	// FormatText renders plain text
	FormatText
	// FormatJSON renders one JSON document per report
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// Resolve turns FormatAuto into a concrete format for output, and
// downgrades FormatTerminal to FormatText when noColor is set.
func (f Format) Resolve(output *os.File, noColor bool) Format {
	switch f {
	case FormatAuto:
		if noColor {
			return FormatText
		}
		return DetectFormat(output)
	case FormatTerminal:
		if noColor {
			return FormatText
		}
		return FormatTerminal
	default:
		return f
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	if ColorSupported(output) {
		return FormatTerminal
	}
	return FormatText
}

// ColorSupported reports whether styled output should be written to output.
func ColorSupported(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Piped or redirected
	if output == nil || (!isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd())) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}
