package ui

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Style names known to the embedded theme.
const (
	StyleHeader     = "Header"
	StylePath       = "Path"
	StyleMuted      = "Muted"
	StyleCount      = "Count"
	StyleVerbDelete = "VerbDelete"
	StyleVerbCreate = "VerbCreate"
	StyleVerbAlter  = "VerbAlter"
	StyleVerbLeave  = "VerbLeave"
	StyleStatus     = "Status"
	StyleWarning    = "Warning"
	StyleError      = "Error"
	StylePrompt     = "Prompt"
)

//go:embed styles.yaml
var embeddedStyles []byte

// ColorDef is an adaptive color definition in styles.yaml
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition in styles.yaml
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

type themeFile struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Theme maps semantic style names to lipgloss styles bound to one renderer.
type Theme struct {
	renderer *lipgloss.Renderer
	colors   map[string]lipgloss.AdaptiveColor
	styles   map[string]lipgloss.Style
}

// LoadTheme parses a styles document for renderer r.
func LoadTheme(r *lipgloss.Renderer, data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	t := &Theme{
		renderer: r,
		colors:   make(map[string]lipgloss.AdaptiveColor, len(file.Colors)),
		styles:   make(map[string]lipgloss.Style, len(file.Styles)),
	}
	for name, def := range file.Colors {
		t.colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	for name, def := range file.Styles {
		t.styles[name] = t.buildStyle(def)
	}
	return t, nil
}

// DefaultTheme loads the embedded theme, falling back to unstyled output
// if it cannot be parsed.
func DefaultTheme(r *lipgloss.Renderer) *Theme {
	t, err := LoadTheme(r, embeddedStyles)
	if err != nil {
		return &Theme{
			renderer: r,
			colors:   map[string]lipgloss.AdaptiveColor{},
			styles:   map[string]lipgloss.Style{},
		}
	}
	return t
}

func (t *Theme) buildStyle(def StyleDef) lipgloss.Style {
	style := t.renderer.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	// Unknown color names are ignored
	if color, ok := t.colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := t.colors[def.Background]; ok {
		style = style.Background(color)
	}

	return style
}

// Get returns the named style, or a plain one if the theme lacks it.
func (t *Theme) Get(name string) lipgloss.Style {
	if style, ok := t.styles[name]; ok {
		return style
	}
	return t.renderer.NewStyle()
}

// Has reports whether the theme defines name.
func (t *Theme) Has(name string) bool {
	_, ok := t.styles[name]
	return ok
}
