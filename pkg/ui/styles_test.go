package ui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThemeDefinesEveryStyle(t *testing.T) {
	theme := DefaultTheme(lipgloss.NewRenderer(&bytes.Buffer{}))

	for _, name := range []string{
		StyleHeader, StylePath, StyleMuted, StyleCount,
		StyleVerbDelete, StyleVerbCreate, StyleVerbAlter, StyleVerbLeave,
		StyleStatus, StyleWarning, StyleError, StylePrompt,
	} {
		assert.True(t, theme.Has(name), name)
	}
}

func TestLoadTheme(t *testing.T) {
	data := []byte(`
colors:
  red:
    light: "#FF0000"
    dark: "#AA0000"
styles:
  Loud:
    bold: true
    foreground: red
  Ghost:
    foreground: nosuchcolor
`)
	theme, err := LoadTheme(lipgloss.NewRenderer(&bytes.Buffer{}), data)
	require.NoError(t, err)

	assert.True(t, theme.Get("Loud").GetBold())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#AA0000"}, theme.Get("Loud").GetForeground())
	assert.Equal(t, lipgloss.NoColor{}, theme.Get("Ghost").GetForeground())

	// Missing styles fall back to a plain style
	assert.False(t, theme.Has("Nope"))
	assert.Equal(t, "x", theme.Get("Nope").Render("x"))
}

func TestLoadThemeRejectsBadYAML(t *testing.T) {
	_, err := LoadTheme(lipgloss.NewRenderer(&bytes.Buffer{}), []byte("styles: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse styles data")
}
