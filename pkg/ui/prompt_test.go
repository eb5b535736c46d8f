package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/carp/pkg/errors"
	"github.com/arthur-debert/carp/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrompter(input string) (*ui.Prompter, *bytes.Buffer) {
	var errOut bytes.Buffer
	c := ui.NewConsole(&bytes.Buffer{}, &errOut, false)
	return ui.NewPrompter(strings.NewReader(input), c), &errOut
}

func TestAskValidAnswer(t *testing.T) {
	p, errOut := newPrompter("b\n")

	answer, err := p.Ask("update a ?", []string{"y", "b", "n", "q"})
	require.NoError(t, err)
	assert.Equal(t, "b", answer)
	assert.Equal(t, "update a ? ", errOut.String())
}

func TestAskRepromptsOnInvalidAnswer(t *testing.T) {
	p, errOut := newPrompter("yes\n\nn\n")

	answer, err := p.Ask("update a ?", []string{"y", "n"})
	require.NoError(t, err)
	assert.Equal(t, "n", answer)
	assert.Equal(t,
		"update a ? You responded 'yes'\nupdate a ? You responded ''\nupdate a ? ",
		errOut.String())
}

func TestAskAnswerWithoutTrailingNewline(t *testing.T) {
	p, _ := newPrompter("y")

	answer, err := p.Ask("?", []string{"y"})
	require.NoError(t, err)
	assert.Equal(t, "y", answer)
}

func TestAskCRLF(t *testing.T) {
	p, _ := newPrompter("q\r\n")

	answer, err := p.Ask("?", []string{"q"})
	require.NoError(t, err)
	assert.Equal(t, "q", answer)
}

func TestAskInputClosed(t *testing.T) {
	for _, input := range []string{"", "bogus\n", "bogus"} {
		p, _ := newPrompter(input)

		_, err := p.Ask("?", []string{"y", "n"})
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInputClosed))
	}
}

func TestAskSequentialQuestionsShareReader(t *testing.T) {
	p, _ := newPrompter("d\nn\n")

	first, err := p.Ask("group?", []string{"d", "n"})
	require.NoError(t, err)
	second, err := p.Ask("group?", []string{"d", "n"})
	require.NoError(t, err)

	assert.Equal(t, []string{"d", "n"}, []string{first, second})
}
