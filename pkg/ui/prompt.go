package ui

import (
	"bufio"
	"errors"
	"io"
	"strings"

	carperrors "github.com/arthur-debert/carp/pkg/errors"
	"github.com/arthur-debert/carp/pkg/logging"
)

// Prompter reads single-line operator answers from a closed alphabet.
type Prompter struct {
	in      *bufio.Reader
	console *Console
}

// NewPrompter reads answers from in and writes prompts to the console's
// status stream.
func NewPrompter(in io.Reader, console *Console) *Prompter {
	return &Prompter{in: bufio.NewReader(in), console: console}
}

// Ask shows question and blocks until the operator types one of valid.
// Anything else is echoed back and the question is asked again. When the
// input ends, Ask returns an INPUT_CLOSED error.
func (p *Prompter) Ask(question string, valid []string) (string, error) {
	logger := logging.GetLogger("ui.prompt")

	for {
		_, _ = io.WriteString(p.console.Err(), p.console.Style(StylePrompt, question)+" ")

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", carperrors.Wrap(err, carperrors.ErrInputClosed, "failed to read operator input")
		}
		if errors.Is(err, io.EOF) && line == "" {
			_, _ = io.WriteString(p.console.Err(), "\n")
			return "", carperrors.New(carperrors.ErrInputClosed, "operator input closed")
		}

		answer := strings.TrimRight(line, "\r\n")
		for _, v := range valid {
			if answer == v {
				logger.Debug().Str("question", question).Str("answer", answer).Msg("operator answered")
				return answer, nil
			}
		}

		logger.Debug().Str("answer", answer).Strs("valid", valid).Msg("invalid operator input")
		p.console.Status("You responded '%s'", answer)
	}
}
