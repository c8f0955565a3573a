package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
)

// ErrNonInteractive is returned by prompts that need an answer in
// non-interactive mode
var ErrNonInteractive = errors.New("input required but running non-interactively")

// PromptYesNo prompts the user for a yes/no answer.
// In non-interactive mode the default is returned without prompting.
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	if u.nonInteractive {
		return defaultYes, nil
	}

	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptInput prompts the user for a line of text
func (u *UI) PromptInput(prompt, defaultValue string) (string, error) {
	if u.nonInteractive {
		return "", ErrNonInteractive
	}

	var result string
	p := &survey.Input{
		Message: prompt,
		Default: defaultValue,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// maxLineSize bounds a single answer read by a LinePrompter
const maxLineSize = 1024 * 1024

// LinePrompter reads answers line by line from a plain reader, for input that
// is not a terminal. It returns io.EOF once the input is exhausted.
type LinePrompter struct {
	scanner *bufio.Scanner
	output  io.Writer
}

// NewLinePrompter reads answers from r, printing prompts to the UI output
func (u *UI) NewLinePrompter(r io.Reader) *LinePrompter {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &LinePrompter{scanner: scanner, output: u.output}
}

// PromptInput prints prompt and returns the next line without its line ending.
// defaultValue is returned for an empty line when set.
func (p *LinePrompter) PromptInput(prompt, defaultValue string) (string, error) {
	fmt.Fprintf(p.output, "%s ", prompt)

	// Piped answers are not echoed, so end the prompt line here
	ok := p.scanner.Scan()
	fmt.Fprintln(p.output)
	if !ok {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	answer := p.scanner.Text()
	if answer == "" {
		answer = defaultValue
	}
	return answer, nil
}
