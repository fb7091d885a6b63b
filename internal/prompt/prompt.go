package prompt

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// Survey asks single-choice questions on the terminal. It satisfies the
// scaffold.Chooser interface; tests substitute a canned chooser instead.
type Survey struct{}

// Choose presents a select list and returns the picked option.
func (Survey) Choose(message string, options []string) (string, error) {
	var choice string
	q := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(q, &choice); err != nil {
		return "", fmt.Errorf("reading selection: %w", err)
	}
	return choice, nil
}
