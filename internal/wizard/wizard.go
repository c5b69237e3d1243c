package wizard

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/kjourdan1/hashenc/internal/codec"
)

// ErrCancelled is returned when the user aborts the wizard with Ctrl+C.
var ErrCancelled = terminal.InterruptErr

// Prompter abstracts user interaction for testing.
type Prompter interface {
	Input(label, defaultValue string, validator survey.Validator) (string, error)
	Confirm(label string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter with survey/v2.
type SurveyPrompter struct{}

// NewSurveyPrompter returns a survey-based prompter.
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

func (p *SurveyPrompter) Input(label, defaultValue string, validator survey.Validator) (string, error) {
	var value string
	err := survey.AskOne(&survey.Input{
		Message: label,
		Default: defaultValue,
	}, &value, survey.WithValidator(validator))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (p *SurveyPrompter) Confirm(label string, defaultValue bool) (bool, error) {
	var value bool
	err := survey.AskOne(&survey.Confirm{
		Message: label,
		Default: defaultValue,
	}, &value)
	if err != nil {
		return false, err
	}
	return value, nil
}

// FieldValidator returns a survey validator enforcing the bounds of field i.
func FieldValidator(i int) survey.Validator {
	return func(value interface{}) error {
		return codec.ValidateField(i, fmt.Sprintf("%v", value))
	}
}

// FieldLabel is the prompt shown for field i.
func FieldLabel(i int) string {
	lo, hi := codec.FieldRange(i)
	return fmt.Sprintf("Field %d (%d-%d)", i+1, lo, hi)
}
