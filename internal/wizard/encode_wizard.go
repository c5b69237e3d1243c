package wizard

import (
	"fmt"

	"github.com/kjourdan1/hashenc/internal/codec"
)

// EncodeWizard assembles one input field by field.
type EncodeWizard struct {
	prompter Prompter
}

// NewEncodeWizard creates a wizard using the given prompter.
func NewEncodeWizard(p Prompter) *EncodeWizard {
	if p == nil {
		p = NewSurveyPrompter()
	}
	return &EncodeWizard{prompter: p}
}

// Run prompts for every field and returns the joined input. Each field is
// checked as it is entered; the assembled input is shown for confirmation.
func (w *EncodeWizard) Run() (string, error) {
	fields := make([]string, codec.FieldCount)
	for i := range fields {
		lo, _ := codec.FieldRange(i)
		v, err := w.prompter.Input(FieldLabel(i), fmt.Sprint(lo), FieldValidator(i))
		if err != nil {
			return "", err
		}
		// The prompter may not enforce the validator.
		if err := codec.ValidateField(i, v); err != nil {
			return "", err
		}
		fields[i] = v
	}

	input := codec.Join(fields...)
	ok, err := w.prompter.Confirm(fmt.Sprintf("Encode %s?", input), true)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrCancelled
	}
	return input, nil
}
