package wizard

import (
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjourdan1/hashenc/internal/codec"
)

type mockPrompter struct {
	inputs  map[string]string
	confirm bool
	calls   []string
	errAt   string
}

func (m *mockPrompter) Input(label, _ string, _ survey.Validator) (string, error) {
	m.calls = append(m.calls, label)
	if m.errAt == label {
		return "", ErrCancelled
	}
	return m.inputs[label], nil
}

func (m *mockPrompter) Confirm(label string, _ bool) (bool, error) {
	m.calls = append(m.calls, label)
	if m.errAt == label {
		return false, ErrCancelled
	}
	return m.confirm, nil
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Field 1 (1-128)", FieldLabel(0))
	assert.Equal(t, "Field 4 (0-255)", FieldLabel(3))
}

func TestFieldValidator(t *testing.T) {
	assert.NoError(t, FieldValidator(0)("128"))
	assert.Error(t, FieldValidator(0)("129"))
	assert.NoError(t, FieldValidator(1)("0"))
	assert.Error(t, FieldValidator(2)("abc"))
	assert.Error(t, FieldValidator(3)(256))
}

func TestEncodeWizardRun(t *testing.T) {
	mock := &mockPrompter{
		inputs: map[string]string{
			"Field 1 (1-128)": "100",
			"Field 2 (0-255)": "101",
			"Field 3 (0-255)": "1",
			"Field 4 (0-255)": "5",
		},
		confirm: true,
	}

	input, err := NewEncodeWizard(mock).Run()
	require.NoError(t, err)
	assert.Equal(t, "100#101#1#5", input)
	assert.Equal(t, []string{
		"Field 1 (1-128)",
		"Field 2 (0-255)",
		"Field 3 (0-255)",
		"Field 4 (0-255)",
		"Encode 100#101#1#5?",
	}, mock.calls)

	v, ok := codec.Encode(input)
	require.True(t, ok)
	assert.Equal(t, uint64(1684340997), v)
}

func TestEncodeWizardRun_Declined(t *testing.T) {
	mock := &mockPrompter{inputs: map[string]string{
		"Field 1 (1-128)": "1",
		"Field 2 (0-255)": "0",
		"Field 3 (0-255)": "0",
		"Field 4 (0-255)": "0",
	}}

	_, err := NewEncodeWizard(mock).Run()
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestEncodeWizardRun_Interrupted(t *testing.T) {
	mock := &mockPrompter{errAt: "Field 2 (0-255)", inputs: map[string]string{"Field 1 (1-128)": "1"}}

	_, err := NewEncodeWizard(mock).Run()
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Len(t, mock.calls, 2)
}

func TestEncodeWizardRun_RejectsInvalidAnswer(t *testing.T) {
	mock := &mockPrompter{inputs: map[string]string{"Field 1 (1-128)": "0"}}

	_, err := NewEncodeWizard(mock).Run()
	assert.ErrorIs(t, err, codec.ErrOutOfRange)
	assert.Len(t, mock.calls, 1)
}
