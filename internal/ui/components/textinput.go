package components

import (
	"strconv"
	"strings"
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is a focused single-line input. When Accept is set, typed
// characters it rejects are dropped before they reach the field.
type TextInput struct {
	Model  textinput.Model
	Accept func(r rune) bool
}

// NewTextInput returns a focused input holding at most limit characters
// (0 for no limit).
func NewTextInput(placeholder string, limit int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.CharLimit = limit
	m.Focus()
	return TextInput{Model: m}
}

// NewNumberInput is a TextInput that only takes digits.
func NewNumberInput(placeholder string, limit int) TextInput {
	t := NewTextInput(placeholder, limit)
	t.Accept = unicode.IsDigit
	return t
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && t.Accept != nil && k.Text != "" {
		for _, r := range k.Text {
			if !t.Accept(r) {
				return t, nil
			}
		}
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	return t.Model.View()
}

// Value is the input with surrounding space trimmed.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// Int parses the value as a decimal integer.
func (t TextInput) Int() (int, error) {
	return strconv.Atoi(t.Value())
}

// Reset empties the field. Focus is kept.
func (t *TextInput) Reset() {
	t.Model.Reset()
}
