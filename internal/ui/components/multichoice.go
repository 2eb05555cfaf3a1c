package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/ui/theme"
)

// MultiChoice renders one quiz question and tracks the highlighted option.
// Answers are option text, not positions, so a chosen answer survives the
// options being rendered in a different order.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int

	// Chosen is the recorded answer, if any.
	Chosen *string

	// Correct is set once the attempt is graded; it switches the view to
	// review mode.
	Correct string
}

// NewMultiChoice creates a picker with the cursor on the chosen answer,
// or on the first option when nothing has been answered.
func NewMultiChoice(question string, options []string, chosen *string) MultiChoice {
	m := MultiChoice{Question: question, Options: options, Chosen: chosen}
	if chosen != nil {
		for i, o := range options {
			if o == *chosen {
				m.Selected = i
				break
			}
		}
	}
	return m
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the highlight. Choosing is left to the owning screen,
// which records the answer and rebuilds the picker.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Reviewing() {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}

	return m, nil
}

// Highlighted returns the option under the cursor.
func (m MultiChoice) Highlighted() string {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return ""
	}
	return m.Options[m.Selected]
}

// Reviewing reports whether the correct answer is known.
func (m MultiChoice) Reviewing() bool {
	return m.Correct != ""
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		chosen := m.Chosen != nil && *m.Chosen == opt
		prefix := "  "
		if i == m.Selected && !m.Reviewing() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, optionLabel(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Reviewing() && opt == m.Correct:
			style = theme.Correct
			line += "  ✓"
		case m.Reviewing() && chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.Reviewing():
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		case chosen:
			style = theme.Answered
		}
		if chosen && !m.Reviewing() {
			line += "  ●"
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// optionLabel returns A, B, C, ... for option i.
func optionLabel(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("%d", i+1)
}
