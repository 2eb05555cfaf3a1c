package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/ui/theme"
)

// MenuItem is one selectable line. Detail is shown dimmed after the label.
type MenuItem struct {
	Label    string
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list with a cursor that skips disabled items and
// wraps at both ends.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.Move(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// Move steps the cursor by delta (±1) to the next enabled item. The
// cursor stays put when no other item is enabled.
func (m *Menu) Move(delta int) {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((m.Selected+delta*step)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and runs the selected item's action on Enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Move(-1)
	case "down", "j":
		m.Move(1)
	case "enter":
		item := m.Items[m.Selected]
		if item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}
	return m, nil
}

func (m Menu) View() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	normal := lipgloss.NewStyle().Foreground(theme.Text)
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString(dim.Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(active.Render("  ▸ " + item.Label))
		default:
			b.WriteString(normal.Render("    " + item.Label))
		}
		if item.Detail != "" && !item.Disabled {
			b.WriteString("  " + dim.Render(item.Detail))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
