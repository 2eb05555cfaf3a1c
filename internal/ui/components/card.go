package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/ui/theme"
)

// Content width bounds. Quiz prompts and answer options wrap at the upper
// bound, so lines stay readable on wide terminals.
const (
	minContentWidth = 24
	maxContentWidth = 64

	// framePadding is the frame border plus the gap kept on each side.
	framePadding = 6
)

// ContentWidth returns the width every section of a screen renders at, so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-framePadding, minContentWidth), maxContentWidth)
}

// Frame draws the outer double border and centers content inside it.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card draws a rounded box of content width cw with the given border
// color. A nil accent uses the theme's border color.
func Card(content string, cw int, accent color.Color) string {
	if accent == nil {
		accent = theme.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}
