package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/ui/theme"
)

// minBarCells keeps a bar visible when the label eats most of the width.
const minBarCells = 4

// ScoreBar is a labeled horizontal bar for a 0-100 score.
type ScoreBar struct {
	Label string
	Score float64
	Width int

	// Fill is the bar color. NewScoreBar sets it from the score band.
	Fill color.Color
}

func NewScoreBar(label string, score float64, width int) ScoreBar {
	return ScoreBar{Label: label, Score: score, Width: width, Fill: theme.ScoreColor(score)}
}

// View renders "label  ██████░░░░  72%" in exactly Width cells.
func (p ScoreBar) View() string {
	var label string
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	pct := fmt.Sprintf("  %3.0f%%", min(max(p.Score, 0), 100))

	cells := max(p.Width-lipgloss.Width(label)-len(pct), minBarCells)
	filled := min(max(int(float64(cells)*p.Score/100+0.5), 0), cells)

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	return label +
		lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", cells-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(pct)
}
