package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/ui/theme"
)

var bannerRows = []string{
	"  ███  █   █   ██   ███   █████  █     ████   ██   ███   █   █",
	" █     ██ ██  █  █  █  █    █    █     █     █  █  █  █  ██  █",
	"  ██   █ █ █  ████  ███     █    █     ███   ████  ███   █ █ █",
	"    █  █   █  █  █  █ █     █    █     █     █  █  █ █   █  ██",
	" ███   █   █  █  █  █  █    █    ████  ████  █  █  █  █  █   █",
}

const bannerCompact = "S M A R T L E A R N"

var bookRows = []string{
	"   ___________   ___________",
	"  /           \\ /           \\",
	" |  ? + x = 7  |  H₂O  ⚛    |",
	" |  E = mc²    |  1492  ✎   |",
	" |  ∫ f(x) dx  |  \"to be\"   |",
	"  \\___________/ \\___________/",
}

// RenderBanner draws the block-letter name, or spaced capitals when the
// terminal is narrower than the block letters.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if width < lipgloss.Width(bannerRows[0]) {
		return style.Render(bannerCompact)
	}
	return style.Render(strings.Join(bannerRows, "\n"))
}

// renderBook draws the open textbook. Once sparkling, two glints alternate
// beside the pages on every frame.
func renderBook(sparkling bool, frame int) string {
	style := lipgloss.NewStyle().Foreground(theme.Secondary)
	rows := make([]string, len(bookRows))
	for i, r := range bookRows {
		rows[i] = style.Render(r)
	}
	if sparkling {
		on, off := "✦", "·"
		if frame%2 == 1 {
			on, off = off, on
		}
		left := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(on)
		right := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(off)
		rows[0] = left + "  " + rows[0]
		rows[2] = right + "  " + rows[2] + "  " + left
	}
	return strings.Join(rows, "\n")
}
