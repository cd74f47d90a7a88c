package components

import (
	"fmt"

	"github.com/mvanek/projboard/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForProgress returns the bar color for a 0-100 completion
// percentage: cool while early, green once mostly done.
func ColorForProgress(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 100:
		return string(t.Green)
	case pct >= 50:
		return string(t.Accent)
	default:
		return string(t.Cyan)
	}
}

// ProgressBar renders a labeled completion bar for a 0-100 percentage,
// with the rounded percent figure on the right.
func ProgressBar(pct float64, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	barW := width - 5 // room for " NNN%"
	if barW < 4 {
		barW = 4
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForProgress(pct)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForProgress(pct))).Bold(true)

	return bar.ViewAs(pct/100) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}
