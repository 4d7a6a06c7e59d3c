package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/verdantapp/verdant/internal/ui/theme"
)

// ProgressBar displays a labeled horizontal progress bar with an optional
// "done/total" suffix.
type ProgressBar struct {
	Label     string
	Completed int
	Total     int
	Percent   int // 0-100
	ShowCount bool
	Width     int
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := fmt.Sprintf("  %d%%", p.Percent)
	if p.ShowCount {
		suffix = fmt.Sprintf("  %d/%d (%d%%)", p.Completed, p.Total, p.Percent)
	}

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * p.Percent / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += lipgloss.NewStyle().
		Background(theme.Primary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))
	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(suffix)

	return result
}
