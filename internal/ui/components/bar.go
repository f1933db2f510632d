package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/enpeak/linglog/internal/ui/theme"
)

// Bar is one labeled row of a horizontal bar chart, scaled against the
// largest value in the chart.
type Bar struct {
	Label     string
	Value     int
	Max       int
	Width     int
	ShowValue bool
}

// NewBar creates a chart row.
func NewBar(label string, value, max, width int) Bar {
	return Bar{
		Label:     label,
		Value:     value,
		Max:       max,
		Width:     width,
		ShowValue: true,
	}
}

// View renders the row.
func (b Bar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(b.Label)

	barWidth := b.Width
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if b.Max > 0 {
		filled = barWidth * b.Value / b.Max
	}
	if b.Value > 0 && filled == 0 {
		filled = 1
	}
	if filled > barWidth {
		filled = barWidth
	}

	bar := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().
			Foreground(theme.Border).
			Render(strings.Repeat("░", barWidth-filled))

	out := label + "  " + bar
	if b.ShowValue {
		out += lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(fmt.Sprintf("  %d", b.Value))
	}
	return out
}

// Dots renders a seven-cell active/inactive strip for the weekly view.
func Dots(active [7]bool) string {
	var sb strings.Builder
	for i, on := range active {
		if i > 0 {
			sb.WriteString(" ")
		}
		if on {
			sb.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("●"))
		} else {
			sb.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
	}
	return sb.String()
}
