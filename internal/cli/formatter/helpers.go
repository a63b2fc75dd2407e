package formatter

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional
// underlined title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(Header(title) + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// Fixed3 formats v with exactly three digits after the decimal point.
func Fixed3(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
