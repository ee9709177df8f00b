package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders a simple aligned table with a header separator line.
// Column widths are measured with lipgloss.Width so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2

	pad := func(cell string, width int) string {
		n := width - lipgloss.Width(cell)
		if n < 0 {
			n = 0
		}
		return cell + strings.Repeat(" ", n)
	}

	var b strings.Builder
	for i, h := range headers {
		cell := pad(StyleHeader.Render(h), widths[i])
		if i == cols-1 {
			cell = strings.TrimRight(cell, " ")
		}
		b.WriteString(cell)
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i == cols-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(pad(cell, widths[i]))
			b.WriteString(strings.Repeat(" ", colGap))
		}
		b.WriteString("\n")
	}

	return b.String()
}
