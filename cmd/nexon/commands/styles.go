package commands

import "github.com/charmbracelet/lipgloss"

var (
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")

	headerStyle  = lipgloss.NewStyle().Foreground(colorIris).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorSlate)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))  // Green
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // Amber

	cellStyle = lipgloss.NewStyle().PaddingRight(2)
)

// renderTable lays out rows in left-aligned columns under a styled header.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		rendered := make([]string, len(cells))
		for i, cell := range cells {
			rendered[i] = cellStyle.Width(widths[i] + 2).Render(style.Render(cell))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, line(headers, headerStyle))
	for _, row := range rows {
		lines = append(lines, line(row, lipgloss.NewStyle()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}
