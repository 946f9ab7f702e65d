package xlsx2md

import "strings"

const gridMinWidth = 3

// renderGrid renders a boxed table in the pandoc grid-table layout. The
// header is closed by an "=" rule and every data row by its own "-" rule.
func renderGrid(rows [][]string, aligns []Alignment) []string {
	widths := columnWidths(rows, func(int) int { return gridMinWidth })

	border := hLine(widths, "-")
	lines := make([]string, 0, 3+2*(len(rows)-1))
	lines = append(lines, border)
	lines = append(lines, pipeRow(padRow(rows[0], widths, aligns)))
	lines = append(lines, hLine(widths, "="))
	for _, row := range rows[1:] {
		lines = append(lines, pipeRow(padRow(row, widths, aligns)))
		lines = append(lines, border)
	}
	return lines
}

// hLine draws a border with a "+" at every column boundary. Each column
// spans its width plus the two padding spaces of a content line.
func hLine(widths []int, fill string) string {
	var sb strings.Builder
	sb.WriteString("+")
	for _, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		sb.WriteString("+")
	}
	return sb.String()
}
