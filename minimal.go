package xlsx2md

import "strings"

// renderMinimal renders space-separated columns with a dash rule under the
// header. Trailing padding is kept so every line has the same width.
func renderMinimal(rows [][]string, aligns []Alignment) []string {
	widths := columnWidths(rows, nil)

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(padRow(rows[0], widths, aligns), " "))
	lines = append(lines, strings.Repeat("-", totalWidth(widths, 1)))
	for _, row := range rows[1:] {
		lines = append(lines, strings.Join(padRow(row, widths, aligns), " "))
	}
	return lines
}
