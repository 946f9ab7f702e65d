package xlsx2md

import "strings"

// markerWidth is the narrowest separator cell for an alignment: three dashes
// plus its colons.
func markerWidth(align Alignment) int {
	switch align {
	case AlignCenter:
		return 5
	default:
		return 4
	}
}

func separatorCell(width int, align Alignment) string {
	switch align {
	case AlignRight:
		return strings.Repeat("-", width-1) + ":"
	case AlignCenter:
		return ":" + strings.Repeat("-", width-2) + ":"
	default:
		return ":" + strings.Repeat("-", width-1)
	}
}

// renderDefault renders a GitHub-flavored Markdown pipe table.
func renderDefault(rows [][]string, aligns []Alignment) []string {
	widths := columnWidths(rows, func(col int) int { return markerWidth(aligns[col]) })

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, pipeRow(padRow(rows[0], widths, aligns)))

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = separatorCell(width, aligns[i])
	}
	lines = append(lines, pipeRow(sep))

	for _, row := range rows[1:] {
		lines = append(lines, pipeRow(padRow(row, widths, aligns)))
	}
	return lines
}

func pipeRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

var pipeEscaper = strings.NewReplacer("|", `\|`)

// escapePipes rewrites "|" in cell content as `\|` so it cannot split a
// cell. With a positive maxWidth the raw text is cut further until the
// escaped form fits.
func escapePipes(rows [][]string, maxWidth int) {
	for _, row := range rows {
		for j, s := range row {
			row[j] = escapePipe(s, maxWidth)
		}
	}
}

func escapePipe(s string, maxWidth int) string {
	if !strings.Contains(s, "|") {
		return s
	}
	out := pipeEscaper.Replace(s)
	for w := maxWidth - 1; maxWidth > 0 && w >= 0 && displayWidth(out) > maxWidth; w-- {
		out = pipeEscaper.Replace(truncate(s, w))
	}
	return out
}
