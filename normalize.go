package xlsx2md

import (
	"strings"
	"unicode"
)

// normalize resolves every cell to display text. The header length fixes
// the column count: short rows are padded with emptyCell and extra cells are
// dropped. Blank cells become emptyCell, and when maxWidth is positive every
// cell is cut to at most maxWidth columns.
func normalize(grid [][]Cell, emptyCell string, maxWidth int) [][]string {
	numCols := len(grid[0])
	rows := make([][]string, len(grid))
	for i, row := range grid {
		out := make([]string, numCols)
		for j := range out {
			var c Cell
			if j < len(row) {
				c = row[j]
			}
			out[j] = normalizeCell(c, emptyCell, maxWidth)
		}
		rows[i] = out
	}
	return rows
}

func normalizeCell(c Cell, emptyCell string, maxWidth int) string {
	s := flatten(c.String())
	if c.IsEmpty() || strings.TrimSpace(s) == "" {
		s = flatten(emptyCell)
	}
	if maxWidth > 0 {
		s = truncate(s, maxWidth)
	}
	return s
}

// flatten keeps a cell on one line: CRLF and every control or line/paragraph
// separator rune becomes a single space.
func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' {
			return ' '
		}
		return r
	}, s)
}
