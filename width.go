package xlsx2md

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cond measures cells independently of the host locale so identical input
// always renders to identical bytes.
var cond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

func displayWidth(s string) int {
	return cond.StringWidth(s)
}

func truncate(s string, width int) string {
	if displayWidth(s) <= width {
		return s
	}
	return cond.Truncate(s, width, "")
}

// columnWidths returns the widest cell of every column, raised to
// floor(column) when that is larger.
func columnWidths(rows [][]string, floor func(col int) int) []int {
	widths := make([]int, len(rows[0]))
	for i := range widths {
		if floor != nil {
			widths[i] = floor(i)
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	for i, a := range extended {
		if a != AlignCenter && a != AlignRight {
			extended[i] = AlignLeft
		}
	}
	return extended
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - displayWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

func padRow(cells []string, widths []int, aligns []Alignment) []string {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	return padded
}

func totalWidth(widths []int, sepWidth int) int {
	n := 0
	for _, w := range widths {
		n += w
	}
	if len(widths) > 1 {
		n += sepWidth * (len(widths) - 1)
	}
	return n
}
