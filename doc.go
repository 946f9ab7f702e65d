// Package xlsx2md renders tabular data as text tables.
//
// The input is a grid of cells whose first row is the header. [Render] and
// [RenderCells] return the table as a string; [Write] and [WriteSeq] write it
// to an [io.Writer]. Reading spreadsheets and delimited text lives in the
// source subpackage; this package only deals with text.
//
// # Styles
//
// Three styles are supported, selected with [Options].Style:
//
//   - [Default] — GitHub-flavored Markdown pipe table with alignment markers
//   - [Minimal] — space-separated columns under a dash rule, no pipes
//   - [Grid] — boxed grid table with "+" corners and an "=" header rule
//
// Use [ParseStyle] to convert a CLI flag into a [Style]:
//
//	st, err := xlsx2md.ParseStyle(flagValue)
//
// # Cells
//
// A [Cell] is either text or empty. [ValueOf] converts scalars read from a
// source (numbers, times, nil) into cells. Empty and blank cells render as
// [Options].EmptyCell. When [Options].MaxWidth is positive, every cell is cut
// to that many columns before column widths are computed. Line breaks and
// other control characters become spaces. In the Default style a "|" in
// content is written as `\|` so it cannot start a new column.
//
// # Widths
//
// Widths are measured in terminal display columns, so East Asian wide
// characters count as two. Every line of a table has the same width, and in
// the Default and Grid styles every "|" and "+" column boundary sits at the
// same offset on every line.
//
// # Errors
//
// An unknown style is the only error the renderer produces. It wraps
// [ErrInvalidArgument]. Ragged rows, empty input and unknown alignments are
// handled by padding and fallback instead.
package xlsx2md
