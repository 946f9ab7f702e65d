package xlsx2md

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidArgument = errors.New("invalid argument")
)

// Style represents a table rendering style.
type Style string

const (
	Default Style = "default"
	Minimal Style = "minimal"
	Grid    Style = "grid"
)

var styles = []Style{Default, Minimal, Grid}

// String returns the style name.
func (s Style) String() string { return string(s) }

// Styles returns all supported style names.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle parses a style name. Matching is case-insensitive and ignores
// surrounding white space.
func ParseStyle(s string) (Style, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, st := range styles {
		if string(st) == name {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown style %q", ErrInvalidArgument, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name. Unknown values report "left", which
// is how they render.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment parses a single alignment token: left, center or right, or
// their first letter. The boolean is false for unrecognised tokens, in which
// case AlignLeft is returned.
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return AlignLeft, true
	case "center", "centre", "c":
		return AlignCenter, true
	case "right", "r":
		return AlignRight, true
	default:
		return AlignLeft, false
	}
}

// ParseAlignments parses a list of alignment tokens. It never fails:
// unrecognised tokens fall back to AlignLeft for that column.
func ParseAlignments(tokens []string) []Alignment {
	out := make([]Alignment, len(tokens))
	for i, tok := range tokens {
		out[i], _ = ParseAlignment(tok)
	}
	return out
}

// Options configures a render.
type Options struct {
	// Style selects the formatter. The zero value renders as Default.
	Style Style
	// Align holds per-column alignment. Missing entries are left aligned,
	// extra entries are ignored.
	Align []Alignment
	// EmptyCell replaces empty and blank cells.
	EmptyCell string
	// MaxWidth caps the display width of every cell. Zero or negative
	// means no cap.
	MaxWidth int
}

// formatter turns normalized rows into table lines.
type formatter func(rows [][]string, aligns []Alignment) []string

func (s Style) formatter() (formatter, error) {
	switch s {
	case Default, "":
		return renderDefault, nil
	case Minimal:
		return renderMinimal, nil
	case Grid:
		return renderGrid, nil
	default:
		return nil, fmt.Errorf("%w: unknown style %q", ErrInvalidArgument, s)
	}
}

// Render renders a grid of strings. The first row is the header. It returns
// the table without a trailing newline, or "" for an empty grid.
func Render(grid [][]string, opts Options) (string, error) {
	cells := make([][]Cell, len(grid))
	for i, row := range grid {
		cells[i] = make([]Cell, len(row))
		for j, s := range row {
			cells[i][j] = Text(s)
		}
	}
	return RenderCells(cells, opts)
}

// RenderCells renders a grid of cells. The first row is the header. It
// returns the table without a trailing newline, or "" for an empty grid.
func RenderCells(grid [][]Cell, opts Options) (string, error) {
	lines, err := renderLines(grid, opts)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Write renders grid and writes it to w followed by a newline. Nothing is
// written for an empty grid.
func Write(w io.Writer, grid [][]Cell, opts Options) error {
	lines, err := renderLines(grid, opts)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func renderLines(grid [][]Cell, opts Options) ([]string, error) {
	format, err := opts.Style.formatter()
	if err != nil {
		return nil, err
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, nil
	}
	rows := normalize(grid, opts.EmptyCell, opts.MaxWidth)
	if opts.Style == Default || opts.Style == "" {
		escapePipes(rows, opts.MaxWidth)
	}
	aligns := extendAligns(opts.Align, len(rows[0]))
	return format(rows, aligns), nil
}
