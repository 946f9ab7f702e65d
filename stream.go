package xlsx2md

import (
	"io"
	"iter"
)

// WriteSeq collects rows from seq and writes the rendered table to w. Column
// widths depend on every row, so the sequence is drained before the first
// line is written. The style is validated before seq is consumed.
func WriteSeq(w io.Writer, seq iter.Seq[[]Cell], opts Options) error {
	if _, err := opts.Style.formatter(); err != nil {
		return err
	}
	var grid [][]Cell
	for row := range seq {
		grid = append(grid, row)
	}
	return Write(w, grid, opts)
}

// WriteChan renders rows received from ch until it is closed.
// It is a thin wrapper around [WriteSeq].
func WriteChan(w io.Writer, ch <-chan []Cell, opts Options) error {
	return WriteSeq(w, chanToSeq(ch), opts)
}

func chanToSeq[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
