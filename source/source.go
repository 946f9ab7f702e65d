// Package source reads delimited text and spreadsheet files into grids of
// [xlsx2md.Cell] for rendering.
//
// [Open] picks a reader from the file extension. [ReadCSV] and [ReadXLSX]
// can be used directly on any reader. The first row of every grid is
// whatever the file holds first; no header detection or type inference is
// done.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bjaus/xlsx2md"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedSource = errors.New("unsupported source")
	ErrNoSheets          = errors.New("no sheets found in workbook")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrUnknownEncoding   = errors.New("unknown encoding")
)

// Kind identifies a source file format.
type Kind string

const (
	KindCSV  Kind = "csv"
	KindXLSX Kind = "xlsx"
)

// Options configures Open.
type Options struct {
	// Sheet names the worksheet to read from a workbook. Empty selects the
	// active sheet.
	Sheet string
	// CSV configures delimited text files.
	CSV CSVOptions
}

// KindOf returns the source kind for path based on its extension.
func KindOf(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return KindCSV, nil
	case ".xlsx", ".xlsm":
		return KindXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSource, path)
	}
}

// Open reads the file at path into a grid.
func Open(path string, opts Options) ([][]xlsx2md.Cell, error) {
	kind, err := KindOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch kind {
	case KindXLSX:
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		return ReadXLSX(f, info.Size(), opts.Sheet)
	default:
		csvOpts := opts.CSV
		if csvOpts.Delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
			csvOpts.Delimiter = '\t'
		}
		return ReadCSV(f, csvOpts)
	}
}

// Sheets lists the worksheets of the workbook at path.
func Sheets(path string) ([]Sheet, error) {
	kind, err := KindOf(path)
	if err != nil {
		return nil, err
	}
	if kind != KindXLSX {
		return nil, fmt.Errorf("%w: %q is not a workbook", ErrUnsupportedSource, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return SheetInfo(f, info.Size())
}

func columnCount(grid [][]xlsx2md.Cell) int {
	n := 0
	for _, row := range grid {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}
