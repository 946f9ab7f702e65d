package source

import (
	"fmt"
	"io"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/bjaus/xlsx2md"
)

// Sheet describes one worksheet of a workbook.
type Sheet struct {
	Name    string `yaml:"name"`
	Index   int    `yaml:"index"`
	Active  bool   `yaml:"active"`
	Rows    int    `yaml:"rows"`
	Columns int    `yaml:"columns"`
}

// ReadXLSX reads one worksheet into a grid. An empty sheet name selects the
// workbook's active sheet, or the first sheet when no active sheet is
// recorded. Every row is padded to the widest row of the sheet.
func ReadXLSX(r io.ReaderAt, size int64, sheet string) ([][]xlsx2md.Cell, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	idx := activeSheet(wb, len(sheets))
	if sheet != "" {
		idx = -1
		for i, s := range sheets {
			if s.Name() == sheet {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
		}
	}
	return sheetGrid(sheets[idx]), nil
}

// SheetInfo lists the worksheets of a workbook. A workbook without sheets
// yields an empty list.
func SheetInfo(r io.ReaderAt, size int64) ([]Sheet, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	sheets := wb.Sheets()
	active := activeSheet(wb, len(sheets))
	out := make([]Sheet, len(sheets))
	for i, s := range sheets {
		grid := sheetGrid(s)
		out[i] = Sheet{
			Name:    s.Name(),
			Index:   i,
			Active:  i == active,
			Rows:    len(grid),
			Columns: columnCount(grid),
		}
	}
	return out, nil
}

// activeSheet returns the index of the sheet recorded as active in the first
// workbook view, falling back to the first sheet.
func activeSheet(wb *spreadsheet.Workbook, n int) int {
	x := wb.X()
	if x == nil || x.BookViews == nil || len(x.BookViews.WorkbookView) == 0 {
		return 0
	}
	view := x.BookViews.WorkbookView[0]
	if view == nil || view.ActiveTabAttr == nil {
		return 0
	}
	if i := int(*view.ActiveTabAttr); i < n {
		return i
	}
	return 0
}

// sheetGrid places every cell by its reference, so skipped columns and rows
// come back as empty cells.
func sheetGrid(s spreadsheet.Sheet) [][]xlsx2md.Cell {
	var grid [][]xlsx2md.Cell
	for _, row := range s.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		if rowIdx < len(grid) {
			continue
		}
		for len(grid) < rowIdx {
			grid = append(grid, nil)
		}
		var cells []xlsx2md.Cell
		for _, c := range row.Cells() {
			ref, err := c.Column()
			if err != nil {
				continue
			}
			col := int(reference.ColumnToIndex(ref))
			if col < len(cells) {
				continue
			}
			for len(cells) < col {
				cells = append(cells, xlsx2md.Empty())
			}
			cells = append(cells, cellValue(c))
		}
		grid = append(grid, cells)
	}

	numCols := columnCount(grid)
	for i, row := range grid {
		for len(row) < numCols {
			row = append(row, xlsx2md.Empty())
		}
		grid[i] = row
	}
	return grid
}

func cellValue(c spreadsheet.Cell) xlsx2md.Cell {
	if c.IsEmpty() {
		return xlsx2md.Empty()
	}
	v := c.GetFormattedValue()
	if v == "" {
		return xlsx2md.Empty()
	}
	return xlsx2md.Text(v)
}
