package source

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/bjaus/xlsx2md"
)

// CSVOptions configures ReadCSV.
type CSVOptions struct {
	// Delimiter separates fields. Zero detects it from the first line.
	Delimiter rune
	// Encoding is a WHATWG encoding label such as "windows-1252" or
	// "utf-16le". Empty means UTF-8. A leading byte order mark is always
	// honored and stripped.
	Encoding string
}

var candidateDelimiters = []rune{',', ';', '\t', '|'}

const sniffSize = 4096

// ReadCSV reads delimited text into a grid. Records may have different field
// counts; empty fields become empty cells.
func ReadCSV(r io.Reader, opts CSVOptions) ([][]xlsx2md.Cell, error) {
	dec, err := decodeReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReaderSize(dec, 2*sniffSize)

	comma := opts.Delimiter
	if comma == 0 {
		head, err := br.Peek(sniffSize)
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		comma = detectDelimiter(head)
	}

	cr := csv.NewReader(br)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var grid [][]xlsx2md.Cell
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		row := make([]xlsx2md.Cell, len(record))
		for i, field := range record {
			if field != "" {
				row[i] = xlsx2md.Text(field)
			}
		}
		grid = append(grid, row)
	}
	return grid, nil
}

func decodeReader(r io.Reader, label string) (io.Reader, error) {
	enc := unicode.UTF8
	if label != "" {
		e, err := htmlindex.Get(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
		}
		enc = e
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// detectDelimiter picks the candidate that occurs most often on the first
// line, outside double quotes. Comma wins ties and lines without any
// candidate.
func detectDelimiter(head []byte) rune {
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	counts := make(map[rune]int, len(candidateDelimiters))
	quoted := false
	for _, r := range string(head) {
		if r == '"' {
			quoted = !quoted
			continue
		}
		if !quoted {
			counts[r]++
		}
	}
	best := ','
	for _, d := range candidateDelimiters {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}
