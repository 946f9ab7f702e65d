package xlsx2md

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Cell is a single grid value: either text or empty. The zero value is
// empty.
type Cell struct {
	text  string
	valid bool
}

// Text returns a cell holding s. Blank text is still substituted with the
// empty-cell marker when rendered.
func Text(s string) Cell { return Cell{text: s, valid: true} }

// Empty returns an empty cell.
func Empty() Cell { return Cell{} }

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return !c.valid }

// String returns the cell text, "" for an empty cell.
func (c Cell) String() string { return c.text }

// ValueOf converts a scalar read from a data source into a Cell. Nil values
// and nil pointers become Empty; everything else is formatted as display
// text.
func ValueOf(v any) Cell {
	switch x := v.(type) {
	case nil:
		return Empty()
	case Cell:
		return x
	case string:
		return Text(x)
	case []byte:
		return Text(string(x))
	case bool:
		return Text(strconv.FormatBool(x))
	case int:
		return Text(strconv.Itoa(x))
	case int8, int16, int32, int64:
		return Text(strconv.FormatInt(reflect.ValueOf(x).Int(), 10))
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return Text(strconv.FormatUint(reflect.ValueOf(x).Uint(), 10))
	case float32:
		return Text(strconv.FormatFloat(float64(x), 'f', -1, 32))
	case float64:
		return Text(strconv.FormatFloat(x, 'f', -1, 64))
	case time.Time:
		return Text(formatTime(x))
	case fmt.Stringer:
		if isNilPointer(v) {
			return Empty()
		}
		return Text(x.String())
	case error:
		if isNilPointer(v) {
			return Empty()
		}
		return Text(x.Error())
	}
	if isNilPointer(v) {
		return Empty()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return ValueOf(rv.Elem().Interface())
	}
	return Text(fmt.Sprint(v))
}

// ValuesOf converts a row of raw values with ValueOf.
func ValuesOf(values ...any) []Cell {
	row := make([]Cell, len(values))
	for i, v := range values {
		row[i] = ValueOf(v)
	}
	return row
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.DateTime)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Rower provides row data for GridOf.
type Rower interface {
	Row() []string
}

// Headed provides the header row for GridOf.
// Without it, the first item's row is used as the header.
type Headed interface {
	Header() []string
}

// GridOf builds a grid from items. When the first item implements Headed
// its Header becomes row 0.
func GridOf[T Rower](items ...T) [][]Cell {
	if len(items) == 0 {
		return nil
	}
	var grid [][]Cell
	if h, ok := any(items[0]).(Headed); ok {
		grid = append(grid, textRow(h.Header()))
	}
	for _, item := range items {
		grid = append(grid, textRow(item.Row()))
	}
	return grid
}

func textRow(values []string) []Cell {
	row := make([]Cell, len(values))
	for i, s := range values {
		row[i] = Text(s)
	}
	return row
}
