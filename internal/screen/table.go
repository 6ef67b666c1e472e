package screen

import (
	"fmt"
	"reflect"
	"time"
)

const (
	DateTimeLayout = "02 Jan 2006, 15:04"
	EmptyCell      = "-"
	EmptyTable     = "No data available."
)

// Cell is one rendered table cell. Title holds the untruncated text when it differs.
type Cell struct {
	Text  string
	Title string
	Class string
}

// Column describes one table column. Key is the json name of the row field
// shown by default; Render replaces the default rendering when set.
type Column[T any] struct {
	Header string
	Key    string
	Render func(row T) Cell
}

type Row struct {
	ID    string
	Cells []Cell
}

// Table is the render-ready view of a list.
type Table struct {
	Headers []string
	Rows    []Row
	Empty   string
}

// BuildTable renders items through columns. Every row gets the Edit and
// Delete actions in the template, keyed by Row.ID.
func BuildTable[T interface{ GetID() string }](columns []Column[T], items []T) Table {
	t := Table{Headers: make([]string, len(columns)), Rows: make([]Row, 0, len(items)), Empty: EmptyTable}
	for i, c := range columns {
		t.Headers[i] = c.Header
	}
	for _, item := range items {
		row := Row{ID: item.GetID(), Cells: make([]Cell, len(columns))}
		for i, c := range columns {
			if c.Render != nil {
				row.Cells[i] = c.Render(item)
				continue
			}
			row.Cells[i] = Cell{Text: FormatValue(item, c.Key)}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// FormatValue renders the field named key of row as display text.
func FormatValue(row any, key string) string {
	v, ok := fieldByJSON(row, key)
	if !ok {
		return EmptyCell
	}
	return formatReflect(v)
}

func formatReflect(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return EmptyCell
		}
		v = v.Elem()
	}
	switch val := v.Interface().(type) {
	case time.Time:
		if val.IsZero() {
			return EmptyCell
		}
		return val.Local().Format(DateTimeLayout)
	case string:
		return Fallback(val, EmptyCell)
	default:
		return fmt.Sprint(val)
	}
}

// TruncatedCell renders text cut to maxLength, keeping the full text as the cell title.
func TruncatedCell(text string, maxLength int) Cell {
	text = Fallback(text, EmptyCell)
	short := Truncate(text, maxLength)
	c := Cell{Text: short}
	if short != text {
		c.Title = text
	}
	return c
}
