package dataset

import (
	"strconv"
	"time"
)

// Column type tags as inferred from raw CSV values.
const (
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeDate   = "date"
	TypeString = "string"
)

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02-Jan-2006",
}

// Frame is an in-memory table: ordered columns plus row-major records.
// Cells hold the raw CSV strings; the empty string is a null.
type Frame struct {
	Columns []string
	Rows    [][]string

	types []string // cached per-column type tags, filled lazily
}

// NewFrame builds a frame from a header row and data rows. Short records
// are padded with nulls so every row has len(columns) cells.
func NewFrame(columns []string, rows [][]string) *Frame {
	for i, row := range rows {
		if len(row) < len(columns) {
			padded := make([]string, len(columns))
			copy(padded, row)
			rows[i] = padded
		}
	}
	return &Frame{Columns: columns, Rows: rows}
}

// Len returns the number of data rows.
func (f *Frame) Len() int {
	return len(f.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (f *Frame) ColumnIndex(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns the raw values of the named column in row order.
func (f *Frame) Column(name string) ([]string, bool) {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	vals := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		vals[i] = row[idx]
	}
	return vals, true
}

// Head returns the first n rows (all rows when n exceeds the frame).
func (f *Frame) Head(n int) [][]string {
	if n > len(f.Rows) {
		n = len(f.Rows)
	}
	if n < 0 {
		n = 0
	}
	return f.Rows[:n]
}

// Types returns the inferred type tag per column, in column order.
// Inference runs once and is cached; nulls do not vote, and a column
// with no non-null values is tagged string.
func (f *Frame) Types() []string {
	if f.types != nil {
		return f.types
	}
	f.types = make([]string, len(f.Columns))
	for i := range f.Columns {
		f.types[i] = f.inferColumn(i)
	}
	return f.types
}

// Type returns the inferred tag for one column ("" if unknown column).
func (f *Frame) Type(name string) string {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return ""
	}
	return f.Types()[idx]
}

// TypeMap returns column name -> inferred type tag.
func (f *Frame) TypeMap() map[string]string {
	types := f.Types()
	m := make(map[string]string, len(f.Columns))
	for i, c := range f.Columns {
		m[c] = types[i]
	}
	return m
}

// NumericColumns returns the names of int/float columns in column order.
func (f *Frame) NumericColumns() []string {
	var cols []string
	types := f.Types()
	for i, c := range f.Columns {
		if types[i] == TypeInt || types[i] == TypeFloat {
			cols = append(cols, c)
		}
	}
	return cols
}

// TextColumns returns the names of string/date columns in column order.
func (f *Frame) TextColumns() []string {
	var cols []string
	types := f.Types()
	for i, c := range f.Columns {
		if types[i] == TypeString || types[i] == TypeDate {
			cols = append(cols, c)
		}
	}
	return cols
}

// NumericColumn returns the non-null values of a column parsed as floats.
// Unparseable cells are skipped, matching how mixed columns degrade.
func (f *Frame) NumericColumn(name string) []float64 {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	vals := make([]float64, 0, len(f.Rows))
	for _, row := range f.Rows {
		cell := row[idx]
		if cell == "" {
			continue
		}
		if v, err := strconv.ParseFloat(cell, 64); err == nil {
			vals = append(vals, v)
		}
	}
	return vals
}

func (f *Frame) inferColumn(idx int) string {
	var hasInt, hasFloat, hasDate, hasString, seen bool
	for _, row := range f.Rows {
		cell := row[idx]
		if cell == "" {
			continue
		}
		seen = true
		switch {
		case fastIsInt(cell):
			hasInt = true
		case fastIsFloat(cell):
			hasFloat = true
		case isDate(cell):
			hasDate = true
		default:
			hasString = true
		}
	}
	switch {
	case !seen:
		return TypeString
	case hasString:
		return TypeString
	case hasDate && !hasInt && !hasFloat:
		return TypeDate
	case hasDate:
		return TypeString
	case hasFloat:
		return TypeFloat
	default:
		return TypeInt
	}
}

// fastIsInt avoids strconv allocation for the common all-digits case.
func fastIsInt(s string) bool {
	if s == "" {
		return false
	}
	start := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}
	for i := start; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func fastIsFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
