package dataset

import "strings"

// TrimStrings strips leading and trailing whitespace from the cells of
// the named columns, in place, and returns the frame for chaining.
// Unknown column names are ignored. Cached type tags are reset since
// trimming can change what a cell parses as.
func TrimStrings(f *Frame, cols []string) *Frame {
	for _, name := range cols {
		idx := f.ColumnIndex(name)
		if idx < 0 {
			continue
		}
		for _, row := range f.Rows {
			row[idx] = strings.TrimSpace(row[idx])
		}
	}
	f.types = nil
	return f
}
