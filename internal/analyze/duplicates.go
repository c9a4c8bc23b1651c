package analyze

import (
	"strings"

	"github.com/karsk-io/datascribe/internal/dataset"
)

// rowSep joins cells into a row lookup key.
const rowSep = "\x1f"

// CountDuplicates returns how many rows are exact copies of an earlier
// row, so a frame with k identical rows contributes k-1.
func CountDuplicates(f *dataset.Frame) int {
	seen := make(map[string]struct{}, f.Len())
	dups := 0
	for _, row := range f.Rows {
		key := strings.Join(row, rowSep)
		if _, ok := seen[key]; ok {
			dups++
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}
