package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultPeekRows is how many rows Peek returns when not told otherwise.
const DefaultPeekRows = 5

// ErrNotLoaded is returned by accessors that need Load to have run first.
var ErrNotLoaded = errors.New("dataset not loaded")

// Loader reads a CSV file into a Frame and caches it. Load must run
// before Peek or DetectTypes; both are deterministic afterwards since
// they only touch the cached frame.
type Loader struct {
	path  string
	frame *Frame
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the file the loader points at.
func (l *Loader) Path() string {
	return l.path
}

// Load parses the CSV file and caches the resulting frame. Calling it
// again re-reads the file and replaces the cache.
func (l *Loader) Load() (*Frame, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		rows = append(rows, record)
	}

	l.frame = NewFrame(headers, rows)
	return l.frame, nil
}

// Frame returns the cached frame, or ErrNotLoaded before Load.
func (l *Loader) Frame() (*Frame, error) {
	if l.frame == nil {
		return nil, ErrNotLoaded
	}
	return l.frame, nil
}

// Peek returns the first n data rows of the loaded frame. n <= 0 means
// DefaultPeekRows. Fails with ErrNotLoaded before Load.
func (l *Loader) Peek(n int) ([][]string, error) {
	if l.frame == nil {
		return nil, ErrNotLoaded
	}
	if n <= 0 {
		n = DefaultPeekRows
	}
	return l.frame.Head(n), nil
}

// DetectTypes returns the inferred type tag per column of the loaded
// frame. Fails with ErrNotLoaded before Load.
func (l *Loader) DetectTypes() (map[string]string, error) {
	if l.frame == nil {
		return nil, ErrNotLoaded
	}
	return l.frame.TypeMap(), nil
}
