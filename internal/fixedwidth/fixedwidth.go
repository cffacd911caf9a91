// Package fixedwidth splits fixed-column-width text records, as used by
// tabulated physical data files.
package fixedwidth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrShortLine indicates a line shorter than the declared columns.
var ErrShortLine = errors.New("fixedwidth: line shorter than column layout")

// Layout describes consecutive column widths in bytes.
type Layout []int

// Total returns the summed width of all columns.
func (l Layout) Total() int {
	n := 0
	for _, w := range l {
		n += w
	}

	return n
}

// Split cuts line into trimmed column strings according to the layout.
// The line may extend beyond the layout; the excess is ignored.
func (l Layout) Split(line string) ([]string, error) {
	if len(line) < l.Total() {
		return nil, fmt.Errorf("%w: %d < %d bytes", ErrShortLine, len(line), l.Total())
	}

	out := make([]string, len(l))
	pos := 0
	for i, w := range l {
		out[i] = strings.TrimSpace(line[pos : pos+w])
		pos += w
	}

	return out, nil
}

// Floats cuts line into columns and parses every column as a float.
func (l Layout) Floats(line string) ([]float64, error) {
	cols, err := l.Split(line)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(cols))
	for i, c := range cols {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, fmt.Errorf("fixedwidth: column %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}
