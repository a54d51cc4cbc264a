// internal/fastaout/fasta.go
package fastaout

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultLineWidth is the conventional FASTA wrap width.
const DefaultLineWidth = 60

// ErrLineWidth reports a non-positive wrap width.
var ErrLineWidth = errors.New("line width must be positive")

// Format renders one FASTA record: ">"+header, then the sequence broken
// into width-sized lines (the last may be shorter). No newline follows the
// last content line.
func Format(header, seq string, width int) (string, error) {
	if width <= 0 {
		return "", fmt.Errorf("%w: %d", ErrLineWidth, width)
	}
	var b strings.Builder
	b.Grow(len(header) + len(seq) + len(seq)/width + 2)
	b.WriteByte('>')
	b.WriteString(header)
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		b.WriteByte('\n')
		b.WriteString(seq[i:end])
	}
	return b.String(), nil
}

// WriteRecord writes one formatted record to w followed by a newline, the
// record separator when several matches are emitted in a row.
func WriteRecord(w io.Writer, header, seq string, width int) error {
	rec, err := Format(header, seq, width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, rec)
	return err
}
