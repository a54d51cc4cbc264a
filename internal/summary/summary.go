// internal/summary/summary.go
package summary

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"

	"gffx/internal/gff"
)

// Stats summarizes the lengths and strands of a set of features. Lengths
// are 1-based inclusive spans (End-Start+1).
type Stats struct {
	Count   int
	MinLen  int
	MaxLen  int
	MeanLen float64
	Median  float64
	StdDev  float64
	Plus    int
	Minus   int
	Other   int
}

// Compute aggregates features into Stats. An empty input yields a zero
// Stats with no error.
func Compute(features []gff.Feature) (Stats, error) {
	s := Stats{Count: len(features)}
	if len(features) == 0 {
		return s, nil
	}
	lengths := make([]float64, len(features))
	for i, f := range features {
		l := f.End - f.Start + 1
		lengths[i] = float64(l)
		if i == 0 || l < s.MinLen {
			s.MinLen = l
		}
		if l > s.MaxLen {
			s.MaxLen = l
		}
		switch f.Strand {
		case "+":
			s.Plus++
		case "-":
			s.Minus++
		default:
			s.Other++
		}
	}
	var err error
	if s.MeanLen, err = stats.Mean(lengths); err != nil {
		return s, fmt.Errorf("summary mean: %w", err)
	}
	if s.Median, err = stats.Median(lengths); err != nil {
		return s, fmt.Errorf("summary median: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviation(lengths); err != nil {
		return s, fmt.Errorf("summary stddev: %w", err)
	}
	return s, nil
}

// WriteText prints the report in a small aligned table.
func (s Stats) WriteText(w io.Writer, featureType string) error {
	if s.Count == 0 {
		_, err := fmt.Fprintf(w, "no %s features found\n", featureType)
		return err
	}
	_, err := fmt.Fprintf(w,
		"type\t%s\ncount\t%d\nmin_len\t%d\nmax_len\t%d\nmean_len\t%.2f\nmedian_len\t%.1f\nsd_len\t%.2f\nstrand\t+%d/-%d/.%d\n",
		featureType, s.Count, s.MinLen, s.MaxLen, s.MeanLen, s.Median, s.StdDev, s.Plus, s.Minus, s.Other)
	return err
}
