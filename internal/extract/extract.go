// internal/extract/extract.go
package extract

import (
	"errors"
	"fmt"

	"gffx/internal/dna"
	"gffx/internal/gff"
)

var (
	// ErrUnknownSequence reports a feature whose seqid has no entry in the
	// sequence set.
	ErrUnknownSequence = errors.New("unknown sequence id")
	// ErrOutOfRange reports feature coordinates outside the bounds of the
	// looked-up sequence.
	ErrOutOfRange = errors.New("coordinates out of range")
)

// Subsequence looks up f.SeqID and returns the feature's sequence, reverse
// complemented when the feature is on the minus strand.
func Subsequence(seqs gff.SequenceSet, f gff.Feature) (string, error) {
	seq, ok := seqs.Get(f.SeqID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSequence, f.SeqID)
	}
	return Slice(seq, f.Start, f.End, f.Strand)
}

// Slice cuts [start, end] (1-based, inclusive) out of seq and reverse
// complements the result when strand is "-"; any other strand value returns
// the forward slice. Coordinates outside seq are an error, not a clamp.
func Slice(seq []byte, start, end int, strand string) (string, error) {
	if start < 1 || end < start || end > len(seq) {
		return "", fmt.Errorf("%w: %d-%d on sequence of length %d", ErrOutOfRange, start, end, len(seq))
	}
	sub := string(seq[start-1 : end])
	if strand == "-" {
		return dna.ReverseComplement(sub)
	}
	return sub, nil
}
