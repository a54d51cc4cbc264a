// internal/dna/rc.go
package dna

import (
	"errors"
	"fmt"
)

// ErrUnsupportedBase reports a character outside the strict DNA alphabet.
var ErrUnsupportedBase = errors.New("unsupported base")

// complement maps each supported nucleotide to its Watson-Crick partner.
// Entries left at zero mark unsupported characters; lowercase, IUPAC
// ambiguity codes and RNA 'U' are rejected on purpose.
var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
}

// ReverseComplement returns the reverse complement of seq over {A,C,G,T}.
// Any other byte yields ErrUnsupportedBase with its position in seq.
func ReverseComplement(seq string) (string, error) {
	n := len(seq)
	if n == 0 {
		return "", nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		c := complement[b]
		if c == 0 {
			return "", fmt.Errorf("%w: %q at position %d", ErrUnsupportedBase, b, n-i)
		}
		out[i] = c
	}
	return string(out), nil
}
