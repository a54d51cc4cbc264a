// internal/gff/attributes.go
package gff

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInput reports a line the parser cannot make sense of: an
// attribute token without '=', a non-integer coordinate on a matched line,
// or sequence data before any FASTA header.
var ErrMalformedInput = errors.New("malformed input")

// parseAttributes splits a GFF3 attribute column into key/value pairs.
// Tokens are ';'-separated and split on the first '='; a token without '='
// is an error rather than a silent drop.
func parseAttributes(col string, lineNo int) (map[string]string, error) {
	tokens := strings.Split(col, ";")
	attrs := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		k, v, ok := strings.Cut(tok, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: attribute token %q has no '='", ErrMalformedInput, lineNo, tok)
		}
		attrs[k] = v
	}
	return attrs, nil
}
