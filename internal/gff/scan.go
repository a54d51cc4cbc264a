// internal/gff/scan.go
package gff

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fastaMarker flips the parser from annotation mode to sequence mode.
const fastaMarker = "##FASTA"

// Scan reads a hybrid GFF3+FASTA stream once and returns the annotation
// lines matching f, in file order, together with the full sequence set.
func Scan(r io.Reader, f Filter) ([]Feature, SequenceSet, error) {
	return ScanContext(context.Background(), r, f)
}

// ScanContext is Scan with cancellation at line granularity.
func ScanContext(ctx context.Context, r io.Reader, f Filter) ([]Feature, SequenceSet, error) {
	return scan(ctx, r, &f, false)
}

// ScanAll reads a hybrid GFF3+FASTA stream once and returns every 9-column
// annotation line with its parsed attribute map, plus the sequence set.
// Used to build the feature index.
func ScanAll(ctx context.Context, r io.Reader) ([]Feature, SequenceSet, error) {
	return scan(ctx, r, nil, true)
}

// scan holds the whole parse state (mode, current sequence id) in locals so
// one invocation owns its results exclusively. A nil filter accepts every
// feature. Lines that do not split into exactly 9 tab fields are skipped
// without diagnostic; that is normal control flow for directives and
// unrelated content, not an error.
func scan(ctx context.Context, r io.Reader, f *Filter, keepAttrs bool) ([]Feature, SequenceSet, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		features []Feature
		seqs     = make(SequenceSet)
		inFasta  bool
		curSeqID string
		lineNo   int
	)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())

		if !inFasta && line == fastaMarker {
			inFasta = true
			continue
		}

		if inFasta {
			if line == "" {
				continue
			}
			if line[0] == '>' {
				curSeqID = headerID(line[1:])
				seqs[curSeqID] = nil // last header wins
				continue
			}
			if curSeqID == "" {
				return nil, nil, fmt.Errorf("%w: line %d: sequence data before any FASTA header", ErrMalformedInput, lineNo)
			}
			seqs[curSeqID] = append(seqs[curSeqID], line...)
			continue
		}

		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != numFields {
			continue
		}
		if f != nil && fields[fieldType] != f.Type {
			continue
		}

		// Attributes are only parsed once the type matches, so a broken
		// attribute column on an irrelevant line is never diagnosed. A
		// filter without a key selects on type alone and never touches the
		// attribute column.
		var attrs map[string]string
		if f == nil || f.Key != "" {
			var err error
			attrs, err = parseAttributes(fields[fieldAttributes], lineNo)
			if err != nil {
				return nil, nil, err
			}
			if f != nil && attrs[f.Key] != f.Value {
				continue
			}
		}

		start, err := strconv.Atoi(fields[fieldStart])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: bad start %q", ErrMalformedInput, lineNo, fields[fieldStart])
		}
		end, err := strconv.Atoi(fields[fieldEnd])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: bad end %q", ErrMalformedInput, lineNo, fields[fieldEnd])
		}

		ft := Feature{
			SeqID:  fields[fieldSeqID],
			Type:   fields[fieldType],
			Start:  start,
			End:    end,
			Strand: fields[fieldStrand],
		}
		if keepAttrs {
			ft.Attributes = attrs
		}
		features = append(features, ft)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("gff scan: %w", err)
	}
	return features, seqs, nil
}

// headerID extracts the identifier from a FASTA header: the first
// whitespace-delimited token after '>'.
func headerID(hdr string) string {
	hdr = strings.TrimSpace(hdr)
	if i := strings.IndexAny(hdr, " \t"); i >= 0 {
		return hdr[:i]
	}
	return hdr
}
