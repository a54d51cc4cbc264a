// internal/app/extract.go
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"gffx/internal/extract"
	"gffx/internal/fastaout"
	"gffx/internal/gff"
)

type cmdExtract struct {
	path        string
	filter      gff.Filter
	width       int
	coords      bool
	noMatchCode int
}

func (c cmdExtract) run(ctx context.Context, out io.Writer, logger *log.Logger) int {
	fh, err := os.Open(c.path)
	if err != nil {
		logger.Error("open input", "err", err)
		return exitRuntime
	}
	defer fh.Close()

	features, seqs, err := gff.ScanContext(ctx, fh, c.filter)
	if err != nil {
		logger.Error("parse input", "file", c.path, "err", err)
		return exitRuntime
	}
	logger.Debug("parsed input", "file", c.path, "matches", len(features), "sequences", len(seqs))

	return emit(out, features, c.filter, c.width, c.coords, c.noMatchCode, logger,
		func(f gff.Feature) (string, error) { return extract.Subsequence(seqs, f) })
}

// emit dispatches over zero/one/many matches and writes one FASTA record
// per match. The no-match and multiple-match notes are user-facing output,
// not diagnostics, so they go to stdout. The first failing feature aborts
// the run; records already written stay written.
func emit(out io.Writer, features []gff.Feature, f gff.Filter, width int, coords bool,
	noMatchCode int, logger *log.Logger, sub func(gff.Feature) (string, error)) int {

	if len(features) == 0 {
		_, _ = fmt.Fprintf(out, "No features found for %s:%s=%s\n", f.Type, f.Key, f.Value)
		return noMatchCode
	}
	if len(features) > 1 {
		_, _ = fmt.Fprintf(out, "Warning: more than one feature found for %s:%s=%s\n", f.Type, f.Key, f.Value)
	}

	header := fmt.Sprintf("%s:%s:%s", f.Type, f.Key, f.Value)
	for _, ft := range features {
		seq, err := sub(ft)
		if err != nil {
			logger.Error("extract feature", "seqid", ft.SeqID, "start", ft.Start, "end", ft.End, "err", err)
			return exitRuntime
		}
		h := header
		if coords {
			h = fmt.Sprintf("%s %s:%d-%d(%s)", header, ft.SeqID, ft.Start, ft.End, ft.Strand)
		}
		if err := fastaout.WriteRecord(out, h, seq, width); err != nil {
			if fastaout.IsBrokenPipe(err) {
				return exitOK
			}
			logger.Error("write record", "err", err)
			return exitRuntime
		}
	}
	return exitOK
}
