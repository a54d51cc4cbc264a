// internal/app/lookup.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"gffx/internal/extract"
	"gffx/internal/featdb"
	"gffx/internal/gff"
)

type cmdLookup struct {
	dbPath      string
	filter      gff.Filter
	width       int
	coords      bool
	noMatchCode int
}

func (c cmdLookup) run(_ context.Context, out io.Writer, logger *log.Logger) int {
	db, err := featdb.Open(c.dbPath)
	if err != nil {
		logger.Error("open index", "err", err)
		return exitRuntime
	}
	defer db.Close()

	features, err := db.Find(c.filter)
	if err != nil {
		logger.Error("query index", "err", err)
		return exitRuntime
	}
	logger.Debug("queried index", "path", c.dbPath, "matches", len(features))

	return emit(out, features, c.filter, c.width, c.coords, c.noMatchCode, logger,
		func(f gff.Feature) (string, error) {
			seq, ok, err := db.Sequence(f.SeqID)
			if err != nil {
				return "", err
			}
			if !ok {
				return "", fmt.Errorf("%w: %q", extract.ErrUnknownSequence, f.SeqID)
			}
			return extract.Slice(seq, f.Start, f.End, f.Strand)
		})
}
