// internal/app/index.go
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"gffx/internal/featdb"
	"gffx/internal/gff"
)

type cmdIndex struct {
	path   string
	dbPath string
}

func (c cmdIndex) run(ctx context.Context, out io.Writer, logger *log.Logger) int {
	fh, err := os.Open(c.path)
	if err != nil {
		logger.Error("open input", "err", err)
		return exitRuntime
	}
	defer fh.Close()

	features, seqs, err := gff.ScanAll(ctx, fh)
	if err != nil {
		logger.Error("parse input", "file", c.path, "err", err)
		return exitRuntime
	}

	db, err := featdb.Create(c.dbPath)
	if err != nil {
		logger.Error("create index", "path", c.dbPath, "err", err)
		return exitRuntime
	}
	defer db.Close()

	if err := db.PutFeatures(features); err != nil {
		logger.Error("store features", "err", err)
		return exitRuntime
	}
	if err := db.PutSequences(seqs); err != nil {
		logger.Error("store sequences", "err", err)
		return exitRuntime
	}

	_, _ = fmt.Fprintf(out, "Indexed %d features and %d sequences into %s\n", len(features), len(seqs), c.dbPath)
	return exitOK
}
