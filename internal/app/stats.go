// internal/app/stats.go
package app

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"gffx/internal/gff"
	"gffx/internal/summary"
)

type cmdStats struct {
	path        string
	featureType string
}

func (c cmdStats) run(ctx context.Context, out io.Writer, logger *log.Logger) int {
	fh, err := os.Open(c.path)
	if err != nil {
		logger.Error("open input", "err", err)
		return exitRuntime
	}
	defer fh.Close()

	// Type-only filter: the attribute column is never inspected.
	features, _, err := gff.ScanContext(ctx, fh, gff.Filter{Type: c.featureType})
	if err != nil {
		logger.Error("parse input", "file", c.path, "err", err)
		return exitRuntime
	}

	s, err := summary.Compute(features)
	if err != nil {
		logger.Error("compute summary", "err", err)
		return exitRuntime
	}
	if err := s.WriteText(out, c.featureType); err != nil {
		logger.Error("write summary", "err", err)
		return exitRuntime
	}
	return exitOK
}
