// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/charmbracelet/log"

	"gffx/internal/fastaout"
	"gffx/internal/gff"
	"gffx/internal/version"
)

// Exit codes. No-match is configurable per command and defaults to 0.
const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

// RunContext parses argv, dispatches the selected command and returns the
// process exit code. All output goes through stdout/stderr so tests can run
// the whole tool in-process.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	app := kingpin.New("gffx", "Export annotated feature sequences from hybrid GFF3+FASTA files.")
	app.Version(version.Version)
	app.HelpFlag.Short('h')
	app.UsageWriter(outw)
	app.ErrorWriter(stderr)
	terminated := false
	app.Terminate(func(int) { terminated = true })

	verbose := app.Flag("verbose", "Enable debug logging.").Bool()
	quiet := app.Flag("quiet", "Suppress warnings.").Short('q').Bool()

	extractApp := app.Command("extract", "Extract one feature's sequence as FASTA.")
	extractFile := extractApp.Arg("gff3_file", "hybrid GFF3+FASTA file").Required().String()
	extractType := extractApp.Arg("feature_type", "feature type (e.g. gene)").Required().String()
	extractKey := extractApp.Arg("attribute_key", "attribute key (e.g. ID)").Required().String()
	extractValue := extractApp.Arg("attribute_value", "attribute value (e.g. YAL069W)").Required().String()
	extractWidth := extractApp.Flag("width", "FASTA line width.").Default("60").Int()
	extractCoords := extractApp.Flag("coords", "Append seqid:start-end(strand) to each header.").Bool()
	extractNoMatch := extractApp.Flag("no-match-exit-code", "Exit code when no feature matches.").Default("0").Int()

	indexApp := app.Command("index", "Build a persistent feature index from a hybrid GFF3+FASTA file.")
	indexFile := indexApp.Arg("gff3_file", "hybrid GFF3+FASTA file").Required().String()
	indexDB := indexApp.Arg("db_file", "index file to create").Required().String()

	lookupApp := app.Command("lookup", "Extract a feature's sequence from a prebuilt index.")
	lookupDB := lookupApp.Arg("db_file", "index built by 'gffx index'").Required().String()
	lookupType := lookupApp.Arg("feature_type", "feature type (e.g. gene)").Required().String()
	lookupKey := lookupApp.Arg("attribute_key", "attribute key (e.g. ID)").Required().String()
	lookupValue := lookupApp.Arg("attribute_value", "attribute value (e.g. YAL069W)").Required().String()
	lookupWidth := lookupApp.Flag("width", "FASTA line width.").Default("60").Int()
	lookupCoords := lookupApp.Flag("coords", "Append seqid:start-end(strand) to each header.").Bool()
	lookupNoMatch := lookupApp.Flag("no-match-exit-code", "Exit code when no feature matches.").Default("0").Int()

	statsApp := app.Command("stats", "Report length statistics for all features of a type.")
	statsFile := statsApp.Arg("gff3_file", "hybrid GFF3+FASTA file").Required().String()
	statsType := statsApp.Arg("feature_type", "feature type (e.g. gene)").Required().String()

	command, err := app.Parse(argv)
	if terminated {
		// --help or --version already wrote what the user asked for.
		_ = outw.Flush()
		return exitOK
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := log.New(stderr)
	logger.SetLevel(log.WarnLevel)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if *quiet {
		logger.SetLevel(log.ErrorLevel)
	}

	code := exitUsage
	switch command {
	case extractApp.FullCommand():
		c := cmdExtract{
			path:        *extractFile,
			filter:      gff.Filter{Type: *extractType, Key: *extractKey, Value: *extractValue},
			width:       *extractWidth,
			coords:      *extractCoords,
			noMatchCode: *extractNoMatch,
		}
		code = c.run(ctx, outw, logger)
	case indexApp.FullCommand():
		c := cmdIndex{path: *indexFile, dbPath: *indexDB}
		code = c.run(ctx, outw, logger)
	case lookupApp.FullCommand():
		c := cmdLookup{
			dbPath:      *lookupDB,
			filter:      gff.Filter{Type: *lookupType, Key: *lookupKey, Value: *lookupValue},
			width:       *lookupWidth,
			coords:      *lookupCoords,
			noMatchCode: *lookupNoMatch,
		}
		code = c.run(ctx, outw, logger)
	case statsApp.FullCommand():
		c := cmdStats{path: *statsFile, featureType: *statsType}
		code = c.run(ctx, outw, logger)
	}

	if err := outw.Flush(); fastaout.IsBrokenPipe(err) {
		return exitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitRuntime
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
