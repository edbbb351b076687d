package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/muesli/termenv"

	"github.com/badele/ansideco/internal/detect"
	"github.com/badele/ansideco/internal/exporter"
	"github.com/badele/ansideco/internal/importer/ansi"
	"github.com/badele/ansideco/internal/processor"
	"github.com/badele/ansideco/pkg/ansideco"
)

type CLI struct {
	File string `arg:"" optional:"" type:"existingfile" help:"Input file. Reads from stdin (pipe) when omitted."`

	Encoding    string `short:"e" default:"utf8" enum:"utf8,cp437,cp850,iso-8859-1,windows-1252" help:"Input encoding (${enum})."`
	Format      string `short:"f" default:"text" enum:"text,json,segments,table,positions,screen,ansi" help:"Output format (${enum})."`
	Check       bool   `short:"c" help:"Only report whether the input contains control sequences (exit status 1 when it does not)."`
	Stats       bool   `short:"s" help:"Display usage statistics for the recognized sequences."`
	ContentType string `help:"Declared content type, used by --auto."`
	Language    string `help:"Language hint, used by --auto."`
	Auto        bool   `help:"Drop styling when the content type and language suggest it should be off by default."`
	Width       int    `short:"W" default:"80" help:"Screen width for --format=screen."`
	Height      int    `short:"H" default:"25" help:"Screen height for --format=screen."`
	Debug       bool   `short:"d" help:"Enable debug logging on stderr."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("ansideco"),
		kong.Description("Strip ANSI control sequences from captured text and report the styled ranges.\n\nDefault behavior: displays plain text content to stdout."),
		kong.UsageOnError(),
	)

	logger := newLogger(cli.Debug)

	if err := cli.Run(logger, os.Stdout); err != nil {
		if !errors.Is(err, errNoControlSequences) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		kctx.Exit(1)
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// errNoControlSequences makes --check exit with status 1 without printing an error.
var errNoControlSequences = errors.New("no control sequences")

func (cli *CLI) Run(logger *slog.Logger, stdout io.Writer) error {
	data, source, err := cli.readInput()
	if err != nil {
		return err
	}
	logger.Debug("input read", "source", source, "bytes", len(data), "encoding", cli.Encoding)

	utf8Data, err := ansideco.ConvertToUTF8(data, cli.Encoding)
	if err != nil {
		return fmt.Errorf("error converting input: %w", err)
	}
	text := string(utf8Data)

	if cli.Check {
		found := ansi.ContainsControlSequences(text)
		fmt.Fprintln(stdout, found)
		if !found {
			return errNoControlSequences
		}
		return nil
	}

	tokenizer := ansi.NewTokenizer(text)
	segments := tokenizer.Tokenize()
	stats := tokenizer.GetStats()
	logger.Debug("input split",
		"segments", stats.TotalSegments,
		"sgr", stats.SegmentsByKind[ansideco.SegmentSGR],
		"csi", stats.SegmentsByKind[ansideco.SegmentCSI])

	if cli.Stats {
		exporter.DisplayStats(stdout, stats)
		return nil
	}

	if cli.Format == "segments" {
		return exporter.ExportSegmentsJSON(stdout, tokenizer)
	}

	result := processor.ParseSegments(segments)
	logger.Debug("input parsed", "runes", len([]rune(result.Text)), "decorations", len(result.Decorations))

	if cli.Auto {
		meta := detect.TextMetadata(result.Text)
		if !detect.ShouldEnableByDefault(meta, cli.ContentType, cli.Language) {
			logger.Debug("styling disabled by default", "content_type", cli.ContentType, "language", cli.Language)
			result.Decorations = result.Decorations[:0]
		}
	}

	switch cli.Format {
	case "json":
		return exporter.ExportJSON(stdout, result)

	case "table":
		return exporter.ExportDecorationsToTable(result, stdout)

	case "positions":
		return exporter.ExportPositionsJSON(stdout, exporter.Positions(result))

	case "screen":
		screen, err := exporter.NewScreen(cli.Width, cli.Height)
		if err != nil {
			return err
		}
		defer screen.Close()

		screen.Render(result)
		_, err = fmt.Fprintln(stdout, screen.PlainText())
		return err

	case "ansi":
		profile := colorProfile(stdout)
		logger.Debug("ansi export", "profile", profile)
		return exporter.ExportANSI(stdout, result, profile)
	}

	return exporter.ExportPlainText(stdout, result)
}

// colorProfile detects the color support of w when it is a terminal file;
// any other writer gets plain text.
func colorProfile(w io.Writer) termenv.Profile {
	f, ok := w.(*os.File)
	if !ok {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

func (cli *CLI) readInput() ([]byte, string, error) {
	if cli.File != "" {
		data, err := os.ReadFile(cli.File)
		if err != nil {
			return nil, "", fmt.Errorf("error reading file: %w", err)
		}
		return data, cli.File, nil
	}

	// Check if stdin is a pipe or has data
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("error checking stdin: %w", err)
	}

	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, "", fmt.Errorf("no input file and stdin is not a pipe")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("error reading from stdin: %w", err)
	}
	return data, "stdin", nil
}
