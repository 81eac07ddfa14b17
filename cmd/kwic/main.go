package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/kwic"
	"github.com/fwojciec/kwic/bloom"
	"github.com/fwojciec/kwic/fs"
	"github.com/fwojciec/kwic/lru"
	"github.com/fwojciec/kwic/search"
	kwicslog "github.com/fwojciec/kwic/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Loader reads documents. Set before calling Run() to replace the filesystem.
	Loader kwic.DocumentLoader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Loader: fs.NewDocumentLoader(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kwic"),
		kong.Description("Keyword-in-context search over a text file."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kwic --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Open = func(ctx context.Context, path string) *Session {
		return m.open(ctx, path, cli, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// open loads the document at path and stacks the searcher decorators on top
// of it. Load failures are logged and produce a session over an empty document.
func (m *Main) open(ctx context.Context, path string, cli *CLI, logger *slog.Logger) *Session {
	var loader kwic.DocumentLoader = m.Loader
	if cli.Verbose {
		loader = kwicslog.NewLoggingDocumentLoader(loader, logger)
	}

	s := search.Load(ctx, loader, path, logger)
	doc := s.Document()

	prefilter := bloom.NewSearcher(s, doc.Content)
	logger.Debug("trigram index",
		"path", path,
		"grams", prefilter.Grams(),
	)

	cache := lru.NewSearcher(prefilter, cli.CacheSize)
	var searcher kwic.Searcher = cache
	if cli.Verbose {
		searcher = kwicslog.NewLoggingSearcher(searcher, logger)
	}

	return &Session{
		Document:  doc,
		WordCount: s.WordCount(),
		Searcher:  searcher,
		Cache:     cache,
		Logger:    logger,
	}
}
