package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/presrag"
	"github.com/fwojciec/presrag/bloom"
	"github.com/fwojciec/presrag/chromem"
	"github.com/fwojciec/presrag/docx"
	"github.com/fwojciec/presrag/fs"
	"github.com/fwojciec/presrag/gemini"
	"github.com/fwojciec/presrag/goquery"
	"github.com/fwojciec/presrag/rag"
	"github.com/fwojciec/presrag/readability"
	"github.com/fwojciec/presrag/rod"
	"github.com/fwojciec/presrag/scrape"
	presslog "github.com/fwojciec/presrag/slog"
	"github.com/fwojciec/presrag/sqlite"
	"github.com/fwojciec/presrag/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	// A .env file is optional.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Manifest database path. Set before calling Run().
	DBPath string

	// SQLite database used by the scrape manifest.
	DB *sqlite.DB

	// Manifest service for end-to-end testing.
	Entries presrag.ScrapeStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("presrag"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'presrag --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	if cmd == "ask" {
		if err := m.wireAsk(ctx, cli, deps, logger, stderr); err != nil {
			return err
		}
	}

	if cmd == "scrape" || cmd == "docs" {
		if path := dbFlag(cmd, cli); path != "" {
			m.DBPath = path
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set PRESRAG_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.Entries = sqlite.NewScrapeService(m.DB)
		deps.DB = m.DB
		deps.Entries = m.Entries
	}

	if cmd == "scrape" {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		deps.Scraper = &scrape.Scraper{
			Fetcher:  rod.NewLoggingFetcher(fetcher, logger),
			Listing:  goquery.NewListingExtractor(),
			Docs:     goquery.NewDocumentExtractor(),
			Fallback: scrape.FallbackChain{trafilatura.NewExtractor(), readability.NewExtractor()},
			Writer:   fs.NewWriter(cli.Scrape.Out),
			Store:    m.Entries,
			Seen:     bloom.NewFilter(seenFilterSize, seenFilterFPRate),
			Limiter:  scrape.NewDomainLimiter(1.0),
			MaxPages: cli.Scrape.MaxPages,
			Logger:   logger,
		}
	}

	return kongCtx.Run(deps)
}

// wireAsk builds the question answering pipeline from the ask command's
// flags.
func (m *Main) wireAsk(ctx context.Context, cli *CLI, deps *Dependencies, logger *slog.Logger, stderr io.Writer) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	config := rag.Config{
		Loader:       fs.NewLoader(docx.NewExtractor()),
		Generator:    gemini.NewGenerator(client, cli.Ask.Model),
		ChunkSize:    cli.Ask.ChunkSize,
		ChunkOverlap: cli.Ask.ChunkOverlap,
		TopK:         cli.Ask.TopK,
		Logger:       logger,
	}

	if !cli.Ask.NoIndex {
		index, err := chromem.NewIndex()
		if err != nil {
			return fmt.Errorf("failed to create vector index: %w", err)
		}
		config.Index = index
		config.Embedder = presslog.NewLoggingEmbedder(
			gemini.NewEmbedder(client, gemini.DefaultEmbeddingModel), logger)
	}

	if counter, err := gemini.NewTokenCounter(tokenizerModel); err == nil {
		config.TokenCounter = counter
	}

	pipeline, err := rag.NewPipeline(config)
	if err != nil {
		return err
	}

	deps.Pipeline = &loggingPipeline{
		Pipeline: pipeline,
		answerer: presslog.NewLoggingAnswerer(pipeline, logger),
	}
	return nil
}

// loggingPipeline routes Answer through the logging decorator while keeping
// Build on the underlying pipeline.
type loggingPipeline struct {
	*rag.Pipeline
	answerer presrag.Answerer
}

func (p *loggingPipeline) Answer(ctx context.Context, question string) (string, error) {
	return p.answerer.Answer(ctx, question)
}

// dbFlag returns the --db flag value for the command, if any.
func dbFlag(cmd string, cli *CLI) string {
	switch cmd {
	case "scrape":
		return cli.Scrape.DB
	case "docs":
		return cli.Docs.DB
	}
	return ""
}

// tokenizerModel is used for local token counting of the loaded corpus.
const tokenizerModel = "gemini-2.5-flash"

// Bloom filter sizing for within-run URL deduplication.
const (
	seenFilterSize   = 100000
	seenFilterFPRate = 0.001
)

func defaultDBPath() string {
	if path := os.Getenv("PRESRAG_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "presrag.db"
	}
	dir := filepath.Join(home, ".presrag")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "presrag.db")
}
