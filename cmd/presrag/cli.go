package main

import (
	"context"
	"io"

	"github.com/fwojciec/presrag"
	"github.com/fwojciec/presrag/scrape"
	"github.com/fwojciec/presrag/sqlite"
)

// Pipeline builds a question answering pipeline over a corpus folder and
// answers questions against it.
type Pipeline interface {
	Build(ctx context.Context, dir string) error
	Answer(ctx context.Context, question string) (string, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Entries  presrag.ScrapeStore
	Pipeline Pipeline
	Scraper  *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ask    AskCmd    `cmd:"" help:"Answer questions about a folder of documents"`
	Scrape ScrapeCmd `cmd:"" help:"Scrape a presidential document archive"`
	Docs   DocsCmd   `cmd:"" help:"List scraped documents"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Folder       string `arg:"" help:"Folder containing .docx documents"`
	Model        string `default:"gemini-2.5-flash" help:"Generation model"`
	ChunkSize    int    `default:"500" help:"Characters per chunk"`
	ChunkOverlap int    `default:"100" help:"Characters shared between adjacent chunks"`
	TopK         int    `default:"4" help:"Chunks retrieved per question"`
	NoIndex      bool   `help:"Skip the vector index and answer from the full corpus"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL      string `arg:"" help:"Listing page URL to start from"`
	Out      string `default:"presidential_documents" help:"Output directory for .txt files"`
	DB       string `help:"Manifest database path (overrides PRESRAG_DB)"`
	MaxPages int    `help:"Stop after this many listing pages (0 = no limit)"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	DB     string `help:"Manifest database path (overrides PRESRAG_DB)"`
	Limit  int    `help:"Show at most this many entries (0 = all)"`
	Offset int    `help:"Skip this many entries"`
}
