package main

import (
	"context"
	"io"

	"github.com/hkwon/pagesum"
	"github.com/hkwon/pagesum/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Runs      pagesum.RunService
	Documents pagesum.DocumentService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run    RunCmd    `cmd:"" help:"Fetch, summarize, and keyword-extract a list of URLs"`
	List   ListCmd   `cmd:"" help:"List saved runs"`
	Show   ShowCmd   `cmd:"" help:"Show the documents of a saved run"`
	Export ExportCmd `cmd:"" help:"Export a saved run as CSV"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved run and its documents"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	URLFile   string  `arg:"" help:"Newline-separated URL list, '-' for stdin (blank lines and # comments ignored)"`
	Sentences int     `short:"s" default:"3" help:"Summary sentence count (1-8)"`
	TopK      int     `short:"k" default:"5" help:"Keyword count per document (3-15)"`
	MaxChars  int     `default:"300" help:"Per-sentence character budget, 0 disables truncation"`
	CSV       string  `help:"Also write results to a CSV file at this path"`
	Save      bool    `help:"Persist the run and its documents to the database"`
	Generic   bool    `help:"Fall back to a generic extractor when wiki extraction yields nothing"`
	Timeout   int     `default:"12" help:"Per-request timeout in seconds"`
	RPS       float64 `default:"0" help:"Per-host request rate limit, 0 disables pacing"`
	Verbose   bool    `short:"v" help:"Log fetch and extraction details to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	RunID string `arg:"" help:"Run ID (see 'pagesum list')"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	RunID string `arg:"" help:"Run ID (see 'pagesum list')"`
	CSV   string `default:"results.csv" help:"Output CSV path"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	RunID string `arg:"" help:"Run ID (see 'pagesum list')"`
	Force bool   `help:"Confirm deletion"`
}
