package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hkwon/pagesum"
	"github.com/hkwon/pagesum/batch"
	pagegoquery "github.com/hkwon/pagesum/goquery"
	pagehttp "github.com/hkwon/pagesum/http"
	pageslog "github.com/hkwon/pagesum/slog"
	"github.com/hkwon/pagesum/trafilatura"
)

// aggregateTopN caps the aggregate keyword frequency display.
const aggregateTopN = 15

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	if c.Sentences < pagesum.MinSentences || c.Sentences > pagesum.MaxSentences {
		err := pagesum.Errorf(pagesum.EINVALID, "sentence count must be between %d and %d", pagesum.MinSentences, pagesum.MaxSentences)
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		return err
	}
	if c.TopK < pagesum.MinTopK || c.TopK > pagesum.MaxTopK {
		err := pagesum.Errorf(pagesum.EINVALID, "keyword count must be between %d and %d", pagesum.MinTopK, pagesum.MaxTopK)
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		return err
	}

	urls, err := c.readURLs(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: reading URL list: %v\n", err)
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "warning: no URLs to process")
		return nil
	}

	var fetcher pagesum.Fetcher = pagehttp.NewFetcher(
		pagehttp.WithTimeout(time.Duration(c.Timeout) * time.Second),
	)
	defer fetcher.Close()
	var extractor pagesum.Extractor = pagegoquery.NewExtractor()

	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		fetcher = pageslog.NewLoggingFetcher(fetcher, logger)
		extractor = pageslog.NewLoggingExtractor(extractor, logger)
	}

	runner := &batch.Runner{
		Fetcher:      fetcher,
		Extractor:    extractor,
		MaxSentences: c.Sentences,
		TopK:         c.TopK,
		MaxChars:     c.MaxChars,
	}
	if c.Generic {
		runner.Fallback = trafilatura.NewExtractor()
	}
	if c.RPS > 0 {
		runner.Limiter = batch.NewHostLimiter(c.RPS)
	}
	if c.Save {
		runner.Runs = deps.Runs
		runner.Documents = deps.Documents
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Processing %d URLs\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  %s: %v\n", event.URL, event.Error)
		}
	}

	result, err := runner.Run(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprint(deps.Stdout, pagesum.FormatTable(result.Documents))

	if top := result.Aggregate.Top(aggregateTopN); len(top) > 0 {
		fmt.Fprintf(deps.Stdout, "\nTop keywords:\n%s", pagesum.FormatKeywords(top))
	} else {
		fmt.Fprintln(deps.Stdout, "\nNo keywords to display.")
	}

	if result.Run != nil {
		fmt.Fprintf(deps.Stdout, "\nSaved run %s (%d documents, %d failed)\n",
			result.Run.ID, len(result.Documents), result.Failed)
	}

	if c.CSV != "" {
		if err := writeCSVFile(c.CSV, result.Documents); err != nil {
			fmt.Fprintf(deps.Stderr, "error: writing CSV: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.CSV)
	}

	return nil
}

func (c *RunCmd) readURLs(deps *Dependencies) ([]string, error) {
	if c.URLFile == "-" {
		return pagesum.ParseURLList(deps.Stdin)
	}
	f, err := os.Open(c.URLFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return pagesum.ParseURLList(f)
}

func writeCSVFile(path string, docs []*pagesum.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pagesum.WriteCSV(f, docs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
