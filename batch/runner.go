// Package batch orchestrates processing of a URL list: fetch, extract,
// summarize, and keyword-extract each page sequentially, isolating
// failures per document and aggregating keyword frequencies across the
// run.
package batch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
	"github.com/hkwon/pagesum"
	"github.com/hkwon/pagesum/summarize"
)

// ExtractionFailedMarker is placed in the summary field when a page
// fetched fine but yielded no body text.
const ExtractionFailedMarker = "(extraction failed)"

// Runner processes URLs one at a time. Only Fetcher and Extractor are
// required; the remaining fields enable fallback extraction, request
// pacing, and persistence when set.
type Runner struct {
	Fetcher   pagesum.Fetcher
	Extractor pagesum.Extractor

	// Fallback, when set, is consulted for pages where Extractor
	// yields an empty body.
	Fallback pagesum.Extractor

	// Limiter, when set, paces requests per host.
	Limiter pagesum.DomainLimiter

	// Runs and Documents, when both set, persist the run and its
	// documents.
	Runs      pagesum.RunService
	Documents pagesum.DocumentService

	MaxSentences int
	TopK         int
	MaxChars     int
}

// Result holds the outcome of a batch run.
type Result struct {
	// Run is set only when the run was persisted.
	Run *pagesum.Run

	// Documents holds one entry per processed URL in input order.
	Documents []*pagesum.Document

	// Aggregate sums the per-document keyword frequency tables.
	Aggregate pagesum.Frequencies

	Failed  int
	Skipped int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run processes urls sequentially. A fetch or extract failure on one
// URL never aborts the batch: the document is flagged not-OK with a
// human-readable marker in its summary field. Duplicate URLs in the
// input are skipped. Run returns an error only for context
// cancellation or a storage failure while persisting.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	maxSentences := r.MaxSentences
	if maxSentences <= 0 {
		maxSentences = pagesum.DefaultMaxSentences
	}
	topK := r.TopK
	if topK <= 0 {
		topK = pagesum.DefaultTopK
	}

	result := &Result{Aggregate: pagesum.Frequencies{}}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(urls)})
	}

	seen := bloom.NewWithEstimates(uint(len(urls))+1, 0.001)

	completed := 0
	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if seen.TestString(u) {
			result.Skipped++
			continue
		}
		seen.AddString(u)

		doc, freq := r.processURL(ctx, len(result.Documents), u, maxSentences, topK)
		result.Documents = append(result.Documents, doc)
		result.Aggregate.Merge(freq)

		completed++
		if !doc.OK {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     len(urls),
					URL:       u,
					Error:     fmt.Errorf("%s", doc.Summary),
				})
			}
			continue
		}
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     len(urls),
				URL:       u,
			})
		}
	}

	if r.Runs != nil && r.Documents != nil {
		run := &pagesum.Run{MaxSentences: maxSentences, TopK: topK}
		if err := r.Runs.CreateRun(ctx, run); err != nil {
			return nil, fmt.Errorf("create run: %w", err)
		}
		for _, doc := range result.Documents {
			doc.RunID = run.ID
			if err := r.Documents.CreateDocument(ctx, doc); err != nil {
				return nil, fmt.Errorf("save document %s: %w", doc.URL, err)
			}
		}
		result.Run = run
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: len(urls)})
	}

	return result, nil
}

// processURL handles a single URL. Failures are folded into the
// returned document rather than propagated.
func (r *Runner) processURL(ctx context.Context, position int, url string, maxSentences, topK int) (*pagesum.Document, pagesum.Frequencies) {
	doc := &pagesum.Document{
		URL:       url,
		Position:  position,
		FetchedAt: time.Now().UTC(),
	}

	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx, url); err != nil {
			doc.Summary = fmt.Sprintf("(error: %v)", err)
			return doc, nil
		}
	}

	html, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		doc.Summary = fmt.Sprintf("(error: %v)", err)
		return doc, nil
	}

	extracted, err := r.Extractor.Extract(html)
	if err != nil {
		doc.Summary = fmt.Sprintf("(error: %v)", err)
		return doc, nil
	}

	title, body := extracted.Title, extracted.Body
	if strings.TrimSpace(body) == "" && r.Fallback != nil {
		if alt, err := r.Fallback.Extract(html); err == nil {
			if title == "" {
				title = alt.Title
			}
			body = alt.Body
		}
	}

	doc.Title = title
	if strings.TrimSpace(body) == "" {
		doc.Summary = ExtractionFailedMarker
		return doc, nil
	}

	keywords, freq := summarize.Keywords(body, topK)
	doc.Keywords = keywords
	doc.Summary = summarize.Summarize(body, maxSentences, r.MaxChars)
	doc.BodyHash = hashBody(body)
	doc.OK = true
	return doc, freq
}

// hashBody computes a short content hash of the body text.
func hashBody(body string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(body))
}
