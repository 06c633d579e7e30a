package pagesum

import (
	"context"
	"strings"
	"time"
)

// Document represents the processed result for a single URL.
type Document struct {
	ID       string   `json:"id"`
	RunID    string   `json:"runId"`
	URL      string   `json:"url"`
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
	Summary  string   `json:"summary"`

	// OK is false when the fetch or extraction failed; Summary then
	// holds a human-readable marker instead of summary text.
	OK bool `json:"ok"`

	// BodyHash is a hash of the extracted body text, empty when OK is false.
	BodyHash string `json:"bodyHash"`

	// Position is the zero-based index of the URL in the input list.
	Position  int       `json:"position"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.RunID == "" {
		return Errorf(EINVALID, "document run ID required")
	}
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	return nil
}

// KeywordList returns the keywords comma-joined for display and export.
func (d *Document) KeywordList() string {
	return strings.Join(d.Keywords, ", ")
}

// DocumentService represents a service for managing stored documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocuments retrieves documents matching the filter,
	// ordered by position within their run.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID    *string `json:"id"`
	RunID *string `json:"runId"`
	URL   *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
