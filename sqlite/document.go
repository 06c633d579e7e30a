package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hkwon/pagesum"
)

// Compile-time interface verification.
var _ pagesum.DocumentService = (*DocumentService)(nil)

// DocumentService implements pagesum.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *pagesum.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, run_id, url, title, keywords, summary, ok, body_hash, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.RunID, doc.URL, doc.Title, joinKeywords(doc.Keywords), doc.Summary,
		boolToInt(doc.OK), doc.BodyHash, doc.Position, doc.FetchedAt.Format(time.RFC3339))

	return err
}

// FindDocuments retrieves documents matching the filter, ordered by
// position within their run.
func (s *DocumentService) FindDocuments(ctx context.Context, filter pagesum.DocumentFilter) ([]*pagesum.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, run_id, url, title, keywords, summary, ok, body_hash, position, fetched_at
		FROM documents WHERE 1=1
	`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY position ASC")
	paginate(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*pagesum.Document
	for rows.Next() {
		var doc pagesum.Document
		var keywords, fetchedAt string
		var ok int
		if err := rows.Scan(&doc.ID, &doc.RunID, &doc.URL, &doc.Title, &keywords,
			&doc.Summary, &ok, &doc.BodyHash, &doc.Position, &fetchedAt); err != nil {
			return nil, err
		}
		doc.Keywords = splitKeywords(keywords)
		doc.OK = ok != 0
		if doc.FetchedAt, err = parseTime(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}

// joinKeywords flattens a keyword list for storage. Tokens never
// contain commas (the tokenizer only admits letters), so the comma
// join is unambiguous.
func joinKeywords(keywords []string) string {
	return strings.Join(keywords, ",")
}

func splitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
