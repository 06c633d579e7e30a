package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hkwon/pagesum"
)

// Compile-time interface verification.
var _ pagesum.RunService = (*RunService)(nil)

// RunService implements pagesum.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun creates a new run.
func (s *RunService) CreateRun(ctx context.Context, run *pagesum.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, max_sentences, top_k, created_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.MaxSentences, run.TopK, run.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*pagesum.Run, error) {
	var run pagesum.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, max_sentences, top_k, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.MaxSentences, &run.TopK, &createdAt)

	if err == sql.ErrNoRows {
		return nil, pagesum.Errorf(pagesum.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	if run.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter pagesum.RunFilter) ([]*pagesum.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, max_sentences, top_k, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY created_at DESC")
	paginate(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*pagesum.Run
	for rows.Next() {
		var run pagesum.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.MaxSentences, &run.TopK, &createdAt); err != nil {
			return nil, err
		}
		if run.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// DeleteRun permanently removes a run; documents cascade.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return pagesum.Errorf(pagesum.ENOTFOUND, "run not found")
	}
	return nil
}
