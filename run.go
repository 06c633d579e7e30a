package pagesum

import (
	"context"
	"time"
)

// Run represents one saved invocation of the summarizer over a URL list.
type Run struct {
	ID           string    `json:"id"`
	MaxSentences int       `json:"maxSentences"`
	TopK         int       `json:"topK"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.MaxSentences < MinSentences || r.MaxSentences > MaxSentences {
		return Errorf(EINVALID, "sentence count must be between %d and %d", MinSentences, MaxSentences)
	}
	if r.TopK < MinTopK || r.TopK > MaxTopK {
		return Errorf(EINVALID, "keyword count must be between %d and %d", MinTopK, MaxTopK)
	}
	return nil
}

// Bounds for run parameters.
const (
	MinSentences = 1
	MaxSentences = 8
	MinTopK      = 3
	MaxTopK      = 15
)

// Defaults for run parameters.
const (
	DefaultMaxSentences = 3
	DefaultTopK         = 5

	// DefaultMaxSentenceChars caps each summary sentence; 0 disables.
	DefaultMaxSentenceChars = 300
)

// RunService represents a service for managing saved runs.
type RunService interface {
	// CreateRun creates a new run.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun permanently removes a run and all associated documents.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
