package slog

import (
	"log/slog"
	"time"

	"github.com/hkwon/pagesum"
)

// Ensure LoggingExtractor implements pagesum.Extractor.
var _ pagesum.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with timing and size logging.
type LoggingExtractor struct {
	next   pagesum.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagesum.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *pagesum.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var body int
		if result != nil {
			title = result.Title
			body = len(result.Body)
		}
		e.logger.Info("extract",
			"title", title,
			"body_bytes", body,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
