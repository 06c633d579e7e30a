// Package trafilatura provides a generic fallback extractor for pages
// outside the wiki family, wrapping go-trafilatura's readability
// heuristics.
package trafilatura

import (
	"strings"

	"github.com/hkwon/pagesum"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements pagesum.Extractor at compile time.
var _ pagesum.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain
// text. Newlines from trafilatura's block output are flattened to
// single spaces to match the wiki extractor's output shape.
func (e *Extractor) Extract(rawHTML string) (*pagesum.ExtractResult, error) {
	if rawHTML == "" {
		return nil, pagesum.Errorf(pagesum.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &pagesum.ExtractResult{
		Title: result.Metadata.Title,
		Body:  strings.Join(strings.Fields(result.ContentText), " "),
	}, nil
}
