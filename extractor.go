package pagesum

// ExtractResult holds the readable content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// Body is the flattened paragraph text, fragments joined by
	// single spaces in document order. Empty when the page has no
	// collectable paragraphs.
	Body string
}

// Extractor extracts readable paragraph text from HTML pages,
// removing boilerplate (navigation, footers, reference lists,
// infoboxes) and script/style content.
type Extractor interface {
	// Extract processes raw HTML and returns title and body text.
	// Malformed HTML is parsed best-effort; an empty body is not an
	// error at this layer.
	Extract(html string) (*ExtractResult, error)
}
