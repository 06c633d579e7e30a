package pagesum

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// csvHeader matches the four per-document output fields.
var csvHeader = []string{"url", "title", "keywords", "summary"}

// utf8BOM is prepended to CSV output so spreadsheet applications
// detect the encoding instead of mangling Hangul text.
const utf8BOM = "\xef\xbb\xbf"

// WriteCSV writes one row per document as UTF-8-with-BOM CSV.
func WriteCSV(w io.Writer, docs []*Document) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, d := range docs {
		if err := cw.Write([]string{d.URL, d.Title, d.KeywordList(), d.Summary}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Column caps for FormatTable. Hangul glyphs are double-width, so
// alignment uses display width, not rune count.
var tableCaps = []int{40, 24, 32, 60}

// FormatTable renders documents as an aligned text table with one row
// per URL. Cells wider than the column cap are truncated with an
// ellipsis.
func FormatTable(docs []*Document) string {
	headers := []string{"URL", "TITLE", "KEYWORDS", "SUMMARY"}

	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, []string{d.URL, d.Title, d.KeywordList(), d.Summary})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, c := range tableCaps {
		if widths[i] > c {
			widths[i] = c
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			cell = runewidth.Truncate(cell, widths[i], "…")
			if i < len(cells)-1 {
				cell = runewidth.FillRight(cell, widths[i])
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

// FormatKeywords renders a keyword frequency table, one "term count"
// line per keyword with terms left-aligned.
func FormatKeywords(keywords []Keyword) string {
	width := 0
	for _, k := range keywords {
		if w := runewidth.StringWidth(k.Term); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, k := range keywords {
		fmt.Fprintf(&b, "%s  %d\n", runewidth.FillRight(k.Term, width), k.Count)
	}
	return b.String()
}
