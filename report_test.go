package pagesum_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/hkwon/pagesum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	t.Run("starts with a UTF-8 BOM", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, pagesum.WriteCSV(&buf, nil))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\xef\xbb\xbf")))
	})

	t.Run("writes a header and one row per document", func(t *testing.T) {
		t.Parallel()

		docs := []*pagesum.Document{
			{
				URL:      "https://a.test/seoul",
				Title:    "Seoul",
				Keywords: []string{"seoul", "capital"},
				Summary:  "Seoul is the capital.",
			},
			{
				URL:     "https://a.test/down",
				Summary: "(error: connection refused)",
			},
		}

		var buf bytes.Buffer
		require.NoError(t, pagesum.WriteCSV(&buf, docs))

		records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), []byte("\xef\xbb\xbf")))).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, []string{"url", "title", "keywords", "summary"}, records[0])
		assert.Equal(t, []string{"https://a.test/seoul", "Seoul", "seoul, capital", "Seoul is the capital."}, records[1])
		assert.Equal(t, []string{"https://a.test/down", "", "", "(error: connection refused)"}, records[2])
	})

	t.Run("quotes fields containing commas", func(t *testing.T) {
		t.Parallel()

		docs := []*pagesum.Document{{
			URL:     "https://a.test/x",
			Summary: "First clause, second clause.",
		}}

		var buf bytes.Buffer
		require.NoError(t, pagesum.WriteCSV(&buf, docs))
		assert.Contains(t, buf.String(), `"First clause, second clause."`)
	})
}

func TestFormatTable(t *testing.T) {
	t.Parallel()

	t.Run("aligns columns across rows", func(t *testing.T) {
		t.Parallel()

		docs := []*pagesum.Document{
			{URL: "https://a.test/a", Title: "Short", Keywords: []string{"one"}, Summary: "First."},
			{URL: "https://a.test/longer-path", Title: "Longer title", Keywords: []string{"two"}, Summary: "Second."},
		}

		out := pagesum.FormatTable(docs)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 3)

		assert.Equal(t, strings.Index(lines[1], "Short"), strings.Index(lines[2], "Longer"))
		assert.Equal(t, strings.Index(lines[1], "First."), strings.Index(lines[2], "Second."))
	})

	t.Run("truncates oversized cells with an ellipsis", func(t *testing.T) {
		t.Parallel()

		docs := []*pagesum.Document{{
			URL:     "https://a.test/x",
			Summary: strings.Repeat("long summary text ", 20),
		}}

		out := pagesum.FormatTable(docs)
		assert.Contains(t, out, "…")
		assert.NotContains(t, out, strings.Repeat("long summary text ", 20))
	})

	t.Run("header is always present", func(t *testing.T) {
		t.Parallel()

		out := pagesum.FormatTable(nil)
		assert.Contains(t, out, "URL")
		assert.Contains(t, out, "TITLE")
		assert.Contains(t, out, "KEYWORDS")
		assert.Contains(t, out, "SUMMARY")
	})
}

func TestFormatKeywords(t *testing.T) {
	t.Parallel()

	t.Run("renders one aligned line per keyword", func(t *testing.T) {
		t.Parallel()

		out := pagesum.FormatKeywords([]pagesum.Keyword{
			{Term: "seoul", Count: 12},
			{Term: "한글", Count: 7},
		})

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "seoul")
		assert.Contains(t, lines[0], "12")
		assert.Contains(t, lines[1], "한글")
		assert.Contains(t, lines[1], "7")
	})

	t.Run("empty list yields empty output", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, pagesum.FormatKeywords(nil))
	})
}
