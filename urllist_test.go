package pagesum_test

import (
	"strings"
	"testing"

	"github.com/hkwon/pagesum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURLList(t *testing.T) {
	t.Parallel()

	t.Run("one URL per line", func(t *testing.T) {
		t.Parallel()

		urls, err := pagesum.ParseURLList(strings.NewReader("https://a.test/one\nhttps://a.test/two\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.test/one", "https://a.test/two"}, urls)
	})

	t.Run("skips blank lines and comments", func(t *testing.T) {
		t.Parallel()

		input := "# korean wiki pages\n\nhttps://a.test/one\n   \n# another comment\nhttps://a.test/two"
		urls, err := pagesum.ParseURLList(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.test/one", "https://a.test/two"}, urls)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		urls, err := pagesum.ParseURLList(strings.NewReader("  https://a.test/one\t\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.test/one"}, urls)
	})

	t.Run("empty input yields no URLs", func(t *testing.T) {
		t.Parallel()

		urls, err := pagesum.ParseURLList(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, urls)
	})
}
