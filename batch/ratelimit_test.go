package batch_test

import (
	"context"
	"testing"
	"time"

	"github.com/hkwon/pagesum/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request per host passes immediately", func(t *testing.T) {
		t.Parallel()

		l := batch.NewHostLimiter(0.1)

		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), "https://a.test/page"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("hosts are limited independently", func(t *testing.T) {
		t.Parallel()

		l := batch.NewHostLimiter(0.1)
		require.NoError(t, l.Wait(context.Background(), "https://a.test/one"))

		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), "https://b.test/one"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("repeat requests to a host are paced", func(t *testing.T) {
		t.Parallel()

		l := batch.NewHostLimiter(20)
		require.NoError(t, l.Wait(context.Background(), "https://a.test/one"))

		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), "https://a.test/two"))
		assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
	})

	t.Run("cancelled context unblocks a waiting request", func(t *testing.T) {
		t.Parallel()

		l := batch.NewHostLimiter(0.001)
		require.NoError(t, l.Wait(context.Background(), "https://a.test/one"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := l.Wait(ctx, "https://a.test/two")
		assert.Error(t, err)
	})
}
