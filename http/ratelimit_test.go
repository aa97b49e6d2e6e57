package http_test

import (
	"context"
	"sync"
	"testing"
	"time"

	atbshttp "github.com/Fawaz-I/automate-the-boring-stuff/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request to a host is not delayed", func(t *testing.T) {
		t.Parallel()

		limiter := atbshttp.NewDomainLimiter(10)

		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "automatetheboringstuff.com"))

		assert.Less(t, time.Since(begin), 50*time.Millisecond)
	})

	t.Run("paces consecutive requests to one host", func(t *testing.T) {
		t.Parallel()

		limiter := atbshttp.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "automatetheboringstuff.com"))

		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "AutomateTheBoringStuff.com"))

		assert.GreaterOrEqual(t, time.Since(begin), 80*time.Millisecond, "host names are case-insensitive")
	})

	t.Run("hosts are paced independently", func(t *testing.T) {
		t.Parallel()

		limiter := atbshttp.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "automatetheboringstuff.com"))

		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "inventwithpython.com"))

		assert.Less(t, time.Since(begin), 50*time.Millisecond)
	})

	t.Run("gives up when the context expires", func(t *testing.T) {
		t.Parallel()

		limiter := atbshttp.NewDomainLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "inventwithpython.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "inventwithpython.com"))
	})

	t.Run("is safe for concurrent callers", func(t *testing.T) {
		t.Parallel()

		limiter := atbshttp.NewDomainLimiter(200)

		var wg sync.WaitGroup
		errs := make(chan error, 4)
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- limiter.Wait(context.Background(), "inventwithpython.com")
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}
	})
}
