package analyze

import (
	"context"
	"time"

	"github.com/fwojciec/gapscan"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry attempts a fetch with backoff delays between attempts.
// Invalid-URL errors are not retried; transient failures are.
func fetchWithRetry(ctx context.Context, fetcher gapscan.Fetcher, url string, delays []time.Duration) (*gapscan.FetchResult, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		res, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if gapscan.ErrorCode(err) == gapscan.EINVALID {
			break
		}
		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
