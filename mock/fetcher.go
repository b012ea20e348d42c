package mock

import (
	"context"

	"github.com/fwojciec/gapscan"
)

var _ gapscan.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of gapscan.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*gapscan.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*gapscan.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
