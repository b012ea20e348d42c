package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/gapscan"
	gaphttp "github.com/fwojciec/gapscan/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	f := gaphttp.NewFetcher()
	defer f.Close()

	res, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "<html><body>hello</body></html>", res.HTML)
	assert.Equal(t, srv.URL, res.FinalURL)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, gaphttp.DefaultUserAgent, gotUA)
}

func TestFetcher_Fetch_FollowsRedirects(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
			return
		}
		w.Write([]byte("moved here"))
	}))
	defer srv.Close()

	f := gaphttp.NewFetcher()
	defer f.Close()

	res, err := f.Fetch(context.Background(), srv.URL+"/old")
	require.NoError(t, err)

	assert.Equal(t, "moved here", res.HTML)
	assert.Equal(t, srv.URL+"/new", res.FinalURL)
}

func TestFetcher_Fetch_ErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := gaphttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)

	assert.Equal(t, gapscan.EUNAVAILABLE, gapscan.ErrorCode(err))
	assert.Contains(t, gapscan.ErrorMessage(err), "HTTP 404")
}

func TestFetcher_Fetch_EmptyURL(t *testing.T) {
	t.Parallel()

	f := gaphttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), "")

	assert.Equal(t, gapscan.EINVALID, gapscan.ErrorCode(err))
}

func TestFetcher_Fetch_UnreachableHost(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // the address is now guaranteed to refuse connections

	f := gaphttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)

	assert.Equal(t, gapscan.EUNAVAILABLE, gapscan.ErrorCode(err))
}

func TestFetcher_WithUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	f := gaphttp.NewFetcher(gaphttp.WithUserAgent("gapscan-test/1.0"))
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "gapscan-test/1.0", gotUA)
}
