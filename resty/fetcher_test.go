package resty_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/resty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_ReturnsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1>Korvold Upgrade Guide</h1></body></html>`))
	}))
	defer srv.Close()

	fetcher, err := resty.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "Korvold Upgrade Guide")
}

func TestFetcher_Fetch_ErrorOnHTTPStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	fetcher, err := resty.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	_, err = fetcher.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, edhgrab.EFETCH, edhgrab.ErrorCode(err))
	assert.Contains(t, err.Error(), "403")
}

func TestFetcher_Fetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html></html>`))
	}))
	defer srv.Close()

	fetcher, err := resty.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = fetcher.Fetch(ctx, srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_Fetch_TimeoutOnSlowHost(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
		_, _ = w.Write([]byte(`<html></html>`))
	}))
	defer srv.Close()

	fetcher, err := resty.NewFetcher(resty.WithTimeout(100 * time.Millisecond))
	require.NoError(t, err)
	defer fetcher.Close()

	_, err = fetcher.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, edhgrab.EFETCH, edhgrab.ErrorCode(err))
}

func TestFetcher_Fetch_FollowsRedirectsWithinHost(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/articles/korvold-upgrade-guide", http.StatusFound)
	})
	mux.HandleFunc("/articles/korvold-upgrade-guide", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>relocated guide</body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	fetcher, err := resty.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(context.Background(), srv.URL+"/old")

	require.NoError(t, err)
	assert.Contains(t, html, "relocated guide")
}

func TestFetcher_Fetch_BlocksCrossHostRedirect(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "http://elsewhere.example/capture", http.StatusFound)
	}))
	defer srv.Close()

	fetcher, err := resty.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	_, err = fetcher.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked")
}

func TestFetcher_Fetch_SendsBrowserUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<html></html>`))
	}))
	defer srv.Close()

	fetcher, err := resty.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	_, err = fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, gotUA, "Mozilla/5.0")
}
