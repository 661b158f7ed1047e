package resty_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/resty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyFetcher_WrapsTargetInTemplate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target := r.URL.Query().Get("url")
		_, _ = fmt.Fprintf(w, `<html><body>mirrored %s</body></html>`, target)
	}))
	defer srv.Close()

	direct, err := resty.NewFetcher()
	require.NoError(t, err)
	defer direct.Close()

	proxy, err := resty.NewProxyFetcher(srv.URL+"/fetch?url=%s", direct)
	require.NoError(t, err)

	html, err := proxy.Fetch(context.Background(), "https://edhrec.com/articles/korvold-upgrade-guide")

	require.NoError(t, err)
	assert.Contains(t, html, "mirrored https://edhrec.com/articles/korvold-upgrade-guide")
}

func TestProxyFetcher_RejectsMalformedTemplate(t *testing.T) {
	t.Parallel()

	direct, err := resty.NewFetcher()
	require.NoError(t, err)
	defer direct.Close()

	_, err = resty.NewProxyFetcher("https://mirror.example/fetch", direct)
	require.Error(t, err)
	assert.Equal(t, edhgrab.EINVALID, edhgrab.ErrorCode(err))

	_, err = resty.NewProxyFetcher("https://mirror.example/%s/%s", direct)
	require.Error(t, err)
	assert.Equal(t, edhgrab.EINVALID, edhgrab.ErrorCode(err))
}

func TestProxyFetcher_PropagatesFetchErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "mirror down", http.StatusBadGateway)
	}))
	defer srv.Close()

	direct, err := resty.NewFetcher()
	require.NoError(t, err)
	defer direct.Close()

	proxy, err := resty.NewProxyFetcher(srv.URL+"/fetch?url=%s", direct)
	require.NoError(t, err)

	_, err = proxy.Fetch(context.Background(), "https://edhrec.com/articles/korvold-upgrade-guide")

	require.Error(t, err)
	assert.Equal(t, edhgrab.EFETCH, edhgrab.ErrorCode(err))
}

func TestProxyFetcher_CloseLeavesUnderlyingOpen(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>still serving</body></html>`))
	}))
	defer srv.Close()

	direct, err := resty.NewFetcher()
	require.NoError(t, err)
	defer direct.Close()

	proxy, err := resty.NewProxyFetcher(srv.URL+"/fetch?url=%s", direct)
	require.NoError(t, err)
	require.NoError(t, proxy.Close())

	html, err := direct.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "still serving")
}
