package scryfall_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/fs"
	"github.com/fwojciec/edhgrab/scryfall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeSVG_RemovesScriptElements(t *testing.T) {
	t.Parallel()

	raw := []byte(`<svg viewBox="0 0 100 100">
		<script>alert('gotcha')</script>
		<path d="M0 0h100v100H0z"/>
	</svg>`)

	out, err := scryfall.SanitizeSVG(raw)

	require.NoError(t, err)
	assert.NotContains(t, string(out), "script")
	assert.NotContains(t, string(out), "alert")
	assert.Contains(t, string(out), "path")
}

func TestSanitizeSVG_RemovesForeignObjectAndHandlers(t *testing.T) {
	t.Parallel()

	raw := []byte(`<svg viewBox="0 0 100 100" onload="steal()">
		<g onclick="steal()">
			<foreignObject><body>embedded</body></foreignObject>
			<circle cx="5" cy="5" r="4"/>
		</g>
	</svg>`)

	out, err := scryfall.SanitizeSVG(raw)

	require.NoError(t, err)
	assert.NotContains(t, string(out), "foreignObject")
	assert.NotContains(t, string(out), "onload")
	assert.NotContains(t, string(out), "onclick")
	assert.Contains(t, string(out), "circle")
}

func TestSanitizeSVG_RequiresViewBox(t *testing.T) {
	t.Parallel()

	_, err := scryfall.SanitizeSVG([]byte(`<svg width="100" height="100"><path d="M0 0"/></svg>`))

	require.Error(t, err)
	assert.Equal(t, edhgrab.ECONTENT, edhgrab.ErrorCode(err))
}

func TestSanitizeSVG_RejectsNonSVGDocuments(t *testing.T) {
	t.Parallel()

	_, err := scryfall.SanitizeSVG([]byte(`<html><body>not a symbol</body></html>`))

	require.Error(t, err)
	assert.Equal(t, edhgrab.ECONTENT, edhgrab.ErrorCode(err))
}

func TestSymbolService_DownloadsSanitizesAndStores(t *testing.T) {
	t.Parallel()

	downloads := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		downloads++
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write([]byte(`<svg viewBox="0 0 100 100"><script>x()</script><path d="M0 0h100v100H0z"/></svg>`))
	}))
	defer srv.Close()

	store := fs.NewSymbolStore(t.TempDir())
	svc := scryfall.NewSymbolService(scryfall.NewClient(), store)

	path, err := svc.SymbolPath(context.Background(), "rix", srv.URL+"/sets/rix.svg")

	require.NoError(t, err)
	assert.Equal(t, 1, downloads)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "script")
	assert.Contains(t, string(content), "path")
}

func TestSymbolService_SecondLookupHitsStore(t *testing.T) {
	t.Parallel()

	downloads := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		downloads++
		_, _ = w.Write([]byte(`<svg viewBox="0 0 1 1"/>`))
	}))
	defer srv.Close()

	store := fs.NewSymbolStore(t.TempDir())
	svc := scryfall.NewSymbolService(scryfall.NewClient(), store)

	first, err := svc.SymbolPath(context.Background(), "neo", srv.URL+"/sets/neo.svg")
	require.NoError(t, err)

	second, err := svc.SymbolPath(context.Background(), "neo", srv.URL+"/sets/neo.svg")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, downloads)
}

func TestSymbolService_MissingSymbolIsNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	store := fs.NewSymbolStore(t.TempDir())
	svc := scryfall.NewSymbolService(scryfall.NewClient(), store)

	_, err := svc.SymbolPath(context.Background(), "xyz", srv.URL+"/sets/xyz.svg")

	require.Error(t, err)
	assert.Equal(t, edhgrab.ENOTFOUND, edhgrab.ErrorCode(err))
}

func TestSymbolService_RejectsEmptySetCode(t *testing.T) {
	t.Parallel()

	store := fs.NewSymbolStore(t.TempDir())
	svc := scryfall.NewSymbolService(scryfall.NewClient(), store)

	_, err := svc.SymbolPath(context.Background(), "", "https://svgs.scryfall.io/sets/rix.svg")

	require.Error(t, err)
	assert.Equal(t, edhgrab.EINVALID, edhgrab.ErrorCode(err))
}
