package resty

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/edhgrab"
)

// Ensure ProxyFetcher implements edhgrab.Fetcher at compile time.
var _ edhgrab.Fetcher = (*ProxyFetcher)(nil)

// ProxyFetcher fetches a target URL through a read-through mirror.
// The mirror is described by a template with a single %s placeholder,
// e.g. "https://mirror.example/fetch?url=%s"; the target URL is
// query-escaped into the placeholder before fetching.
type ProxyFetcher struct {
	template string
	fetcher  edhgrab.Fetcher
}

// NewProxyFetcher creates a ProxyFetcher for one mirror template. The
// underlying fetcher is shared with the caller, who remains responsible
// for closing it.
func NewProxyFetcher(template string, fetcher edhgrab.Fetcher) (*ProxyFetcher, error) {
	if strings.Count(template, "%s") != 1 {
		return nil, edhgrab.Errorf(edhgrab.EINVALID, "mirror template must contain exactly one %%s placeholder: %q", template)
	}
	return &ProxyFetcher{template: template, fetcher: fetcher}, nil
}

// Fetch retrieves the target URL through the mirror.
func (p *ProxyFetcher) Fetch(ctx context.Context, target string) (string, error) {
	return p.fetcher.Fetch(ctx, fmt.Sprintf(p.template, url.QueryEscape(target)))
}

// Close is a no-op; the underlying fetcher is owned by the caller.
func (p *ProxyFetcher) Close() error {
	return nil
}
