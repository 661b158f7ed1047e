// Package resty provides an HTTP-based implementation of edhgrab.Fetcher
// for fetching pages without JavaScript rendering. The client carries a
// cookie jar and a Cloudflare-aware transport so that plain GETs against
// protected hosts succeed more often than a bare http.Client would.
package resty

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/fwojciec/edhgrab"
	"github.com/go-resty/resty/v2"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// defaultUserAgent is sent when the caller does not override it. Hosts
// behind bot protection reject the Go default agent outright.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Ensure Fetcher implements edhgrab.Fetcher at compile time.
var _ edhgrab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and only sees
// server-rendered markup.
type Fetcher struct {
	client    *resty.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, edhgrab.Errorf(edhgrab.EINTERNAL, "create cookie jar: %v", err)
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", f.userAgent)
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(10), sameHostRedirectPolicy())
	client.SetTimeout(f.timeout)

	f.client = client
	return f, nil
}

// sameHostRedirectPolicy refuses redirects that leave the host of the
// original request. Mirror hosts must not be able to bounce us to an
// arbitrary destination.
func sameHostRedirectPolicy() resty.RedirectPolicyFunc {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) == 0 {
			return nil
		}
		origin := via[0].URL.Hostname()
		if req.URL.Hostname() != origin {
			return fmt.Errorf("redirect to %q blocked: outside origin host %q", req.URL.String(), origin)
		}
		return nil
	}
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	res, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", edhgrab.Errorf(edhgrab.EFETCH, "fetch %s: %v", url, err)
	}

	if !res.IsSuccess() {
		return "", edhgrab.Errorf(edhgrab.EFETCH, "fetch %s: HTTP %d", url, res.StatusCode())
	}

	return res.String(), nil
}

// Close releases idle connections held by the underlying client.
func (f *Fetcher) Close() error {
	f.client.GetClient().CloseIdleConnections()
	return nil
}
