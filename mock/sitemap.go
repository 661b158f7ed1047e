package mock

import (
	"context"

	"github.com/fwojciec/edhgrab"
)

var _ edhgrab.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of edhgrab.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *edhgrab.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *edhgrab.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
