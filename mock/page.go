package mock

import (
	"context"
	"time"

	"github.com/fwojciec/edhgrab"
)

var _ edhgrab.PageCacheService = (*PageCacheService)(nil)

// PageCacheService is a mock implementation of edhgrab.PageCacheService.
type PageCacheService struct {
	FindPageByURLFn     func(ctx context.Context, url string) (*edhgrab.Page, error)
	SavePageFn          func(ctx context.Context, page *edhgrab.Page) error
	DeletePagesBeforeFn func(ctx context.Context, cutoff time.Time) (int, error)
}

func (s *PageCacheService) FindPageByURL(ctx context.Context, url string) (*edhgrab.Page, error) {
	return s.FindPageByURLFn(ctx, url)
}

func (s *PageCacheService) SavePage(ctx context.Context, page *edhgrab.Page) error {
	return s.SavePageFn(ctx, page)
}

func (s *PageCacheService) DeletePagesBefore(ctx context.Context, cutoff time.Time) (int, error) {
	return s.DeletePagesBeforeFn(ctx, cutoff)
}
