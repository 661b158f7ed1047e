package mock

import "github.com/fwojciec/edhgrab"

var _ edhgrab.ContentLocator = (*ContentLocator)(nil)

// ContentLocator is a mock implementation of edhgrab.ContentLocator.
type ContentLocator struct {
	LocateFn func(html string) (*edhgrab.LocatedContent, error)
}

func (l *ContentLocator) Locate(html string) (*edhgrab.LocatedContent, error) {
	return l.LocateFn(html)
}
