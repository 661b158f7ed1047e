package readability

import (
	"strings"

	"github.com/fwojciec/edhgrab"
	"github.com/go-shiori/go-readability"
)

// Ensure Locator implements edhgrab.ContentLocator at compile time.
var _ edhgrab.ContentLocator = (*Locator)(nil)

// Locator wraps go-readability to locate the main article content in
// pages whose markup no site profile recognizes.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate processes raw HTML and returns the main content.
func (l *Locator) Locate(rawHTML string) (*edhgrab.LocatedContent, error) {
	if rawHTML == "" {
		return nil, edhgrab.Errorf(edhgrab.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, edhgrab.Errorf(edhgrab.ECONTENT, "locate main content: %v", err)
	}

	return &edhgrab.LocatedContent{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
