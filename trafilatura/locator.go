package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/edhgrab"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Locator implements edhgrab.ContentLocator at compile time.
var _ edhgrab.ContentLocator = (*Locator)(nil)

// Locator wraps go-trafilatura to locate the main article content in
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, edhgrab.Errorf(edhgrab.ECONTENT, "locate main content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &edhgrab.LocatedContent{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
