package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/edhgrab"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Converter implements edhgrab.Converter at compile time.
var _ edhgrab.Converter = (*Converter)(nil)

// Converter sanitizes HTML and converts it to Markdown. Paragraph
// markup arrives straight from fetched pages, so scripts, styles, and
// event handlers are stripped before conversion.
type Converter struct {
	policy *bluemonday.Policy
	conv   *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{
		policy: bluemonday.UGCPolicy(),
		conv:   conv,
	}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", edhgrab.Errorf(edhgrab.EINVALID, "empty HTML input")
	}

	sanitized := c.policy.Sanitize(html)
	if strings.TrimSpace(sanitized) == "" {
		return "", edhgrab.Errorf(edhgrab.ECONTENT, "no content left after sanitization")
	}

	result, err := c.conv.ConvertString(sanitized)
	if err != nil {
		return "", err
	}

	return result, nil
}
