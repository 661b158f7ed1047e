package mock

import "github.com/fwojciec/edhgrab"

var _ edhgrab.Converter = (*Converter)(nil)

// Converter is a mock implementation of edhgrab.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
