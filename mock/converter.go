package mock

import "github.com/fwojciec/regscout"

var _ regscout.Converter = (*Converter)(nil)

// Converter is a mock implementation of regscout.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
