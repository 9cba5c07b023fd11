package mock

import "github.com/fwojciec/nethys"

var _ nethys.Converter = (*Converter)(nil)

// Converter is a mock implementation of nethys.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
