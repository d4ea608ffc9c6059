package mock

import "github.com/fwojciec/regscout"

var _ regscout.SeenTracker = (*SeenTracker)(nil)

// SeenTracker is a mock implementation of regscout.SeenTracker.
type SeenTracker struct {
	MarkIdentifierFn func(id string) bool
	MarkURLFn        func(url string) bool
}

func (t *SeenTracker) MarkIdentifier(id string) bool {
	return t.MarkIdentifierFn(id)
}

func (t *SeenTracker) MarkURL(url string) bool {
	return t.MarkURLFn(url)
}
