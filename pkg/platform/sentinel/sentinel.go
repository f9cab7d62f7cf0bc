package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Acquisition attempts return these
// (wrapped with the path, URL or key involved) so the resolver can categorize
// a failure without knowing which backend produced it.
//
// - ErrNotFound: the file, asset or key does not exist
// - ErrUnavailable: the backend could not be reached or answered with an error
// - ErrInvalidState: a component was asked to do something its state forbids
var (
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("unavailable")
	ErrInvalidState = errors.New("invalid state")
)
