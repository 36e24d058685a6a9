package gate

import "errors"

// Sentinel errors returned by Gate.Authorize. Callers branch on these
// with errors.Is to distinguish a denied check from a missing policy.
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNoPolicyDefined = errors.New("no policy defined for resource")
)
