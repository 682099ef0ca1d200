package pathfind

import "errors"

// Sentinel errors for the pathfind package. Find's zero/false return
// covers the ordinary "this axis doesn't fit" outcomes the original
// reports by returning 0; these errors are reserved for states the
// walk has proven cannot happen short of a caller violating Find's
// preconditions.
var (
	// ErrBadGeometry indicates geometry was < 1 or > the ring's length.
	ErrBadGeometry = errors.New("pathfind: geometry out of range for this axis")
)
