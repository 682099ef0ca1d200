package allocator

import "errors"

// Sentinel errors for the allocator package.
var (
	// ErrInvalidRequest indicates a Request's fields are malformed:
	// an out-of-range geometry, an out-of-range requested start, or
	// neither a geometry nor a geometry sequence supplied.
	ErrInvalidRequest = errors.New("allocator: invalid request")
	// ErrNoFit indicates every candidate geometry and start position
	// was exhausted without finding room for the block.
	ErrNoFit = errors.New("allocator: no fitting position found")
	// ErrConflict indicates CheckAndSet/Rebuild found a midplane or
	// switch already claimed by something else in the fabric.
	ErrConflict = errors.New("allocator: midplane list conflicts with fabric state")
)
