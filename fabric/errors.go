package fabric

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fabric package.
var (
	// ErrBadDims indicates a requested dimension size was < 1.
	ErrBadDims = errors.New("fabric: dimension sizes must each be >= 1")
	// ErrOutOfRange indicates a coordinate component fell outside its dimension.
	ErrOutOfRange = errors.New("fabric: coordinate out of range")
	// ErrLabelNotFound indicates FindLoc found no MP matching the given label.
	ErrLabelNotFound = errors.New("fabric: no midplane matches that label")
	// ErrInvariant indicates the algorithm observed a state it has proven
	// impossible (e.g. IN_PASS already set on an MP believed unused).
	// Treated as a defensive, debug-only abort; see DebugAssertions.
	ErrInvariant = errors.New("fabric: invariant violation")
)

// DebugAssertions toggles whether Assert panics (true, for development and
// test builds) or silently returns a wrapped ErrInvariant (false, the
// production default). The original's equivalent is compiling with/without
// NDEBUG around its xassert calls.
var DebugAssertions = false

// Assert reports ErrInvariant wrapping msg if cond is false. Callers in
// pathfind/fill/allocator use this for states the algorithm has proven
// cannot occur; if DebugAssertions is set, it panics instead of returning,
// so test suites catch a broken invariant at its source.
func Assert(cond bool, msg string) error {
	if cond {
		return nil
	}
	err := fmt.Errorf("%s: %w", msg, ErrInvariant)
	if DebugAssertions {
		panic(err)
	}

	return err
}
