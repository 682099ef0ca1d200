package hostlist

import "errors"

// Sentinel errors for hostlist encode/decode.
var (
	// ErrBadLength indicates a label is not exactly 4 characters long.
	ErrBadLength = errors.New("hostlist: label must be exactly 4 characters")
	// ErrBadChar indicates a label character is outside the '0'-'9','A'-'Z' alphabet.
	ErrBadChar = errors.New("hostlist: character outside 0-9A-Z alphabet")
)
