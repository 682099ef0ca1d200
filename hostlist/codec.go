package hostlist

import "fmt"

const alphabetSize = 36

// Encode renders a 4-D coordinate as its 4-character label, one digit per
// axis in A,X,Y,Z order. Digit i (0..35) renders as '0'+i for i<10, else
// 'A'+(i-10). Callers are responsible for keeping each component in
// [0,35]; Encode does not validate against a fabric's actual dimensions.
// Complexity: O(1).
func Encode(c [4]int) string {
	buf := make([]byte, 4)
	for i, v := range c {
		buf[i] = digitChar(v)
	}

	return string(buf)
}

// Decode parses a 4-character label back into a coordinate. Returns
// ErrBadLength if label is not 4 bytes, ErrBadChar if any byte falls
// outside '0'-'9','A'-'Z'.
// Complexity: O(1).
func Decode(label string) ([4]int, error) {
	var c [4]int
	if len(label) != 4 {
		return c, fmt.Errorf("hostlist: %q: %w", label, ErrBadLength)
	}
	for i := 0; i < 4; i++ {
		v, err := charDigit(label[i])
		if err != nil {
			return c, fmt.Errorf("hostlist: %q: %w", label, err)
		}
		c[i] = v
	}

	return c, nil
}

// LastFour extracts the trailing 4 characters of name and decodes them as
// a coordinate label. This is the "trailing 4 characters" rule spec.md
// §4.1 (set_all_except) and the original's init_grid both use to recover
// a coordinate from a longer hostname; anything preceding those 4
// characters is ignored.
func LastFour(name string) ([4]int, error) {
	if len(name) < 4 {
		var zero [4]int
		return zero, fmt.Errorf("hostlist: %q shorter than 4 characters: %w", name, ErrBadLength)
	}

	return Decode(name[len(name)-4:])
}

// digitChar maps a digit 0..35 to its alphabet character. Values outside
// that range still produce a (meaningless) byte rather than panicking;
// Encode is a rendering helper, not a validator.
func digitChar(v int) byte {
	if v < 10 {
		return byte('0' + v)
	}

	return byte('A' + (v - 10))
}

// charDigit reverses digitChar, rejecting anything outside '0'-'9','A'-'Z'.
func charDigit(ch byte) (int, error) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), nil
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10, nil
	default:
		return 0, ErrBadChar
	}
}
