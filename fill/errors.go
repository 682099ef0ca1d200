package fill

import "errors"

// ErrConflict indicates Propagate found a grid position whose
// already-committed switch state collides with what an axis's
// tentative run needs to write there.
var ErrConflict = errors.New("fill: conflicting midplane already used")
