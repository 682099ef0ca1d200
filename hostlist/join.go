package hostlist

import "strings"

// Join concatenates labels into the comma-separated save_name string an
// allocation reports to its caller. The original compresses runs of
// adjacent labels into bracketed ranges via hostlist_ranged_string; that
// compression is its own string-algorithm concern and an external
// collaborator out of scope here, so Join reports the same membership
// uncompressed.
func Join(labels []string) string {
	return strings.Join(labels, ",")
}
