// Package torusba is a block allocator for a 4-D toroidal compute
// fabric: midplanes wired along four axes (A, X, Y, Z), each axis
// wrapping on itself like the original BlueGene torus.
//
// It's organized under four subpackages:
//
//	fabric/    — the grid itself: midplanes, per-axis switch state, locking
//	pathfind/  — walks a single axis ring, claiming body and passthrough midplanes
//	fill/      — replicates a path across the other three axes
//	allocator/ — the match engine: Request, Allocate, Remove, CheckAndSet, Rebuild
//
// geoseq and hostlist are small supporting packages: a candidate-geometry
// iterator and the coordinate/label codec, respectively.
package torusba
