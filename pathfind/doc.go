// Package pathfind walks a single axis ring from a start midplane,
// claiming midplanes as block body or passthrough until it has either
// satisfied a requested run length or exhausted the ring, mirroring
// the original's _find_path. It never commits anything: every claim
// lands in an MP's AlterSwitch, the tentative overlay fill.Propagate
// and the allocator later either promote or discard wholesale.
package pathfind
