// Package fabric models the 4-D toroidal compute fabric: midplanes (MPs)
// wired along four ring axes (A, X, Y, Z), their node-level hardware
// state, and the committed/tentative switch-usage bitsets that track
// which inter-MP wires a block has consumed.
//
// fabric owns the single piece of mutable, process-wide state in this
// module (the grid itself). Every exported mutator takes the fabric's
// own lock for its full duration; pathfind and fill are invoked only
// from inside that locked region by the allocator package and never
// lock independently.
//
// fabric has no outgoing dependency beyond hostlist (a pure coord↔label
// codec) and the standard library.
package fabric
