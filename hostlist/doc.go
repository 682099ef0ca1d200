// Package hostlist converts between a 4-D fabric coordinate and its
// 4-character human label, and nothing else.
//
// It is the "collaborator" Design Notes calls for: the core treats
// (coord) ↔ (label) as a pure function pair and never interprets a
// label's surrounding hostname, persistence key, or naming scheme
// itself. hostlist has no dependency on fabric, pathfind, or allocator
// so it can be swapped for a different naming scheme without touching
// the allocator core.
//
// Alphabet: index i (0..35) maps to '0'..'9' then 'A'..'Z', so digit 10
// renders as 'A'. A label is always exactly 4 characters, one per axis
// in A,X,Y,Z order.
package hostlist
