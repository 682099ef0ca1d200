// Package geoseq models the geometry-table oracle as a small lazy
// iterator, per Design Notes §9: "model it as an external lazy
// sequence, not an intrusive linked list." The geometry table itself
// (enumerating candidate shapes in preference order for a requested
// size, optionally across rotations/elongations) is an external
// collaborator out of this module's scope; geoseq only defines the
// consumer-side interface the allocator's match engine walks, plus a
// minimal slice-backed implementation for tests and simple callers.
package geoseq
