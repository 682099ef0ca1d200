package fabric

import (
	"fmt"

	"github.com/holodeck-hpc/torusba/hostlist"
)

// New allocates a 4-D grid of dims[A]*dims[X]*dims[Y]*dims[Z] MPs as one
// flat buffer (Design Notes §9: avoid nested pointer-of-pointer layouts),
// assigns each MP's Coord/CoordStr/Index, seeds NodeState via opts, and
// wires the Next rings. Returns ErrBadDims if any dimension is < 1.
// Complexity: O(|grid|) time and memory.
func New(dims Coord, opts ...Option) (*Fabric, error) {
	for d := 0; d < NumAxes; d++ {
		if dims[d] < 1 {
			return nil, fmt.Errorf("fabric: dims[%d]=%d: %w", d, dims[d], ErrBadDims)
		}
	}

	cfg := &fabricConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	f := &Fabric{dims: dims}
	f.mps = make([]MP, dims[A]*dims[X]*dims[Y]*dims[Z])

	idx := 0
	var c Coord
	for c[A] = 0; c[A] < dims[A]; c[A]++ {
		for c[X] = 0; c[X] < dims[X]; c[X]++ {
			for c[Y] = 0; c[Y] < dims[Y]; c[Y]++ {
				for c[Z] = 0; c[Z] < dims[Z]; c[Z]++ {
					mp := f.mpAt(c)
					mp.Coord = c
					mp.CoordStr = hostlist.Encode([4]int(c))
					mp.Index = idx
					mp.Used = UsedFalse
					if cfg.nodeStateFn != nil {
						mp.NodeState = cfg.nodeStateFn(c)
					} else {
						mp.NodeState = NodeIdle
					}
					idx++
				}
			}
		}
	}

	f.wireNextRings()

	return f, nil
}

// index maps a coordinate to its offset in the flat mps buffer.
// Complexity: O(1).
func (f *Fabric) index(c Coord) int {
	return ((c[A]*f.dims[X]+c[X])*f.dims[Y]+c[Y])*f.dims[Z] + c[Z]
}

// mpAt returns a pointer to the live MP at c without bounds checking or
// locking; callers must already hold f's lock and have validated c.
func (f *Fabric) mpAt(c Coord) *MP {
	return &f.mps[f.index(c)]
}

// wireNextRings computes Next[dim] for every MP on every axis: the ring
// successor shares every coordinate except dim, which advances by one
// modulo that axis's dimension size. Implements spec.md §4.1's next_mp
// construction as precomputed neighbor pointers rather than nested
// pointer-of-pointer indirection.
// Complexity: O(|grid| * NumAxes).
func (f *Fabric) wireNextRings() {
	var c Coord
	for c[A] = 0; c[A] < f.dims[A]; c[A]++ {
		for c[X] = 0; c[X] < f.dims[X]; c[X]++ {
			for c[Y] = 0; c[Y] < f.dims[Y]; c[Y]++ {
				for c[Z] = 0; c[Z] < f.dims[Z]; c[Z]++ {
					mp := f.mpAt(c)
					for dim := 0; dim < NumAxes; dim++ {
						next := c
						next[dim] = (c[dim] + 1) % f.dims[dim]
						mp.Next[dim] = f.mpAt(next)
					}
				}
			}
		}
	}
}
