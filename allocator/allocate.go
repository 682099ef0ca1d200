package allocator

import (
	"context"
	"errors"
	"fmt"

	"github.com/holodeck-hpc/torusba/fabric"
	"github.com/holodeck-hpc/torusba/fill"
	"github.com/holodeck-hpc/torusba/hostlist"
	"github.com/holodeck-hpc/torusba/pathfind"
)

// rotationCycle is the length of RotateGeo's fixed orientation cycle
// (4! == 24): applying RotateGeo this many times in succession, each
// step feeding the previous step's result back in, walks every
// reorientation of a geometry before returning to the one it started
// from.
const rotationCycle = 24

// Allocate searches every candidate geometry r.Geometries offers —
// and, if r.Rotate, every one of RotateGeo's 24 reorientations of each
// — and for each, every start position the fabric allows (or just
// r.Start if r.StartReq), for one that fits f without conflict. On
// success it commits the winning tentative wiring and fills in
// r.SaveName, r.Geometry, r.Size, and r.Block. Implements spec.md
// §4.5 / _find_match.
//
// Allocate holds f's lock for its full duration, including across
// every attempt; a long search over a dense fabric should pass a
// context with a deadline.
func (r *Request) Allocate(ctx context.Context, f *fabric.Fabric) error {
	if r.Geometries == nil {
		return fmt.Errorf("allocator: %w: no geometries to try", ErrInvalidRequest)
	}

	f.Lock()
	defer f.Unlock()

	dims := f.Dims()

	geom, ok := r.Geometries.Geometry()
	if !ok {
		return fmt.Errorf("allocator: %w", ErrNoFit)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := r.tryRotations(ctx, f, geom, dims)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrNoFit) {
			return err
		}

		if !r.Geometries.Advance() {
			return fmt.Errorf("allocator: %w", ErrNoFit)
		}
		geom, _ = r.Geometries.Geometry()
	}
}

// tryRotations attempts geom, and — if r.Rotate — each of RotateGeo's
// successive reorientations of geom, stopping at the first that fits
// dims and finds room. Implements spec.md §4.9's "used to explore
// geometry orientations when rotate is set".
func (r *Request) tryRotations(ctx context.Context, f *fabric.Fabric, geom, dims fabric.Coord) error {
	steps := 1
	if r.Rotate {
		steps = rotationCycle
	}

	candidate := geom
	for step := 0; step < steps; step++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if geometryFits(candidate, dims) {
			err := r.searchStarts(ctx, f, candidate, dims)
			if err == nil || !errors.Is(err, ErrNoFit) {
				return err
			}
		}

		if step+1 < steps {
			candidate = RotateGeo(candidate, step)
		}
	}

	return fmt.Errorf("allocator: %w", ErrNoFit)
}

// searchStarts tries every start position for one candidate geometry
// (or just r.Start if r.StartReq), mirroring _find_match's Z→Y→X→A
// start advancement.
func (r *Request) searchStarts(ctx context.Context, f *fabric.Fabric, geom, dims fabric.Coord) error {
	start := fabric.Coord{}
	if r.StartReq {
		start = r.Start
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		touched, block, name, err := setBGBlock(f, start, geom, r.ConnType, r.DenyPass, &r.Passthroughs)
		if err == nil {
			r.SaveName = name
			r.Geometry = geom
			r.Size = touchedSize(geom, r.ConnType)
			r.Block = block

			return nil
		}
		resetAltered(touched)

		if r.StartReq {
			return fmt.Errorf("allocator: %w", ErrNoFit)
		}

		next, advanced := nextStart(start, geom, dims)
		if !advanced {
			return fmt.Errorf("allocator: %w", ErrNoFit)
		}
		start = next
	}
}

// geometryFits reports whether every axis of geom is within dims.
func geometryFits(geom, dims fabric.Coord) bool {
	for d := 0; d < fabric.NumAxes; d++ {
		if geom[d] < 1 || geom[d] > dims[d] {
			return false
		}
	}

	return true
}

// touchedSize returns the midplane count a geometry occupies, or 1 for
// a Small request regardless of geometry.
func touchedSize(geom fabric.Coord, connType [fabric.NumAxes]fabric.ConnType) int {
	if connType[0] == fabric.Small {
		return 1
	}
	size := 1
	for d := 0; d < fabric.NumAxes; d++ {
		size *= geom[d]
	}

	return size
}

// nextStart advances start to the next candidate position for a block
// of shape geom within dims, innermost-axis-first (Z, Y, X, A),
// mirroring _find_match's nested start[...]++  fallback chain. ok is
// false once every position has been tried.
func nextStart(start, geom, dims fabric.Coord) (next fabric.Coord, ok bool) {
	next = start
	for _, d := range [fabric.NumAxes]int{fabric.Z, fabric.Y, fabric.X, fabric.A} {
		if dims[d]-next[d]-1 >= geom[d] {
			next[d]++

			return next, true
		}
		next[d] = 0
	}

	return fabric.Coord{}, false
}

// setBGBlock attempts to wire one candidate block at start with shape
// geom, walking each axis with pathfind.Find and merging the result
// with fill.Propagate, then committing on success. On any failure it
// returns every midplane it touched so the caller can roll the
// attempt back; it never rolls back itself so the caller can inspect
// the tentative state first if it wants to. Implements spec.md §4.6 /
// set_bg_block.
func setBGBlock(f *fabric.Fabric, start, geom fabric.Coord, connType [fabric.NumAxes]fabric.ConnType,
	deny fabric.PassDeny, found *fabric.PassFound) (touched []*fabric.MP, block Block, name string, err error) {
	if !f.InRange(start) {
		return nil, Block{}, "", fmt.Errorf("allocator: start %v out of range: %w", start, ErrNoFit)
	}
	startMP, _ := f.MPAt(start)

	if connType[0] == fabric.Small {
		if startMP.UsedOnAxis(fabric.A) {
			return nil, Block{}, "", fmt.Errorf("allocator: %s already used: %w", startMP.CoordStr, ErrNoFit)
		}
		startMP.Used |= fabric.UsedTrue

		return nil, Block{MPs: []BlockMP{{Coord: startMP.Coord, Used: fabric.UsedTrue}}}, startMP.CoordStr, nil
	}

	touched = []*fabric.MP{startMP}
	blockEnd, passEnd := start, start

	for dim := 0; dim < fabric.NumAxes; dim++ {
		axisDeny := fabric.RequestPassCheck{Deny: deny, Found: found}

		t, be, pe, ok, ferr := pathfind.Find(startMP, dim, geom[dim], connType[dim], axisDeny)
		if ferr != nil {
			return append(touched, t...), Block{}, "", ferr
		}
		if !ok {
			// Find reports no midplanes when it fails, yet it may already
			// have marked part of this axis's ring; return the whole ring
			// so the caller's rollback reaches those marks too.
			for cur := startMP.Next[dim]; cur != startMP; cur = cur.Next[dim] {
				touched = append(touched, cur)
			}

			return touched, Block{}, "", fmt.Errorf("allocator: axis %d doesn't fit from %s: %w", dim, startMP.CoordStr, ErrNoFit)
		}
		touched = append(touched, t...)
		blockEnd[dim] = be
		passEnd[dim] = pe
	}

	filled, ferr := fill.Propagate(f, startMP, blockEnd, passEnd)
	if ferr != nil {
		return append(touched, filled...), Block{}, "", ferr
	}
	touched = append(touched, filled...)

	block, name = commit(touched)

	return touched, block, name, nil
}

// commit promotes every touched midplane's tentative AlterSwitch into
// its committed AxisSwitch and strips the tentative overlay (AlteredPass)
// from its live Used. A passthrough-role midplane may simultaneously be
// another block's compute body — pathfind.Find's passthrough branch
// only consults OutUsedOnAxis, never UsedOnAxis (pathfind.go), so this
// is routine, not an error — so commit never writes UsedFalse onto the
// live MP; only the detached BlockMP snapshot records the role this
// block claims, leaving whatever committed Used bit already lived on
// the live MP untouched. Mirrors _copy_from_main: the original only
// ever sets BA_MP_USED_FALSE on the copy (new_mp->used), while the live
// ba_mp->used just has ALTERED_PASS masked off. It returns that
// snapshot alongside the joined hostlist of every compute-role
// midplane, mirroring _copy_from_main's ba_copy_mp + hostlist_push
// pairing.
func commit(touched []*fabric.MP) (Block, string) {
	var names []string
	block := Block{MPs: make([]BlockMP, 0, len(touched))}
	for _, mp := range touched {
		own := mp.AlterSwitch
		for dim := 0; dim < fabric.NumAxes; dim++ {
			mp.AxisSwitch[dim] |= own[dim]
		}
		mp.AlterSwitch = [fabric.NumAxes]fabric.SwitchUsage{}

		var role fabric.UsedFlag
		if mp.Used.Has(fabric.UsedPassBit) {
			role = fabric.UsedFalse
			mp.Used &^= fabric.AlteredPass
		} else {
			role = fabric.UsedTrue
			mp.Used = mp.Used&^fabric.AlteredPass | fabric.UsedTrue
			names = append(names, mp.CoordStr)
		}

		block.MPs = append(block.MPs, BlockMP{Coord: mp.Coord, Used: role, AxisSwitch: own})
	}

	return block, hostlist.Join(names)
}

// resetAltered undoes setBGBlock's tentative marks on every midplane
// it touched during a failed attempt, mirroring _reset_altered_mps.
func resetAltered(touched []*fabric.MP) {
	for _, mp := range touched {
		mp.Used &^= fabric.AlteredPass
		mp.AlterSwitch = [fabric.NumAxes]fabric.SwitchUsage{}
	}
}
