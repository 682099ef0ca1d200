package fill

import (
	"fmt"

	"github.com/holodeck-hpc/torusba/fabric"
)

// Propagate fills in every midplane of start's bounding box: for each
// axis dim, checkMP[dim] always names the midplane reached by walking
// exactly dim from start (ignoring every other axis) — precisely the
// midplane pathfind.Find touched when it walked that axis — and
// Propagate merges that axis's tentative switch state onto every grid
// position whose dim-th coordinate matches. blockEnd and passEnd are
// the per-axis block_end/pass_end pairs pathfind.Find returned for
// each of the four axes.
//
// touched lists, in visit order, every grid position newly marked
// BA_MP_USED_ALTERED(_PASS) by this call. A non-nil error means a
// target position's already-committed state collided with what an
// axis's run needed to write there; the caller must roll back
// everything this attempt touched, on both start's axis walks and
// here.
func Propagate(f *fabric.Fabric, start *fabric.MP, blockEnd, passEnd fabric.Coord) (touched []*fabric.MP, err error) {
	var checkMP [fabric.NumAxes]*fabric.MP
	var coords fabric.Coord

	err = fillLevel(f, 0, start, &checkMP, start.Coord, blockEnd, passEnd, &coords, &touched)

	return touched, err
}

// fillLevel recurses over axis level, advancing checkMP[level] one
// ring-step per iteration, then at level == NumAxes merges the four
// axes' tentative state onto the grid position named by coords.
func fillLevel(f *fabric.Fabric, level int, start *fabric.MP, checkMP *[fabric.NumAxes]*fabric.MP,
	blockStart, blockEnd, passEnd fabric.Coord, coords *fabric.Coord, touched *[]*fabric.MP) error {
	if level == fabric.NumAxes {
		curr, err := f.MPAt(*coords)
		if err != nil {
			return err
		}

		return mergeLeaf(curr, checkMP, blockEnd, touched)
	}

	checkMP[level] = start
	for coords[level] = blockStart[level]; coords[level] <= passEnd[level]; coords[level]++ {
		if err := fillLevel(f, level+1, start, checkMP, blockStart, blockEnd, passEnd, coords, touched); err != nil {
			return err
		}
		checkMP[level] = checkMP[level].Next[level]
	}

	return nil
}

// mergeLeaf implements the per-coordinate body of _fill_in_coords: a
// coordinate more than one axis beyond its block's body on pure
// passthrough axes is skipped outright, then copyBaSwitch runs once
// per axis whose role matches whichever passthrough role (if any) is
// in effect at this coordinate.
func mergeLeaf(curr *fabric.MP, checkMP *[fabric.NumAxes]*fabric.MP, blockEnd fabric.Coord, touched *[]*fabric.MP) error {
	countOver := 0
	var used fabric.UsedFlag
	for dim := 0; dim < fabric.NumAxes; dim++ {
		if checkMP[dim].Used.Has(fabric.UsedPassBit) {
			if curr.Coord[dim] > blockEnd[dim] {
				countOver++
				if countOver > 1 {
					break
				}
			}
			used = checkMP[dim].Used
		}
	}
	if countOver > 1 {
		return nil
	}

	for dim := 0; dim < fabric.NumAxes; dim++ {
		if used.Has(fabric.UsedPassBit) && checkMP[dim].Used != used {
			continue
		}

		added, err := copyBaSwitch(curr, checkMP[dim], dim)
		if err != nil {
			return err
		}
		if added {
			*touched = append(*touched, curr)
		}
	}

	return nil
}

// copyBaSwitch merges orig's tentative state for axis dim onto curr,
// implementing _copy_ba_switch. added is true the first time curr is
// newly marked altered by this merge, so the caller lists it exactly
// once regardless of how many axes subsequently merge onto it.
func copyBaSwitch(curr, orig *fabric.MP, dim int) (added bool, err error) {
	if curr.AlterSwitch[dim] != fabric.SwitchNone {
		return false, nil
	}

	if orig.Used.Has(fabric.UsedPassBit) || curr.Used.Has(fabric.UsedPassBit) {
		if !orig.AlterSwitch[dim].Has(fabric.PassFlag) {
			return false, nil
		}
	} else if curr.UsedOnAxis(dim) {
		return false, fmt.Errorf("fill: %s axis %d already used: %w", curr.CoordStr, dim, ErrConflict)
	}

	if !curr.Used.Has(fabric.UsedAltered) {
		if curr.AxisSwitch[dim].Has(orig.AlterSwitch[dim]) {
			return false, fmt.Errorf("fill: %s axis %d overlaps an existing block: %w", curr.CoordStr, dim, ErrConflict)
		}
		added = true
	}

	// Overlap unconditionally so a passthrough role carried on orig
	// reaches curr even when curr was already altered by another axis.
	curr.Used |= orig.Used
	curr.AlterSwitch[dim] |= orig.AlterSwitch[dim]

	return added, nil
}
