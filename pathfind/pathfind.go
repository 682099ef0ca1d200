package pathfind

import "github.com/holodeck-hpc/torusba/fabric"

// Find walks the dim ring starting at start, claiming geometry midplanes
// as block body (spending any surplus ring length as passthrough) into
// each midplane's AlterSwitch. It implements spec.md §4.3 / the
// original's _find_path.
//
// ok is false whenever the axis simply doesn't fit from this start
// (start or an encountered midplane is already spoken for, or a
// passthrough was denied) — the ordinary "try another start" outcome,
// not an error. err is non-nil only if the walk observed a state the
// algorithm has proven impossible (see fabric.Assert).
//
// touched lists every midplane besides start that Find newly marked as
// BA_MP_USED_ALTERED for the first time during this call, in walk
// order; once one midplane has been newly marked, every midplane
// visited afterward is also reported, mirroring the original's
// un-reset add flag. When ok is false, touched is nil even if the walk
// had already marked midplanes before it stopped. blockEnd and passEnd are the highest
// coordinate this axis's body and its full (body+passthrough) run
// reached, seeded from start.Coord[dim].
//
// deny is consulted before any midplane is used purely as a
// passthrough; a nil deny behaves as fabric.AlwaysAllowPass.
func Find(start *fabric.MP, dim int, geometry int, conn fabric.ConnType, deny fabric.PassCheck) (touched []*fabric.MP, blockEnd, passEnd int, ok bool, err error) {
	if deny == nil {
		deny = fabric.AlwaysAllowPass{}
	}

	blockEnd = start.Coord[dim]
	passEnd = start.Coord[dim]

	if start.UsedOnAxis(dim) {
		return nil, blockEnd, passEnd, false, nil
	}

	if geometry == 1 {
		// A 1-wide run claims only start and leaves its IN/OUT ports
		// untouched; TORUS additionally loops start's wire back on
		// itself (WRAPPED), MESH does not.
		start.Used |= fabric.UsedAltered
		if conn == fabric.Torus {
			start.AlterSwitch[dim] |= fabric.SwitchWrapped
		}

		return nil, blockEnd, passEnd, true, nil
	}

	if start.OutUsedOnAxis(dim) {
		return nil, blockEnd, passEnd, false, nil
	}
	start.Used |= fabric.UsedAltered
	start.AlterSwitch[dim] |= fabric.SwitchOut | fabric.SwitchOutPass

	count := 1
	add := false
	cur := start.Next[dim]
	for cur != start {
		if cur.Coord[dim] > passEnd {
			passEnd = cur.Coord[dim]
		}

		if e := fabric.Assert(!cur.AxisSwitch[dim].Has(fabric.SwitchInPass),
			"pathfind: IN_PASS already set on a midplane reached from an unused start"); e != nil {
			return nil, blockEnd, passEnd, false, e
		}

		switch {
		case count < geometry && !cur.UsedOnAxis(dim):
			if cur.Coord[dim] > blockEnd {
				blockEnd = cur.Coord[dim]
			}
			count++
			if !cur.Used.Has(fabric.UsedAltered) {
				add = true
				cur.Used |= fabric.UsedAltered
			}
			cur.AlterSwitch[dim] |= fabric.SwitchInPass | fabric.SwitchIn
			switch {
			case count < geometry || conn == fabric.Torus:
				cur.AlterSwitch[dim] |= fabric.SwitchOut | fabric.SwitchOutPass
			case conn == fabric.Mesh:
				if add {
					touched = append(touched, cur)
				}

				return touched, blockEnd, passEnd, true, nil
			}

		case !cur.OutUsedOnAxis(dim) && deny.Allowed(dim):
			if !cur.Used.Has(fabric.UsedAltered) {
				add = true
				cur.Used |= fabric.AlteredPass
			}
			cur.AlterSwitch[dim] |= fabric.SwitchPass

		default:
			return nil, blockEnd, passEnd, false, nil
		}

		if add {
			touched = append(touched, cur)
		}
		cur = cur.Next[dim]
	}

	if count != geometry {
		return nil, blockEnd, passEnd, false, nil
	}

	if e := fabric.Assert(!cur.AxisSwitch[dim].Has(fabric.SwitchInPass),
		"pathfind: IN_PASS already set on the midplane closing the torus"); e != nil {
		return nil, blockEnd, passEnd, false, e
	}
	cur.AlterSwitch[dim] |= fabric.SwitchInPass | fabric.SwitchIn

	return touched, blockEnd, passEnd, true, nil
}
