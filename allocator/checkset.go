package allocator

import (
	"fmt"

	"github.com/holodeck-hpc/torusba/fabric"
)

// CheckAndSet merges a Block's committed state onto f, used to test
// whether a block (e.g. one loaded from saved configuration) fits
// alongside whatever else is already committed without disturbing any
// midplane it doesn't touch. A midplane already compute-claimed is a
// conflict unless its NodeState carries HardUnusable (down, drained,
// or failed outside this block — an administrative override, not a
// silent steal); a switch bit already set on an axis is always a
// conflict. Implements spec.md §4.7 / check_and_set_mp_list.
//
// CheckAndSet is not transactional: on a conflict partway through b.MPs,
// every midplane processed before the conflicting one is left merged.
// Callers that need all-or-nothing semantics should Snapshot/Restore f
// around the call, matching the original's own documented behavior.
func CheckAndSet(f *fabric.Fabric, b Block) error {
	f.Lock()
	defer f.Unlock()

	for _, bm := range b.MPs {
		live, err := f.MPAt(bm.Coord)
		if err != nil {
			return fmt.Errorf("allocator: CheckAndSet: %w", err)
		}

		if bm.Used != fabric.UsedFalse && live.Used != fabric.UsedFalse {
			if !live.NodeState.Has(fabric.HardUnusable) {
				return fmt.Errorf("allocator: %s already used: %w", live.CoordStr, ErrConflict)
			}
		}
		if bm.Used != fabric.UsedFalse {
			live.Used = bm.Used
		}

		for dim := 0; dim < fabric.NumAxes; dim++ {
			if bm.AxisSwitch[dim] == fabric.SwitchNone {
				continue
			}
			if bm.AxisSwitch[dim].Has(live.AxisSwitch[dim]) {
				return fmt.Errorf("allocator: %s axis %d already in use: %w", live.CoordStr, dim, ErrConflict)
			}
			live.AxisSwitch[dim] |= bm.AxisSwitch[dim]
		}
	}

	return nil
}
