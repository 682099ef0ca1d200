package allocator

import (
	"fmt"

	"github.com/holodeck-hpc/torusba/fabric"
)

// Remove undoes a previously committed Block's footprint on f: each
// midplane's compute claim is cleared, any leftover tentative bits are
// swept, and — unless isSmall — exactly the switch bits this block
// contributed on each axis are subtracted, leaving any other block's
// passthrough through the same midplane untouched. Implements spec.md
// §4.7 / remove_block.
func Remove(f *fabric.Fabric, b Block, isSmall bool) error {
	f.Lock()
	defer f.Unlock()

	for _, bm := range b.MPs {
		live, err := f.MPAt(bm.Coord)
		if err != nil {
			return fmt.Errorf("allocator: Remove: %w", err)
		}

		if bm.Used != fabric.UsedFalse {
			live.Used &^= fabric.UsedTrue
		}
		live.Used &^= fabric.AlteredPass

		if isSmall {
			break
		}

		for dim := 0; dim < fabric.NumAxes; dim++ {
			live.AxisSwitch[dim] &^= bm.AxisSwitch[dim]
		}
	}

	return nil
}
