package allocator

import "github.com/holodeck-hpc/torusba/fabric"

// Rebuild re-applies a previously known Block's wiring onto a freshly
// constructed fabric, the in-scope half of get_and_set_block_wiring:
// the other half, loading a block's saved node list out of the
// scheduler's configuration store, is a persistence concern this
// module leaves to its caller (see spec.md Non-goals). Once the
// caller has that list in hand as a Block, re-validating and merging
// it is exactly CheckAndSet's job.
func Rebuild(f *fabric.Fabric, b Block) error {
	return CheckAndSet(f, b)
}
