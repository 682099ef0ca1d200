package allocator

import "github.com/holodeck-hpc/torusba/fabric"

// BlockMP is an immutable snapshot of one midplane's committed role in
// a block, detached from the live fabric — mirroring ba_copy_mp, which
// is why set_bg_block's results list holds copies rather than live
// grid pointers. Remove and CheckAndSet use this snapshot rather than
// reading the live fabric, so they undo or re-apply exactly what this
// block contributed even when another block still shares one of these
// midplanes as a passthrough.
type BlockMP struct {
	Coord      fabric.Coord
	Used       fabric.UsedFlag
	AxisSwitch [fabric.NumAxes]fabric.SwitchUsage
}

// Block is the committed result of a successful Allocate: one BlockMP
// per midplane touched, compute role and passthrough alike.
type Block struct {
	MPs []BlockMP
}
