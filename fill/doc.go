// Package fill projects the four single-axis body/passthrough runs
// pathfind.Find computed from one start midplane onto every coordinate
// of the block's bounding box, merging each axis's tentative switch
// state onto the full grid position it belongs to. It implements
// spec.md §4.4 / the original's _fill_in_coords plus _copy_ba_switch.
package fill
