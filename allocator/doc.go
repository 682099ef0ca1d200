// Package allocator ties pathfind and fill together into the match
// engine: given a Request, it searches candidate geometries and start
// positions for one that fits the fabric, commits the winning
// tentative wiring, and exposes Remove/CheckAndSet/Rebuild for undoing
// or re-establishing a block's footprint. It implements spec.md §4.5,
// §4.6, and §4.7 / the original's _find_match, set_bg_block,
// remove_block, check_and_set_mp_list, and get_and_set_block_wiring.
package allocator
