package fabric

import (
	"fmt"

	"github.com/holodeck-hpc/torusba/hostlist"
)

// Lock and Unlock satisfy sync.Locker. allocator holds the lock for the
// full duration of one Allocate/Remove/CheckAndSet/Rebuild call and
// then uses the lock-free MPAt to walk the grid; pathfind and fill are
// never invoked without the caller already holding this lock.
func (f *Fabric) Lock()   { f.mu.Lock() }
func (f *Fabric) Unlock() { f.mu.Unlock() }

// Dims returns the fabric's fixed per-axis sizes.
func (f *Fabric) Dims() Coord { return f.dims }

// InRange reports whether every component of c is within this fabric's
// dimensions.
func (f *Fabric) InRange(c Coord) bool {
	for d := 0; d < NumAxes; d++ {
		if c[d] < 0 || c[d] >= f.dims[d] {
			return false
		}
	}

	return true
}

// MPAt returns a pointer to the live MP at c. Callers must already hold
// f's lock (via Lock/Unlock) for the duration of any mutation through
// the returned pointer; MPAt itself performs no locking so it can be
// called repeatedly within one already-locked allocator attempt.
// Complexity: O(1).
func (f *Fabric) MPAt(c Coord) (*MP, error) {
	if !f.InRange(c) {
		return nil, fmt.Errorf("fabric: %v: %w", c, ErrOutOfRange)
	}

	return f.mpAt(c), nil
}

// Coord2MP is the standalone, self-locking form of MPAt (spec.md §4.1
// coord2mp): an O(1) indexed lookup usable outside any in-flight
// allocation attempt.
func (f *Fabric) Coord2MP(c Coord) (*MP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.MPAt(c)
}

// Destroy releases this fabric's storage and zeroes its dimensions. Go's
// GC reclaims the backing buffer once no reference remains; Destroy
// exists for symmetry with the original ba_destroy_system call so
// callers migrating from that API have a direct replacement to call.
func (f *Fabric) Destroy() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.mps = nil
	f.dims = Coord{}
}

// Reset clears every MP's allocation state: Used, AxisSwitch, and
// AlterSwitch all go back to zero. If trackDown is true, each MP's
// NodeState is preserved as-is; if false, NodeState is also reset to
// NodeIdle. Implements spec.md §4.1 reset(track_down).
// Complexity: O(|grid|).
func (f *Fabric) Reset(trackDown bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.mps {
		mp := &f.mps[i]
		mp.Used = UsedFalse
		mp.AxisSwitch = [NumAxes]SwitchUsage{}
		mp.AlterSwitch = [NumAxes]SwitchUsage{}
		if !trackDown {
			mp.NodeState = NodeIdle
		}
	}
}

// SetAllExcept marks every MP not named in labels as UsedTemp, excluding
// everything outside a given whitelist before an allocation attempt.
// Each entry of labels has its trailing 4 characters parsed as a
// coordinate label (hostlist.LastFour); implements spec.md §4.1
// set_all_except.
// Complexity: O(len(labels) + |grid|).
func (f *Fabric) SetAllExcept(labels []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, name := range labels {
		raw, err := hostlist.LastFour(name)
		if err != nil {
			return fmt.Errorf("fabric: SetAllExcept(%q): %w", name, err)
		}
		c := Coord(raw)
		if !f.InRange(c) {
			return fmt.Errorf("fabric: SetAllExcept(%q): %v: %w", name, c, ErrOutOfRange)
		}
		f.mpAt(c).NodeState |= NodeResume
	}

	for i := range f.mps {
		mp := &f.mps[i]
		if mp.NodeState.Has(NodeResume) {
			mp.NodeState &^= NodeResume
		} else {
			mp.Used |= UsedTemp
		}
	}

	return nil
}

// FindLoc resolves a 4-character label back to its coordinate by
// scanning the grid for a matching CoordStr. It supersedes the
// original's find_mp_loc, which read one index past each dimension's
// bound (spec.md §9 Open Question); this version iterates every axis
// exclusively and returns ErrLabelNotFound instead of an out-of-bounds
// read when no MP matches.
// Complexity: O(|grid|).
func (f *Fabric) FindLoc(label string) (Coord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.mps {
		if f.mps[i].CoordStr == label {
			return f.mps[i].Coord, nil
		}
	}

	return Coord{}, fmt.Errorf("fabric: %q: %w", label, ErrLabelNotFound)
}

// Snapshot returns a deep copy of every MP's allocation-relevant state,
// keyed by flat index. Restore undoes a failed experiment back to a
// prior Snapshot. Both are grounded on core.Graph.Clone's deep-copy
// idiom and exist so this module's own tests can assert the round-trip
// invariants (spec.md §8) without relying solely on Allocate/Remove
// being exact inverses.
func (f *Fabric) Snapshot() []MP {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := make([]MP, len(f.mps))
	copy(snap, f.mps)

	return snap
}

// Restore overwrites every MP's state from a prior Snapshot. snap must
// have been produced by this same Fabric (same length); a mismatched
// length is a programmer error and Restore panics rather than silently
// corrupting a different-shaped grid.
func (f *Fabric) Restore(snap []MP) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(snap) != len(f.mps) {
		panic("fabric: Restore: snapshot length does not match this fabric")
	}
	copy(f.mps, snap)
}
