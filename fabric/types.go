package fabric

import "sync"

// Axis indices into a Coord and any [4]T per-axis array. The fabric
// always has exactly four axes; spec.md's 1-D compatibility mode is an
// out-of-scope external collaborator.
const (
	A = iota
	X
	Y
	Z
	NumAxes = 4
)

// Coord is an ordered 4-tuple (a, x, y, z). Dimensions are fixed for the
// lifetime of the Fabric that produced a Coord.
type Coord [NumAxes]int

// SwitchUsage is the per-MP, per-axis switch usage bitset (spec.md §3.3).
// Two distinct blocks may both touch the same MP/axis only if their
// SwitchUsage values share no set bit.
type SwitchUsage uint8

// SwitchNone is the zero value: no usage on this axis.
const SwitchNone SwitchUsage = 0

// Independent switch-usage flags.
const (
	SwitchIn      SwitchUsage = 1 << iota // this MP terminates a run (inbound)
	SwitchOut                             // this MP terminates a run (outbound)
	SwitchInPass                          // conducts signal through, inbound side
	SwitchOutPass                         // conducts signal through, outbound side
	SwitchPass                            // used solely as a passthrough, no compute role
	SwitchWrapped                         // single-MP torus block, wire looped on itself
)

// PassUsed is the set of bits that indicate any traversal of an MP's
// through-wires on an axis, regardless of role.
const PassUsed = SwitchInPass | SwitchOutPass | SwitchPass | SwitchWrapped

// PassFlag is the subset of SwitchUsage treated as "purely passthrough"
// during tentative propagation in fill.Propagate's copy_ba_switch rule.
const PassFlag = SwitchPass

// Has reports whether any bit in mask is set in u.
func (u SwitchUsage) Has(mask SwitchUsage) bool { return u&mask != 0 }

// UsedFlag is the per-MP allocation-usage bitset (spec.md §3.4).
type UsedFlag uint8

// UsedFalse is the zero value: a freshly reset MP is UsedFalse by
// construction.
const UsedFalse UsedFlag = 0

// UsedFlag values.
const (
	UsedTrue    UsedFlag = 1 << iota // compute-committed
	UsedTemp                        // reserved by external policy
	UsedAltered                     // touched by the in-flight tentative allocation
	UsedPassBit                     // tentatively marked as passthrough
)

// AlteredPass is the composite clearing mask for the tentative overlay.
const AlteredPass = UsedAltered | UsedPassBit

// Has reports whether any bit in mask is set in u.
func (u UsedFlag) Has(mask UsedFlag) bool { return u&mask != 0 }

// Committed strips the tentative overlay (AlteredPass) from u, yielding
// the portion that survives a commit or rollback.
func (u UsedFlag) Committed() UsedFlag { return u &^ AlteredPass }

// NodeState is the node-level hardware state bitset maintained by the
// enclosing scheduler; this core only reads DOWN/DRAIN/FAIL as "hard
// unusable" and RESUME as its own internal set_all_except marker.
type NodeState uint8

// NodeIdle is the zero value: a fully usable MP.
const NodeIdle NodeState = 0

// NodeState bits.
const (
	NodeDown NodeState = 1 << iota
	NodeDrain
	NodeFail
	NodeResume // internal marker used only by SetAllExcept's sweep
)

// HardUnusable is the set of NodeState bits under which CheckAndSet
// (check_and_set_mp_list) lets a block take over an already-used MP
// instead of reporting a conflict.
const HardUnusable = NodeDown | NodeDrain | NodeFail

// Has reports whether any bit in mask is set in s.
func (s NodeState) Has(mask NodeState) bool { return s&mask != 0 }

// ConnType is a per-axis connectivity request (spec.md §6.2).
type ConnType int

// ConnType values.
const (
	Torus ConnType = iota
	Mesh
	Small
)

// PassDeny is a per-axis "deny passthrough" bitmask (spec.md §6.3).
type PassDeny uint8

// PassDeny / PassFound bits, one per axis.
const (
	DenyA PassDeny = 1 << iota
	DenyX
	DenyY
	DenyZ
)

// PassFound mirrors PassDeny's bit layout but records which axes were
// actually considered for passthrough during an attempt.
type PassFound uint8

// PassFound bits, matching PassDeny's axis order.
const (
	FoundA PassFound = 1 << iota
	FoundX
	FoundY
	FoundZ
)

var axisDeny = [NumAxes]PassDeny{DenyA, DenyX, DenyY, DenyZ}
var axisFound = [NumAxes]PassFound{FoundA, FoundX, FoundY, FoundZ}

// Has reports whether any bit in mask is set in f.
func (f PassFound) Has(mask PassFound) bool { return f&mask != 0 }

// PassCheck is consulted by pathfind.Find before it uses an MP as a
// passthrough on a given axis. It keeps pathfind from depending on
// allocator.Request directly: the allocator adapts a Request's
// DenyPass/Passthroughs fields to this interface.
type PassCheck interface {
	// Allowed reports whether a passthrough may be used on dim, and
	// records that the axis was considered regardless
	// of the answer — mirroring _check_deny_pass's FOUND-then-DENY order.
	Allowed(dim int) bool
}

// AlwaysAllowPass is the zero-value PassCheck: no axis denies passthrough.
type AlwaysAllowPass struct{}

// Allowed always returns true.
func (AlwaysAllowPass) Allowed(int) bool { return true }

// RequestPassCheck adapts a per-axis deny mask plus a found-bits
// accumulator to the PassCheck interface.
type RequestPassCheck struct {
	Deny  PassDeny
	Found *PassFound
}

// Allowed marks dim as considered, then reports whether dim is not denied.
func (r RequestPassCheck) Allowed(dim int) bool {
	if r.Found != nil {
		*r.Found |= axisFound[dim]
	}

	return r.Deny&axisDeny[dim] == 0
}

// MP is a single midplane: its position, label, hardware state, and the
// committed (AxisSwitch) plus tentative (AlterSwitch) switch usage on
// each of its four axes.
type MP struct {
	Coord     Coord
	CoordStr  string
	Index     int
	NodeState NodeState
	Used      UsedFlag

	AxisSwitch  [NumAxes]SwitchUsage
	AlterSwitch [NumAxes]SwitchUsage

	// Next holds the ring successor along each axis; Next[dim].Coord
	// differs from Coord only in component dim, wrapped modulo that
	// axis's dimension size.
	Next [NumAxes]*MP

	// Loc is an opaque location label (e.g. "R00-M0") used only by
	// external name lookup; the core never interprets it.
	Loc string
}

// used reports mp_used(mp, dim): whether mp cannot be the body of a new
// block on this axis, either because its committed usage is nonzero or
// because either switch state has WRAPPED set.
func (mp *MP) used(dim int) bool {
	return mp.Used.Committed() != UsedFalse ||
		mp.AxisSwitch[dim].Has(SwitchWrapped) ||
		mp.AlterSwitch[dim].Has(SwitchWrapped)
}

// outUsed reports mp_out_used(mp, dim): whether mp cannot be routed
// through on this axis because its through-wires are already spoken for.
func (mp *MP) outUsed(dim int) bool {
	return mp.AxisSwitch[dim].Has(PassUsed) || mp.AlterSwitch[dim].Has(PassUsed)
}

// UsedOnAxis reports whether mp is unusable as a block body on this axis.
// Exported for pathfind/fill/allocator; the receiver's own invariants
// are otherwise private to fabric.
func (mp *MP) UsedOnAxis(dim int) bool { return mp.used(dim) }

// OutUsedOnAxis reports whether mp's through-wires on this axis are spoken for.
func (mp *MP) OutUsedOnAxis(dim int) bool { return mp.outUsed(dim) }

// Fabric is the 4-D grid of MPs plus the single lock guarding it. All
// public mutators hold mu for their full duration (spec.md §5: the core
// is single-threaded and assumes exclusive access per operation).
type Fabric struct {
	mu   sync.Mutex
	dims Coord
	mps  []MP // flat buffer, row-major over (A,X,Y,Z)
}

// Option configures a Fabric at construction time.
type Option func(*fabricConfig)

type fabricConfig struct {
	nodeStateFn func(c Coord) NodeState
}

// WithNodeStateFn supplies a function used to seed each MP's initial
// NodeState (e.g. reflecting already-known hardware down-state), the Go
// equivalent of init_grid(node_info_ptr) populating state from a node
// list. If fn is nil, this option is a no-op and every MP starts Idle.
func WithNodeStateFn(fn func(c Coord) NodeState) Option {
	return func(cfg *fabricConfig) {
		if fn != nil {
			cfg.nodeStateFn = fn
		}
	}
}
