package allocator

import (
	"fmt"

	"github.com/holodeck-hpc/torusba/fabric"
	"github.com/holodeck-hpc/torusba/geoseq"
)

// Request describes one block allocation attempt: a requested geometry
// (or a sequence of candidate geometries in preference order), an
// optional starting position, per-axis connectivity, and passthrough
// policy. Allocate fills in Passthroughs and SaveName on success.
// Implements spec.md §3.6 / select_ba_request_t.
type Request struct {
	// Start is the coordinate to begin searching from. Only
	// consulted if StartReq is true; otherwise Allocate starts at
	// the origin and walks every position.
	Start    fabric.Coord
	StartReq bool

	// Geometry is the requested block shape. A zero Coord means "let
	// Geometries enumerate candidates instead"; Geometries must then
	// be supplied via WithGeometries.
	Geometry fabric.Coord
	Size     int

	// ConnType is the per-axis connectivity; ConnType[0] == Small
	// marks this as a single-midplane sub-block request, ignoring
	// every other axis.
	ConnType [fabric.NumAxes]fabric.ConnType

	DenyPass fabric.PassDeny

	// Rotate tells Allocate itself to walk RotateGeo's 24-orientation
	// cycle for each candidate geometry that doesn't otherwise fit.
	Rotate bool

	// Elongate tunes whatever builds Geometries (the external
	// geometry-table oracle), not Allocate: Allocate already walks
	// every entry Geometries offers regardless of this flag, so
	// elongated variants of a requested size reach Allocate the same
	// way any other candidate does — as one more Geometries entry, via
	// WithGeometries. This field exists so a Request can carry that
	// preference alongside the rest of its tuning for logging/
	// construction purposes, the way print_ba_request reports it.
	Elongate bool

	// Geometries enumerates candidate geometries in preference
	// order; Allocate advances it whenever the current candidate is
	// out of range or exhausts every start position. Defaults to a
	// one-shot geoseq.Single wrapping Geometry.
	Geometries geoseq.Sequence

	// Passthroughs, SaveName, and Block are set by Allocate on success.
	Passthroughs fabric.PassFound
	SaveName     string
	Block        Block
}

// Option configures a Request at construction time.
type Option func(*Request)

// WithStart sets a fixed starting coordinate; Allocate will not try
// any other position if this candidate geometry doesn't fit there.
func WithStart(c fabric.Coord) Option {
	return func(r *Request) {
		r.Start = c
		r.StartReq = true
	}
}

// WithConnType sets the per-axis connectivity, overriding the default
// of Torus on every axis.
func WithConnType(ct [fabric.NumAxes]fabric.ConnType) Option {
	return func(r *Request) { r.ConnType = ct }
}

// WithDenyPass sets the per-axis passthrough-deny mask.
func WithDenyPass(deny fabric.PassDeny) Option {
	return func(r *Request) { r.DenyPass = deny }
}

// WithRotate allows Allocate to walk RotateGeo's 24-step cycle when a
// geometry doesn't fit as given.
func WithRotate() Option {
	return func(r *Request) { r.Rotate = true }
}

// WithElongate records a preference for elongated geometry variants.
// It does not itself change Allocate's search: supply those variants
// as additional Geometries entries (via WithGeometries) for Allocate
// to walk them.
func WithElongate() Option {
	return func(r *Request) { r.Elongate = true }
}

// WithGeometries overrides the default one-shot Geometries sequence,
// letting Allocate walk an externally-supplied enumeration of
// candidate shapes (e.g. every elongation of a requested size, in
// preference order).
func WithGeometries(seq geoseq.Sequence) Option {
	return func(r *Request) { r.Geometries = seq }
}

// NewRequest validates geometry against f's dimensions and any
// requested start against f's range, implementing spec.md §4.5 /
// new_ba_request. A zero geometry is valid only alongside
// WithGeometries; Allocate then draws its first candidate from there.
func NewRequest(f *fabric.Fabric, geometry fabric.Coord, opts ...Option) (*Request, error) {
	r := &Request{
		Geometry: geometry,
		ConnType: [fabric.NumAxes]fabric.ConnType{fabric.Torus, fabric.Torus, fabric.Torus, fabric.Torus},
	}
	for _, opt := range opts {
		opt(r)
	}

	dims := f.Dims()
	if geometry != (fabric.Coord{}) {
		size := 1
		for d := 0; d < fabric.NumAxes; d++ {
			if geometry[d] < 1 {
				return nil, fmt.Errorf("allocator: geometry[%d]=%d must be >= 1: %w", d, geometry[d], ErrInvalidRequest)
			}
			// A per-axis component beyond this axis's own dimension is
			// only rejected up front when rotation can't reassign it to
			// a different axis; with WithRotate, Allocate's own
			// geometryFits check during the rotation walk is the real
			// gate (see tryRotations).
			if !r.Rotate && geometry[d] > dims[d] {
				return nil, fmt.Errorf("allocator: geometry[%d]=%d not in [1,%d]: %w", d, geometry[d], dims[d], ErrInvalidRequest)
			}
			size *= geometry[d]
		}
		r.Size = size
		if r.Geometries == nil {
			r.Geometries = geoseq.Single(geometry)
		}
	} else if r.Geometries == nil {
		return nil, fmt.Errorf("allocator: no geometry or geometry sequence given: %w", ErrInvalidRequest)
	}

	if r.StartReq && !f.InRange(r.Start) {
		return nil, fmt.Errorf("allocator: start %v out of range: %w", r.Start, ErrInvalidRequest)
	}

	return r, nil
}

// String renders the request for logging, mirroring print_ba_request.
func (r *Request) String() string {
	return fmt.Sprintf("ba_request: geometry=%v conn_type=%v size=%d rotate=%t elongate=%t",
		r.Geometry, r.ConnType, r.Size, r.Rotate, r.Elongate)
}
