// Package rvv models a variable-length vector unit in the style of the
// RISC-V Vector extension.
//
// The unit exposes a single capability: request up to N active lanes of a
// given element type, operate on them, and read the results back. The
// number of lanes actually granted ("vl") is bounded by the configured
// vector register length (VLEN) and is only known at runtime, so callers
// that need a fixed lane count must strip-mine: issue passes until every
// lane has been processed, advancing by the vl each pass granted.
//
// Basic usage:
//
//	for base := 0; base < len(dst); {
//		va := rvv.Load(a[base:])
//		vb := rvv.Load(b[base:])
//		vr := rvv.Add(va, vb)
//		rvv.Store(vr, dst[base:])
//		base += vr.VL()
//	}
//
// Vec and Mask values are transient: their lane binding is only valid for
// the instruction sequence that requested it, and they must not be stored
// across operation boundaries.
package rvv

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can occupy vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a vector register group holding vl lanes of type T.
//
// Vec instances should not be created directly; use Load, Splat, or Zero,
// which choose the vl for the current VLEN.
type Vec[T Lanes] struct {
	data []T
}

// VL returns the number of active lanes granted to this vector.
func (v Vec[T]) VL() int {
	return len(v.data)
}

// Lane returns lane i. Out-of-range indices are a contract violation.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// Mask is a per-lane predicate produced by the compare operations and
// consumed by Merge. Like Vec, it is transient.
type Mask[T Lanes] struct {
	bits []bool
}

// VL returns the number of lanes covered by this mask.
func (m Mask[T]) VL() int {
	return len(m.bits)
}

// Bit reports whether lane i is active.
func (m Mask[T]) Bit(i int) bool {
	return m.bits[i]
}

// AllTrue reports whether every lane of the mask is active.
func (m Mask[T]) AllTrue() bool {
	for _, b := range m.bits {
		if !b {
			return false
		}
	}
	return true
}

// MaskFromBits builds a mask for vl lanes where lane i is active iff
// bit(i) reports true. This is how packed fixed-width operation masks are
// expanded into per-lane predicates.
func MaskFromBits[T Lanes](vl int, bit func(i int) bool) Mask[T] {
	bits := make([]bool, vl)
	for i := range bits {
		bits[i] = bit(i)
	}
	return Mask[T]{bits: bits}
}
