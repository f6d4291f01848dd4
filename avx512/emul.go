package avx512

import (
	"unsafe"

	"github.com/zte-riscv/avx2rvv/rvv"
)

// Strip-mining plumbing shared by every translation in this package.
// Lane i of every output equals the fixed-width definition of lane i no
// matter how many engine passes the current VLEN forces.

// lanewise1 applies a unary engine op across all fixed lanes.
func lanewise1[T rvv.Lanes](dst, a []T, op func(rvv.Vec[T]) rvv.Vec[T]) {
	for base := 0; base < len(dst); {
		vr := op(rvv.Load(a[base:]))
		rvv.Store(vr, dst[base:])
		base += vr.VL()
	}
}

// lanewise2 applies a binary engine op across all fixed lanes.
func lanewise2[T rvv.Lanes](dst, a, b []T, op func(va, vb rvv.Vec[T]) rvv.Vec[T]) {
	for base := 0; base < len(dst); {
		va := rvv.Load(a[base:])
		vb := rvv.Load(b[base:])
		vr := op(va, vb)
		rvv.Store(vr, dst[base:])
		base += vr.VL()
	}
}

// merged2 applies a binary engine op under a packed mask: computed lanes
// where bit(i) is set, src lanes elsewhere. Inactive lanes are merged
// from src, never passed through undefined.
func merged2[T rvv.Lanes](dst, src []T, bit func(int) bool, a, b []T, op func(va, vb rvv.Vec[T]) rvv.Vec[T]) {
	for base := 0; base < len(dst); {
		va := rvv.Load(a[base:])
		vb := rvv.Load(b[base:])
		vsrc := rvv.Load(src[base:])
		vr := op(va, vb)
		off := base
		m := rvv.MaskFromBits[T](vr.VL(), func(i int) bool { return bit(off + i) })
		out := rvv.Merge(m, vr, vsrc)
		rvv.Store(out, dst[base:])
		base += out.VL()
	}
}

// merged1 is merged2 for unary ops (mask_mov, mask_set1, blends).
func merged1[T rvv.Lanes](dst, src []T, bit func(int) bool, a []T, op func(rvv.Vec[T]) rvv.Vec[T]) {
	for base := 0; base < len(dst); {
		va := rvv.Load(a[base:])
		vsrc := rvv.Load(src[base:])
		vr := op(va)
		off := base
		m := rvv.MaskFromBits[T](vr.VL(), func(i int) bool { return bit(off + i) })
		out := rvv.Merge(m, vr, vsrc)
		rvv.Store(out, dst[base:])
		base += out.VL()
	}
}

// packedCompare runs a compare across all fixed lanes and packs each
// per-lane predicate into bit i of the result, all-ones or all-zeros per
// lane as the mask contract requires.
func packedCompare[T rvv.Lanes](a, b []T, pred func(va, vb rvv.Vec[T]) rvv.Mask[T]) uint64 {
	var packed uint64
	for base := 0; base < len(a); {
		va := rvv.Load(a[base:])
		vb := rvv.Load(b[base:])
		m := pred(va, vb)
		for i := 0; i < m.VL(); i++ {
			if m.Bit(i) {
				packed |= 1 << uint(base+i)
			}
		}
		base += m.VL()
	}
	return packed
}

// passthrough is the identity engine op, used by the move family.
func passthrough[T rvv.Lanes](v rvv.Vec[T]) rvv.Vec[T] { return v }

// bytesAsUint64 reinterprets a byte buffer as 64-bit lanes so whole
// registers move in e64 passes (vle64/vse64). Unaligned buffers are
// fine on the little-endian targets this package bridges.
func bytesAsUint64(b []byte) []uint64 {
	return unsafe.Slice((*uint64)(unsafe.Pointer(&b[0])), len(b)/8)
}
