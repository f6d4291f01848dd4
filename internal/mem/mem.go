// Package mem provides scratch buffers aligned to the vector unit's
// natural boundary. The harness allocates these once per session and
// reuses them for every load/store round-trip.
package mem

import "unsafe"

// AlignedBytes returns an n-byte slice whose first element sits on an
// align-byte boundary. align must be a power of two.
func AlignedBytes(n, align int) []byte {
	if align <= 0 || align&(align-1) != 0 {
		panic("mem: alignment must be a power of two")
	}
	buf := make([]byte, n+align)
	off := int(-uintptr(unsafe.Pointer(&buf[0])) & uintptr(align-1))
	return buf[off : off+n : off+n]
}

// AlignedFloat32 returns an n-element float32 slice aligned to align
// bytes.
func AlignedFloat32(n, align int) []float32 {
	b := AlignedBytes(n*4, align)
	return unsafe.Slice((*float32)(unsafe.Pointer(&b[0])), n)
}

// AlignedInt32 returns an n-element int32 slice aligned to align bytes.
func AlignedInt32(n, align int) []int32 {
	b := AlignedBytes(n*4, align)
	return unsafe.Slice((*int32)(unsafe.Pointer(&b[0])), n)
}
