package avx512

import "github.com/zte-riscv/avx2rvv/rvv"

// Comparisons produce packed masks, one bit per lane, with the declared
// mask width equal to the lane count. A 32-lane compare that holds in
// every lane yields exactly 0xFFFFFFFF.

// CmpeqEpi8Mask compares 8-bit lanes for equality
// (_mm512_cmpeq_epi8_mask).
func CmpeqEpi8Mask(a, b M512i) Mask64 {
	return Mask64(packedCompare(a.Int8s(), b.Int8s(), rvv.Eq[int8]))
}

// CmpeqEpi16Mask compares 16-bit lanes for equality
// (_mm512_cmpeq_epi16_mask).
func CmpeqEpi16Mask(a, b M512i) Mask32 {
	return Mask32(packedCompare(a.Int16s(), b.Int16s(), rvv.Eq[int16]))
}

// CmpgtEpi8Mask compares signed 8-bit lanes for a > b
// (_mm512_cmpgt_epi8_mask).
func CmpgtEpi8Mask(a, b M512i) Mask64 {
	return Mask64(packedCompare(a.Int8s(), b.Int8s(), rvv.Gt[int8]))
}

// CmpgtEpi16Mask compares signed 16-bit lanes for a > b
// (_mm512_cmpgt_epi16_mask).
func CmpgtEpi16Mask(a, b M512i) Mask32 {
	return Mask32(packedCompare(a.Int16s(), b.Int16s(), rvv.Gt[int16]))
}
