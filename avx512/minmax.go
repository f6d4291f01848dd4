package avx512

import "github.com/zte-riscv/avx2rvv/rvv"

// MinEpi8 returns the signed 8-bit lane minimum (_mm512_min_epi8).
func MinEpi8(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Int8s(), a.Int8s(), b.Int8s(), rvv.Min[int8])
	return v
}

// MaxEpi8 returns the signed 8-bit lane maximum (_mm512_max_epi8).
func MaxEpi8(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Int8s(), a.Int8s(), b.Int8s(), rvv.Max[int8])
	return v
}

// MinEpi16 returns the signed 16-bit lane minimum (_mm512_min_epi16).
func MinEpi16(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Int16s(), a.Int16s(), b.Int16s(), rvv.Min[int16])
	return v
}

// MaxEpi16 returns the signed 16-bit lane maximum (_mm512_max_epi16).
func MaxEpi16(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Int16s(), a.Int16s(), b.Int16s(), rvv.Max[int16])
	return v
}

// MinEpu8 returns the unsigned 8-bit lane minimum (_mm512_min_epu8).
func MinEpu8(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Uint8s(), a.Uint8s(), b.Uint8s(), rvv.Min[uint8])
	return v
}

// MaxEpu8 returns the unsigned 8-bit lane maximum (_mm512_max_epu8).
func MaxEpu8(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Uint8s(), a.Uint8s(), b.Uint8s(), rvv.Max[uint8])
	return v
}

// MinEpu16 returns the unsigned 16-bit lane minimum (_mm512_min_epu16).
func MinEpu16(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Uint16s(), a.Uint16s(), b.Uint16s(), rvv.Min[uint16])
	return v
}

// MaxEpu16 returns the unsigned 16-bit lane maximum (_mm512_max_epu16).
func MaxEpu16(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Uint16s(), a.Uint16s(), b.Uint16s(), rvv.Max[uint16])
	return v
}

// MaskMinEpu8 returns the unsigned 8-bit minimum in the lanes selected
// by k and src elsewhere (_mm512_mask_min_epu8).
func MaskMinEpu8(src M512i, k Mask64, a, b M512i) M512i {
	var v M512i
	merged2(v.Uint8s(), src.Uint8s(), k.Bit, a.Uint8s(), b.Uint8s(), rvv.Min[uint8])
	return v
}

// MaskMinEpu16 returns the unsigned 16-bit minimum in the lanes selected
// by k and src elsewhere (_mm512_mask_min_epu16).
func MaskMinEpu16(src M512i, k Mask32, a, b M512i) M512i {
	var v M512i
	merged2(v.Uint16s(), src.Uint16s(), k.Bit, a.Uint16s(), b.Uint16s(), rvv.Min[uint16])
	return v
}
