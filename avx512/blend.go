package avx512

// The move/blend family: every inactive lane is filled from an explicit
// source operand, never left undefined.

// MaskMovEpi8 copies the 8-bit lanes of a selected by k and keeps src
// elsewhere (_mm512_mask_mov_epi8).
func MaskMovEpi8(src M512i, k Mask64, a M512i) M512i {
	var v M512i
	merged1(v.Int8s(), src.Int8s(), k.Bit, a.Int8s(), passthrough[int8])
	return v
}

// MaskMovEpi16 copies the 16-bit lanes of a selected by k and keeps src
// elsewhere (_mm512_mask_mov_epi16).
func MaskMovEpi16(src M512i, k Mask32, a M512i) M512i {
	var v M512i
	merged1(v.Int16s(), src.Int16s(), k.Bit, a.Int16s(), passthrough[int16])
	return v
}

// MaskzMovEpi8 copies the 8-bit lanes of a selected by k and zeroes the
// rest (_mm512_maskz_mov_epi8).
func MaskzMovEpi8(k Mask64, a M512i) M512i {
	return MaskMovEpi8(SetzeroSi512(), k, a)
}

// MaskzMovEpi16 copies the 16-bit lanes of a selected by k and zeroes
// the rest (_mm512_maskz_mov_epi16).
func MaskzMovEpi16(k Mask32, a M512i) M512i {
	return MaskMovEpi16(SetzeroSi512(), k, a)
}

// MaskBlendEpi8 picks the 8-bit lanes of b where k is set and a
// elsewhere (_mm512_mask_blend_epi8).
func MaskBlendEpi8(k Mask64, a, b M512i) M512i {
	return MaskMovEpi8(a, k, b)
}

// MaskBlendEpi16 picks the 16-bit lanes of b where k is set and a
// elsewhere (_mm512_mask_blend_epi16).
func MaskBlendEpi16(k Mask32, a, b M512i) M512i {
	return MaskMovEpi16(a, k, b)
}
