package avx512

import "github.com/zte-riscv/avx2rvv/rvv"

// Immediate shifts on 16-bit lanes. Counts of 16 or more zero the lanes
// (logical) or flood them with the sign bit (arithmetic), matching the
// fixed-width ISA rather than Go's shift semantics.

// SlliEpi16 shifts 16-bit lanes left by imm bits (_mm512_slli_epi16).
func SlliEpi16(a M512i, imm uint) M512i {
	if imm > 15 {
		return SetzeroSi512()
	}
	var v M512i
	lanewise1(v.Uint16s(), a.Uint16s(), func(x rvv.Vec[uint16]) rvv.Vec[uint16] {
		return rvv.Sll(x, imm)
	})
	return v
}

// SrliEpi16 shifts 16-bit lanes right logically by imm bits
// (_mm512_srli_epi16).
func SrliEpi16(a M512i, imm uint) M512i {
	if imm > 15 {
		return SetzeroSi512()
	}
	var v M512i
	lanewise1(v.Uint16s(), a.Uint16s(), func(x rvv.Vec[uint16]) rvv.Vec[uint16] {
		return rvv.Srl(x, imm)
	})
	return v
}

// SraiEpi16 shifts 16-bit lanes right arithmetically by imm bits
// (_mm512_srai_epi16).
func SraiEpi16(a M512i, imm uint) M512i {
	if imm > 15 {
		imm = 15
	}
	var v M512i
	lanewise1(v.Int16s(), a.Int16s(), func(x rvv.Vec[int16]) rvv.Vec[int16] {
		return rvv.Sra(x, imm)
	})
	return v
}
