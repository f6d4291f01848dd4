// Copyright 2026 avx2rvv Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avx512

import "github.com/zte-riscv/avx2rvv/rvv"

// Load/store and broadcast translations. Buffers shorter than the fixed
// register are a caller bug, reported by panic, never a truncated load.

// LoaduSi512 loads 64 bytes from mem (_mm512_loadu_si512).
func LoaduSi512(mem []byte) M512i {
	if len(mem) < 64 {
		panic("avx512: LoaduSi512 requires 64 bytes")
	}
	var v M512i
	lanewise1(v.Uint64s(), bytesAsUint64(mem), passthrough[uint64])
	return v
}

// StoreuSi512 stores all 64 bytes of a to mem (_mm512_storeu_si512).
func StoreuSi512(mem []byte, a M512i) {
	if len(mem) < 64 {
		panic("avx512: StoreuSi512 requires 64 bytes")
	}
	lanewise1(bytesAsUint64(mem), a.Uint64s(), passthrough[uint64])
}

// LoaduEpi8 loads 64 signed bytes from mem (_mm512_loadu_epi8).
func LoaduEpi8(mem []int8) M512i {
	if len(mem) < 64 {
		panic("avx512: LoaduEpi8 requires 64 lanes")
	}
	var v M512i
	lanewise1(v.Int8s(), mem[:64], passthrough[int8])
	return v
}

// StoreuEpi8 stores the 64 signed byte lanes of a (_mm512_storeu_epi8).
func StoreuEpi8(mem []int8, a M512i) {
	if len(mem) < 64 {
		panic("avx512: StoreuEpi8 requires 64 lanes")
	}
	lanewise1(mem[:64], a.Int8s(), passthrough[int8])
}

// LoaduEpi16 loads 32 16-bit lanes from mem (_mm512_loadu_epi16).
func LoaduEpi16(mem []int16) M512i {
	if len(mem) < 32 {
		panic("avx512: LoaduEpi16 requires 32 lanes")
	}
	var v M512i
	lanewise1(v.Int16s(), mem[:32], passthrough[int16])
	return v
}

// StoreuEpi16 stores the 32 16-bit lanes of a (_mm512_storeu_epi16).
func StoreuEpi16(mem []int16, a M512i) {
	if len(mem) < 32 {
		panic("avx512: StoreuEpi16 requires 32 lanes")
	}
	lanewise1(mem[:32], a.Int16s(), passthrough[int16])
}

// SetzeroSi512 returns the all-zero vector (_mm512_setzero_si512).
// Every lane reads as 0 through every width view.
func SetzeroSi512() M512i {
	var v M512i
	dst := v.Uint8s()
	for base := 0; base < len(dst); {
		vl := rvv.MaxLanes[uint8]()
		if rest := len(dst) - base; rest < vl {
			vl = rest
		}
		z := rvv.Zero[uint8](vl)
		rvv.Store(z, dst[base:])
		base += z.VL()
	}
	return v
}

// Set1Epi8 broadcasts x to all 64 byte lanes (_mm512_set1_epi8).
func Set1Epi8(x int8) M512i {
	var v M512i
	splatInto(v.Int8s(), x)
	return v
}

// Set1Epi16 broadcasts x to all 32 16-bit lanes (_mm512_set1_epi16).
func Set1Epi16(x int16) M512i {
	var v M512i
	splatInto(v.Int16s(), x)
	return v
}

// MaskSet1Epi8 broadcasts x to the lanes selected by k and keeps src
// elsewhere (_mm512_mask_set1_epi8).
func MaskSet1Epi8(src M512i, k Mask64, x int8) M512i {
	var v M512i
	bcast := Set1Epi8(x)
	merged1(v.Int8s(), src.Int8s(), k.Bit, bcast.Int8s(), passthrough[int8])
	return v
}

// MaskSet1Epi16 broadcasts x to the lanes selected by k and keeps src
// elsewhere (_mm512_mask_set1_epi16).
func MaskSet1Epi16(src M512i, k Mask32, x int16) M512i {
	var v M512i
	bcast := Set1Epi16(x)
	merged1(v.Int16s(), src.Int16s(), k.Bit, bcast.Int16s(), passthrough[int16])
	return v
}

// MaskzSet1Epi8 broadcasts x to the lanes selected by k and zeroes the
// rest (_mm512_maskz_set1_epi8).
func MaskzSet1Epi8(k Mask64, x int8) M512i {
	return MaskSet1Epi8(SetzeroSi512(), k, x)
}

// MaskzSet1Epi16 broadcasts x to the lanes selected by k and zeroes the
// rest (_mm512_maskz_set1_epi16).
func MaskzSet1Epi16(k Mask32, x int16) M512i {
	return MaskSet1Epi16(SetzeroSi512(), k, x)
}

// splatInto fills dst with value using engine broadcasts (vmv.v.x).
func splatInto[T rvv.Lanes](dst []T, value T) {
	for base := 0; base < len(dst); {
		vl := rvv.MaxLanes[T]()
		if rest := len(dst) - base; rest < vl {
			vl = rest
		}
		s := rvv.Splat(value, vl)
		rvv.Store(s, dst[base:])
		base += s.VL()
	}
}
