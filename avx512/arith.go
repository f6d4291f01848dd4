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

// AddEpi8 adds 8-bit lanes with wraparound (_mm512_add_epi8).
func AddEpi8(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Int8s(), a.Int8s(), b.Int8s(), rvv.Add[int8])
	return v
}

// AddEpi16 adds 16-bit lanes with wraparound (_mm512_add_epi16).
func AddEpi16(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Int16s(), a.Int16s(), b.Int16s(), rvv.Add[int16])
	return v
}

// SubEpi8 subtracts 8-bit lanes with wraparound (_mm512_sub_epi8).
func SubEpi8(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Int8s(), a.Int8s(), b.Int8s(), rvv.Sub[int8])
	return v
}

// SubEpi16 subtracts 16-bit lanes with wraparound (_mm512_sub_epi16).
func SubEpi16(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Int16s(), a.Int16s(), b.Int16s(), rvv.Sub[int16])
	return v
}

// AvgEpu8 averages unsigned 8-bit lanes, rounding half up to
// (a+b+1)>>1 exactly (_mm512_avg_epu8). Plain truncating division
// would be off by one on odd sums.
func AvgEpu8(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Uint8s(), a.Uint8s(), b.Uint8s(), rvv.AvgU[uint8])
	return v
}

// AvgEpu16 averages unsigned 16-bit lanes, rounding half up
// (_mm512_avg_epu16).
func AvgEpu16(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Uint16s(), a.Uint16s(), b.Uint16s(), rvv.AvgU[uint16])
	return v
}

// AbsEpi8 takes the absolute value of 8-bit lanes (_mm512_abs_epi8).
// math.MinInt8 stays math.MinInt8, as on hardware.
func AbsEpi8(a M512i) M512i {
	var v M512i
	lanewise1(v.Int8s(), a.Int8s(), rvv.Abs[int8])
	return v
}

// AbsEpi16 takes the absolute value of 16-bit lanes (_mm512_abs_epi16).
func AbsEpi16(a M512i) M512i {
	var v M512i
	lanewise1(v.Int16s(), a.Int16s(), rvv.Abs[int16])
	return v
}

// AddsEpi8 adds signed 8-bit lanes, saturating at the type bounds
// (_mm512_adds_epi8).
func AddsEpi8(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Int8s(), a.Int8s(), b.Int8s(), rvv.AddSat[int8])
	return v
}

// AddsEpi16 adds signed 16-bit lanes with saturation (_mm512_adds_epi16).
func AddsEpi16(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Int16s(), a.Int16s(), b.Int16s(), rvv.AddSat[int16])
	return v
}

// AddsEpu8 adds unsigned 8-bit lanes, saturating at 0xFF
// (_mm512_adds_epu8).
func AddsEpu8(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Uint8s(), a.Uint8s(), b.Uint8s(), rvv.AddSatU[uint8])
	return v
}

// AddsEpu16 adds unsigned 16-bit lanes, saturating at 0xFFFF
// (_mm512_adds_epu16).
func AddsEpu16(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Uint16s(), a.Uint16s(), b.Uint16s(), rvv.AddSatU[uint16])
	return v
}

// SubsEpi8 subtracts signed 8-bit lanes with saturation
// (_mm512_subs_epi8).
func SubsEpi8(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Int8s(), a.Int8s(), b.Int8s(), rvv.SubSat[int8])
	return v
}

// SubsEpi16 subtracts signed 16-bit lanes with saturation
// (_mm512_subs_epi16).
func SubsEpi16(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Int16s(), a.Int16s(), b.Int16s(), rvv.SubSat[int16])
	return v
}

// SubsEpu8 subtracts unsigned 8-bit lanes, saturating at 0
// (_mm512_subs_epu8).
func SubsEpu8(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Uint8s(), a.Uint8s(), b.Uint8s(), rvv.SubSatU[uint8])
	return v
}

// SubsEpu16 subtracts unsigned 16-bit lanes, saturating at 0
// (_mm512_subs_epu16).
func SubsEpu16(a, b M512i) M512i {
	var v M512i
	lanewise2(v.Uint16s(), a.Uint16s(), b.Uint16s(), rvv.SubSatU[uint16])
	return v
}
