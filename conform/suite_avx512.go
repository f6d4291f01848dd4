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

package conform

import (
	"math"

	"github.com/zte-riscv/avx2rvv/avx512"
)

// AVX512Suite returns the ordered catalogue for the wider register
// family. Entries without a body are catalogued operations whose
// translation is deliberately deferred; they report NotImpl, never a
// wrong result.
func AVX512Suite() *Suite {
	return &Suite{
		Name: "avx512",
		Cases: []Case{
			{Name: "mm512_setzero_si512", Run: testSetzeroSi512},
			{Name: "mm512_loadu_epi16", Run: testLoaduEpi16},
			{Name: "mm512_storeu_epi16", Run: testStoreuEpi16},
			{Name: "mm512_loadu_epi8", Run: testLoaduEpi8},
			{Name: "mm512_storeu_epi8", Run: testStoreuEpi8},
			{Name: "mm512_loadu_si512", Run: testLoaduSi512},
			{Name: "mm512_storeu_si512", Run: testStoreuSi512},
			{Name: "mm512_mask_mov_epi16", Run: testMaskMovEpi16},
			{Name: "mm512_maskz_mov_epi16", Run: testMaskzMovEpi16},
			{Name: "mm512_mask_mov_epi8", Run: testMaskMovEpi8},
			{Name: "mm512_maskz_mov_epi8", Run: testMaskzMovEpi8},
			{Name: "mm512_add_epi8", Run: testAddEpi8},
			{Name: "mm512_add_epi16", Run: testAddEpi16},
			{Name: "mm512_sub_epi8", Run: testSubEpi8},
			{Name: "mm512_sub_epi16", Run: testSubEpi16},
			{Name: "mm512_avg_epu8", Run: testAvgEpu8},
			{Name: "mm512_avg_epu16", Run: testAvgEpu16},
			{Name: "mm512_cmpeq_epi8_mask", Run: testCmpeqEpi8Mask},
			{Name: "mm512_cmpeq_epi16_mask", Run: testCmpeqEpi16Mask},
			{Name: "mm512_cmpgt_epi8_mask", Run: testCmpgtEpi8Mask},
			{Name: "mm512_cmpgt_epi16_mask", Run: testCmpgtEpi16Mask},
			{Name: "mm512_min_epi8", Run: testMinEpi8},
			{Name: "mm512_max_epi8", Run: testMaxEpi8},
			{Name: "mm512_min_epi16", Run: testMinEpi16},
			{Name: "mm512_max_epi16", Run: testMaxEpi16},
			{Name: "mm512_min_epu8", Run: testMinEpu8},
			{Name: "mm512_max_epu8", Run: testMaxEpu8},
			{Name: "mm512_min_epu16", Run: testMinEpu16},
			{Name: "mm512_max_epu16", Run: testMaxEpu16},
			{Name: "mm512_mask_min_epu8", Run: testMaskMinEpu8},
			{Name: "mm512_mask_min_epu16", Run: testMaskMinEpu16},
			{Name: "mm512_shuffle_epi8"},
			{Name: "mm512_shufflehi_epi16"},
			{Name: "mm512_shufflelo_epi16"},
			{Name: "mm512_slli_epi16", Run: testSlliEpi16},
			{Name: "mm512_srli_epi16", Run: testSrliEpi16},
			{Name: "mm512_srai_epi16", Run: testSraiEpi16},
			{Name: "mm512_cvtepi16_epi8"},
			{Name: "mm512_cvtepi8_epi16"},
			{Name: "mm512_cvtepu8_epi16"},
			{Name: "mm512_permutexvar_epi16"},
			{Name: "mm512_movepi8_mask"},
			{Name: "mm512_movepi16_mask"},
			{Name: "mm512_movm_epi8"},
			{Name: "mm512_movm_epi16"},
			{Name: "mm512_test_epi8_mask"},
			{Name: "mm512_test_epi16_mask"},
			{Name: "mm512_unpackhi_epi8"},
			{Name: "mm512_unpackhi_epi16"},
			{Name: "mm512_mullo_epi16"},
			{Name: "mm512_mulhi_epi16"},
			{Name: "mm512_mulhi_epu16"},
			{Name: "mm512_mulhrs_epi16"},
			{Name: "mm512_sad_epu8"},
			{Name: "mm512_packs_epi16"},
			{Name: "mm512_alignr_epi8"},
			{Name: "mm512_abs_epi8", Run: testAbsEpi8},
			{Name: "mm512_abs_epi16", Run: testAbsEpi16},
			{Name: "mm512_adds_epi8", Run: testAddsEpi8},
			{Name: "mm512_adds_epi16", Run: testAddsEpi16},
			{Name: "mm512_adds_epu8", Run: testAddsEpu8},
			{Name: "mm512_adds_epu16", Run: testAddsEpu16},
			{Name: "mm512_subs_epi8", Run: testSubsEpi8},
			{Name: "mm512_subs_epi16", Run: testSubsEpi16},
			{Name: "mm512_subs_epu8", Run: testSubsEpu8},
			{Name: "mm512_subs_epu16", Run: testSubsEpu16},
			{Name: "mm512_set1_epi8", Run: testSet1Epi8},
			{Name: "mm512_set1_epi16", Run: testSet1Epi16},
			{Name: "mm512_mask_set1_epi8", Run: testMaskSet1Epi8},
			{Name: "mm512_mask_set1_epi16", Run: testMaskSet1Epi16},
			{Name: "mm512_maskz_set1_epi8", Run: testMaskzSet1Epi8},
			{Name: "mm512_maskz_set1_epi16", Run: testMaskzSet1Epi16},
			{Name: "mm512_mask_blend_epi8", Run: testMaskBlendEpi8},
			{Name: "mm512_mask_blend_epi16", Run: testMaskBlendEpi16},
			{Name: "mm512_mask_loadu_epi8"},
			{Name: "mm512_mask_loadu_epi16"},
			{Name: "mm512_maskz_loadu_epi8"},
			{Name: "mm512_maskz_loadu_epi16"},
			{Name: "mm512_mask_storeu_epi8"},
			{Name: "mm512_mask_storeu_epi16"},
			{Name: "mm512_kunpackd"},
			{Name: "mm512_kunpackw"},
			{Name: "rdtsc"},
		},
	}
}

// maskPattern32 derives a 32-lane selection from the loop counter so
// every window exercises a different active-lane mix.
func maskPattern32(iter uint32) avx512.Mask32 {
	return avx512.Mask32(iter*0x9e3779b9 + 0x5a5a5a5a)
}

// maskPattern64 is maskPattern32 for 64-lane masks.
func maskPattern64(iter uint32) avx512.Mask64 {
	return avx512.Mask64(uint64(iter)*0x9e3779b97f4a7c15 + 0xa5a5a5a5a5a5a5a5)
}

// int16At reads a generated integer as a 16-bit lane value, wrapping
// the window index into the array.
func (r *Runner) int16At(i int) int16 {
	return int16(r.data.Ints[i%NumValues])
}

// int8At is int16At for 8-bit lanes.
func (r *Runner) int8At(i int) int8 {
	return int8(r.data.Ints[i%NumValues])
}

func testSetzeroSi512(r *Runner, iter uint32) Result {
	ret := avx512.SetzeroSi512()
	for _, lane := range ret.Int32s() {
		if lane != 0 {
			return Fail
		}
	}
	return Pass
}

func testLoaduEpi16(r *Runner, iter uint32) Result {
	var data [32]int16
	for j := range data {
		data[j] = int16(iter) + int16(j)
	}
	ret := avx512.LoaduEpi16(data[:])
	got := ret.Int16s()
	for j := range data {
		if got[j] != data[j] {
			return Fail
		}
	}
	return Pass
}

func testStoreuEpi16(r *Runner, iter uint32) Result {
	var data, out [32]int16
	for j := range data {
		data[j] = int16(iter) + int16(j)
	}
	src := avx512.LoaduEpi16(data[:])
	avx512.StoreuEpi16(out[:], src)
	if out != data {
		return Fail
	}
	return Pass
}

func testLoaduEpi8(r *Runner, iter uint32) Result {
	var data [64]int8
	for j := range data {
		data[j] = int8(iter) + int8(j)
	}
	ret := avx512.LoaduEpi8(data[:])
	got := ret.Int8s()
	for j := range data {
		if got[j] != data[j] {
			return Fail
		}
	}
	return Pass
}

func testStoreuEpi8(r *Runner, iter uint32) Result {
	var data, out [64]int8
	for j := range data {
		data[j] = int8(iter) + int8(j)
	}
	src := avx512.LoaduEpi8(data[:])
	avx512.StoreuEpi8(out[:], src)
	if out != data {
		return Fail
	}
	return Pass
}

func testLoaduSi512(r *Runner, iter uint32) Result {
	var data [64]byte
	for j := range data {
		data[j] = byte(iter) + byte(j)
	}
	ret := avx512.LoaduSi512(data[:])
	got := ret.Bytes()
	for j := range data {
		if got[j] != data[j] {
			return Fail
		}
	}
	return Pass
}

func testStoreuSi512(r *Runner, iter uint32) Result {
	var data, out [64]byte
	for j := range data {
		data[j] = byte(iter) + byte(j)
	}
	src := avx512.LoaduSi512(data[:])
	avx512.StoreuSi512(out[:], src)
	if out != data {
		return Fail
	}
	return Pass
}

func testMaskMovEpi16(r *Runner, iter uint32) Result {
	var srcData, aData [32]int16
	for j := range aData {
		srcData[j] = int16(iter) + int16(j)
		aData[j] = int16(iter) + int16(j) + 100
	}
	k := maskPattern32(iter)
	src := avx512.LoaduEpi16(srcData[:])
	a := avx512.LoaduEpi16(aData[:])
	ret := avx512.MaskMovEpi16(src, k, a)
	got := ret.Int16s()
	for j := range got {
		want := srcData[j]
		if k.Bit(j) {
			want = aData[j]
		}
		if got[j] != want {
			return Fail
		}
	}
	return Pass
}

func testMaskzMovEpi16(r *Runner, iter uint32) Result {
	var aData [32]int16
	for j := range aData {
		aData[j] = int16(iter) + int16(j) + 1
	}
	k := maskPattern32(iter)
	a := avx512.LoaduEpi16(aData[:])
	ret := avx512.MaskzMovEpi16(k, a)
	got := ret.Int16s()
	for j := range got {
		var want int16
		if k.Bit(j) {
			want = aData[j]
		}
		if got[j] != want {
			return Fail
		}
	}
	return Pass
}

func testMaskMovEpi8(r *Runner, iter uint32) Result {
	var srcData, aData [64]int8
	for j := range aData {
		srcData[j] = int8(iter) + int8(j)
		aData[j] = int8(iter) + int8(j) + 7
	}
	k := maskPattern64(iter)
	src := avx512.LoaduEpi8(srcData[:])
	a := avx512.LoaduEpi8(aData[:])
	ret := avx512.MaskMovEpi8(src, k, a)
	got := ret.Int8s()
	for j := range got {
		want := srcData[j]
		if k.Bit(j) {
			want = aData[j]
		}
		if got[j] != want {
			return Fail
		}
	}
	return Pass
}

func testMaskzMovEpi8(r *Runner, iter uint32) Result {
	var aData [64]int8
	for j := range aData {
		aData[j] = int8(iter) + int8(j) + 1
	}
	k := maskPattern64(iter)
	a := avx512.LoaduEpi8(aData[:])
	ret := avx512.MaskzMovEpi8(k, a)
	got := ret.Int8s()
	for j := range got {
		var want int8
		if k.Bit(j) {
			want = aData[j]
		}
		if got[j] != want {
			return Fail
		}
	}
	return Pass
}

func testAddEpi8(r *Runner, iter uint32) Result {
	var aData, bData, expected [64]int8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
		expected[j] = aData[j] + bData[j]
	}
	ret := avx512.AddEpi8(avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	got := ret.Int8s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testAddEpi16(r *Runner, iter uint32) Result {
	var aData, bData, expected [32]int16
	for j := range aData {
		aData[j] = int16(iter) + int16(j)
		bData[j] = int16(iter) + int16(j) + 1
		expected[j] = aData[j] + bData[j]
	}
	a := avx512.LoaduEpi16(aData[:])
	b := avx512.LoaduEpi16(bData[:])
	ret := avx512.AddEpi16(a, b)
	got := ret.Int16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testSubEpi8(r *Runner, iter uint32) Result {
	var aData, bData, expected [64]int8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
		expected[j] = aData[j] - bData[j]
	}
	ret := avx512.SubEpi8(avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	got := ret.Int8s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testSubEpi16(r *Runner, iter uint32) Result {
	var aData, bData, expected [32]int16
	for j := range aData {
		aData[j] = int16(iter) + int16(j)
		bData[j] = int16(iter) + int16(j) + 1
		expected[j] = aData[j] - bData[j]
	}
	a := avx512.LoaduEpi16(aData[:])
	b := avx512.LoaduEpi16(bData[:])
	ret := avx512.SubEpi16(a, b)
	got := ret.Int16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testAvgEpu8(r *Runner, iter uint32) Result {
	var aData, bData [64]int8
	var expected [64]uint8
	for j := range aData {
		aData[j] = int8(iter) + int8(j)
		bData[j] = int8(iter) + int8(j) + 1
		expected[j] = uint8((uint32(uint8(aData[j])) + uint32(uint8(bData[j])) + 1) >> 1)
	}
	ret := avx512.AvgEpu8(avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	got := ret.Uint8s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testAvgEpu16(r *Runner, iter uint32) Result {
	var aData, bData [32]int16
	var expected [32]uint16
	for j := range aData {
		aData[j] = int16(iter) + int16(j)
		bData[j] = int16(iter) + int16(j) + 1
		// Rounding average, not truncation.
		expected[j] = uint16((uint32(uint16(aData[j])) + uint32(uint16(bData[j])) + 1) >> 1)
	}
	ret := avx512.AvgEpu16(avx512.LoaduEpi16(aData[:]), avx512.LoaduEpi16(bData[:]))
	got := ret.Uint16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testCmpeqEpi8Mask(r *Runner, iter uint32) Result {
	var aData, bData [64]int8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
	}
	var want avx512.Mask64
	for j := range aData {
		if aData[j] == bData[j] {
			want |= 1 << uint(j)
		}
	}
	ret := avx512.CmpeqEpi8Mask(avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	if ret != want {
		return Fail
	}
	return Pass
}

func testCmpeqEpi16Mask(r *Runner, iter uint32) Result {
	var aData, bData [32]int16
	for j := range aData {
		aData[j] = int16(iter) + int16(j)
		bData[j] = int16(iter) + int16(j)
	}
	a := avx512.LoaduEpi16(aData[:])
	b := avx512.LoaduEpi16(bData[:])
	ret := avx512.CmpeqEpi16Mask(a, b)
	// Every lane equal: the 32-lane mask must be all ones.
	if ret != 0xFFFFFFFF {
		return Fail
	}
	return Pass
}

func testCmpgtEpi8Mask(r *Runner, iter uint32) Result {
	var aData, bData [64]int8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
	}
	var want avx512.Mask64
	for j := range aData {
		if aData[j] > bData[j] {
			want |= 1 << uint(j)
		}
	}
	ret := avx512.CmpgtEpi8Mask(avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	if ret != want {
		return Fail
	}
	return Pass
}

func testCmpgtEpi16Mask(r *Runner, iter uint32) Result {
	var aData, bData [32]int16
	for j := range aData {
		aData[j] = int16(iter) + int16(j) + 10
		bData[j] = int16(iter) + int16(j)
	}
	a := avx512.LoaduEpi16(aData[:])
	b := avx512.LoaduEpi16(bData[:])
	ret := avx512.CmpgtEpi16Mask(a, b)
	// Every a lane exceeds b: all ones.
	if ret != 0xFFFFFFFF {
		return Fail
	}
	return Pass
}

func testMinEpi8(r *Runner, iter uint32) Result {
	var aData, bData, expected [64]int8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
		if aData[j] < bData[j] {
			expected[j] = aData[j]
		} else {
			expected[j] = bData[j]
		}
	}
	ret := avx512.MinEpi8(avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	got := ret.Int8s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testMaxEpi8(r *Runner, iter uint32) Result {
	var aData, bData, expected [64]int8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
		if aData[j] > bData[j] {
			expected[j] = aData[j]
		} else {
			expected[j] = bData[j]
		}
	}
	ret := avx512.MaxEpi8(avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	got := ret.Int8s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testMinEpi16(r *Runner, iter uint32) Result {
	var aData, bData, expected [32]int16
	for j := range aData {
		aData[j] = int16(iter) + int16(j)
		bData[j] = int16(iter) + int16(j) + 5
		if aData[j] < bData[j] {
			expected[j] = aData[j]
		} else {
			expected[j] = bData[j]
		}
	}
	ret := avx512.MinEpi16(avx512.LoaduEpi16(aData[:]), avx512.LoaduEpi16(bData[:]))
	got := ret.Int16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testMaxEpi16(r *Runner, iter uint32) Result {
	var aData, bData, expected [32]int16
	for j := range aData {
		aData[j] = int16(iter) + int16(j)
		bData[j] = int16(iter) + int16(j) + 5
		if aData[j] > bData[j] {
			expected[j] = aData[j]
		} else {
			expected[j] = bData[j]
		}
	}
	ret := avx512.MaxEpi16(avx512.LoaduEpi16(aData[:]), avx512.LoaduEpi16(bData[:]))
	got := ret.Int16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testMinEpu8(r *Runner, iter uint32) Result {
	var aData, bData [64]int8
	var expected [64]uint8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
		ua, ub := uint8(aData[j]), uint8(bData[j])
		if ua < ub {
			expected[j] = ua
		} else {
			expected[j] = ub
		}
	}
	ret := avx512.MinEpu8(avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	got := ret.Uint8s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testMaxEpu8(r *Runner, iter uint32) Result {
	var aData, bData [64]int8
	var expected [64]uint8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
		ua, ub := uint8(aData[j]), uint8(bData[j])
		if ua > ub {
			expected[j] = ua
		} else {
			expected[j] = ub
		}
	}
	ret := avx512.MaxEpu8(avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	got := ret.Uint8s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testMinEpu16(r *Runner, iter uint32) Result {
	var aData, bData [32]int16
	var expected [32]uint16
	for j := range aData {
		aData[j] = int16(iter) + int16(j)
		bData[j] = int16(iter) + int16(j) + 5
		ua, ub := uint16(aData[j]), uint16(bData[j])
		if ua < ub {
			expected[j] = ua
		} else {
			expected[j] = ub
		}
	}
	ret := avx512.MinEpu16(avx512.LoaduEpi16(aData[:]), avx512.LoaduEpi16(bData[:]))
	got := ret.Uint16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testMaxEpu16(r *Runner, iter uint32) Result {
	var aData, bData [32]int16
	var expected [32]uint16
	for j := range aData {
		aData[j] = int16(iter) + int16(j)
		bData[j] = int16(iter) + int16(j) + 5
		ua, ub := uint16(aData[j]), uint16(bData[j])
		if ua > ub {
			expected[j] = ua
		} else {
			expected[j] = ub
		}
	}
	ret := avx512.MaxEpu16(avx512.LoaduEpi16(aData[:]), avx512.LoaduEpi16(bData[:]))
	got := ret.Uint16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testMaskMinEpu8(r *Runner, iter uint32) Result {
	var srcData, aData, bData [64]int8
	for j := range aData {
		srcData[j] = int8(j)
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
	}
	k := maskPattern64(iter)
	ret := avx512.MaskMinEpu8(avx512.LoaduEpi8(srcData[:]), k,
		avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	got := ret.Uint8s()
	for j := range got {
		want := uint8(srcData[j])
		if k.Bit(j) {
			ua, ub := uint8(aData[j]), uint8(bData[j])
			want = ua
			if ub < ua {
				want = ub
			}
		}
		if got[j] != want {
			return Fail
		}
	}
	return Pass
}

func testMaskMinEpu16(r *Runner, iter uint32) Result {
	var srcData, aData, bData [32]int16
	for j := range aData {
		srcData[j] = int16(j)
		aData[j] = r.int16At(int(iter) + j)
		bData[j] = r.int16At(int(iter) + j + 1)
	}
	k := maskPattern32(iter)
	ret := avx512.MaskMinEpu16(avx512.LoaduEpi16(srcData[:]), k,
		avx512.LoaduEpi16(aData[:]), avx512.LoaduEpi16(bData[:]))
	got := ret.Uint16s()
	for j := range got {
		want := uint16(srcData[j])
		if k.Bit(j) {
			ua, ub := uint16(aData[j]), uint16(bData[j])
			want = ua
			if ub < ua {
				want = ub
			}
		}
		if got[j] != want {
			return Fail
		}
	}
	return Pass
}

func testSlliEpi16(r *Runner, iter uint32) Result {
	imm := uint(iter % 18) // counts past 15 must zero the lanes
	var aData [32]int16
	var expected [32]uint16
	for j := range aData {
		aData[j] = r.int16At(int(iter) + j)
		if imm <= 15 {
			expected[j] = uint16(aData[j]) << imm
		}
	}
	ret := avx512.SlliEpi16(avx512.LoaduEpi16(aData[:]), imm)
	got := ret.Uint16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testSrliEpi16(r *Runner, iter uint32) Result {
	imm := uint(iter % 18)
	var aData [32]int16
	var expected [32]uint16
	for j := range aData {
		aData[j] = r.int16At(int(iter) + j)
		if imm <= 15 {
			expected[j] = uint16(aData[j]) >> imm
		}
	}
	ret := avx512.SrliEpi16(avx512.LoaduEpi16(aData[:]), imm)
	got := ret.Uint16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testSraiEpi16(r *Runner, iter uint32) Result {
	imm := uint(iter % 18)
	sh := imm
	if sh > 15 {
		sh = 15 // arithmetic shifts flood with the sign bit
	}
	var aData, expected [32]int16
	for j := range aData {
		aData[j] = r.int16At(int(iter) + j)
		expected[j] = aData[j] >> sh
	}
	ret := avx512.SraiEpi16(avx512.LoaduEpi16(aData[:]), imm)
	got := ret.Int16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testAbsEpi8(r *Runner, iter uint32) Result {
	var aData, expected [64]int8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		expected[j] = aData[j]
		if expected[j] < 0 {
			expected[j] = -expected[j]
		}
	}
	ret := avx512.AbsEpi8(avx512.LoaduEpi8(aData[:]))
	got := ret.Int8s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testAbsEpi16(r *Runner, iter uint32) Result {
	var aData, expected [32]int16
	for j := range aData {
		aData[j] = r.int16At(int(iter) + j)
		expected[j] = aData[j]
		if expected[j] < 0 {
			expected[j] = -expected[j]
		}
	}
	ret := avx512.AbsEpi16(avx512.LoaduEpi16(aData[:]))
	got := ret.Int16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testAddsEpi8(r *Runner, iter uint32) Result {
	var aData, bData, expected [64]int8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
		sum := int16(aData[j]) + int16(bData[j])
		if sum > math.MaxInt8 {
			sum = math.MaxInt8
		} else if sum < math.MinInt8 {
			sum = math.MinInt8
		}
		expected[j] = int8(sum)
	}
	ret := avx512.AddsEpi8(avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	got := ret.Int8s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testAddsEpi16(r *Runner, iter uint32) Result {
	var aData, bData, expected [32]int16
	for j := range aData {
		aData[j] = r.int16At(int(iter) + j)
		bData[j] = r.int16At(int(iter) + j + 1)
		sum := int32(aData[j]) + int32(bData[j])
		if sum > math.MaxInt16 {
			sum = math.MaxInt16
		} else if sum < math.MinInt16 {
			sum = math.MinInt16
		}
		expected[j] = int16(sum)
	}
	ret := avx512.AddsEpi16(avx512.LoaduEpi16(aData[:]), avx512.LoaduEpi16(bData[:]))
	got := ret.Int16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testAddsEpu8(r *Runner, iter uint32) Result {
	var aData, bData [64]int8
	var expected [64]uint8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
		sum := uint16(uint8(aData[j])) + uint16(uint8(bData[j]))
		if sum > math.MaxUint8 {
			sum = math.MaxUint8
		}
		expected[j] = uint8(sum)
	}
	ret := avx512.AddsEpu8(avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	got := ret.Uint8s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testAddsEpu16(r *Runner, iter uint32) Result {
	var aData, bData [32]int16
	var expected [32]uint16
	for j := range aData {
		aData[j] = r.int16At(int(iter) + j)
		bData[j] = r.int16At(int(iter) + j + 1)
		sum := uint32(uint16(aData[j])) + uint32(uint16(bData[j]))
		if sum > math.MaxUint16 {
			sum = math.MaxUint16
		}
		expected[j] = uint16(sum)
	}
	ret := avx512.AddsEpu16(avx512.LoaduEpi16(aData[:]), avx512.LoaduEpi16(bData[:]))
	got := ret.Uint16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testSubsEpi8(r *Runner, iter uint32) Result {
	var aData, bData, expected [64]int8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
		diff := int16(aData[j]) - int16(bData[j])
		if diff > math.MaxInt8 {
			diff = math.MaxInt8
		} else if diff < math.MinInt8 {
			diff = math.MinInt8
		}
		expected[j] = int8(diff)
	}
	ret := avx512.SubsEpi8(avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	got := ret.Int8s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testSubsEpi16(r *Runner, iter uint32) Result {
	var aData, bData, expected [32]int16
	for j := range aData {
		aData[j] = r.int16At(int(iter) + j)
		bData[j] = r.int16At(int(iter) + j + 1)
		diff := int32(aData[j]) - int32(bData[j])
		if diff > math.MaxInt16 {
			diff = math.MaxInt16
		} else if diff < math.MinInt16 {
			diff = math.MinInt16
		}
		expected[j] = int16(diff)
	}
	ret := avx512.SubsEpi16(avx512.LoaduEpi16(aData[:]), avx512.LoaduEpi16(bData[:]))
	got := ret.Int16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testSubsEpu8(r *Runner, iter uint32) Result {
	var aData, bData [64]int8
	var expected [64]uint8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
		ua, ub := uint8(aData[j]), uint8(bData[j])
		if ub > ua {
			expected[j] = 0
		} else {
			expected[j] = ua - ub
		}
	}
	ret := avx512.SubsEpu8(avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	got := ret.Uint8s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testSubsEpu16(r *Runner, iter uint32) Result {
	var aData, bData [32]int16
	var expected [32]uint16
	for j := range aData {
		aData[j] = r.int16At(int(iter) + j)
		bData[j] = r.int16At(int(iter) + j + 1)
		ua, ub := uint16(aData[j]), uint16(bData[j])
		if ub > ua {
			expected[j] = 0
		} else {
			expected[j] = ua - ub
		}
	}
	ret := avx512.SubsEpu16(avx512.LoaduEpi16(aData[:]), avx512.LoaduEpi16(bData[:]))
	got := ret.Uint16s()
	for j := range expected {
		if got[j] != expected[j] {
			return Fail
		}
	}
	return Pass
}

func testSet1Epi8(r *Runner, iter uint32) Result {
	x := int8(iter)
	ret := avx512.Set1Epi8(x)
	for _, lane := range ret.Int8s() {
		if lane != x {
			return Fail
		}
	}
	return Pass
}

func testSet1Epi16(r *Runner, iter uint32) Result {
	x := int16(iter)
	ret := avx512.Set1Epi16(x)
	for _, lane := range ret.Int16s() {
		if lane != x {
			return Fail
		}
	}
	return Pass
}

func testMaskSet1Epi8(r *Runner, iter uint32) Result {
	var srcData [64]int8
	for j := range srcData {
		srcData[j] = int8(j)
	}
	x := int8(iter)
	k := maskPattern64(iter)
	ret := avx512.MaskSet1Epi8(avx512.LoaduEpi8(srcData[:]), k, x)
	got := ret.Int8s()
	for j := range got {
		want := srcData[j]
		if k.Bit(j) {
			want = x
		}
		if got[j] != want {
			return Fail
		}
	}
	return Pass
}

func testMaskSet1Epi16(r *Runner, iter uint32) Result {
	var srcData [32]int16
	for j := range srcData {
		srcData[j] = int16(j)
	}
	x := int16(iter)
	k := maskPattern32(iter)
	ret := avx512.MaskSet1Epi16(avx512.LoaduEpi16(srcData[:]), k, x)
	got := ret.Int16s()
	for j := range got {
		want := srcData[j]
		if k.Bit(j) {
			want = x
		}
		if got[j] != want {
			return Fail
		}
	}
	return Pass
}

func testMaskzSet1Epi8(r *Runner, iter uint32) Result {
	x := int8(iter | 1)
	k := maskPattern64(iter)
	ret := avx512.MaskzSet1Epi8(k, x)
	got := ret.Int8s()
	for j := range got {
		var want int8
		if k.Bit(j) {
			want = x
		}
		if got[j] != want {
			return Fail
		}
	}
	return Pass
}

func testMaskzSet1Epi16(r *Runner, iter uint32) Result {
	x := int16(iter | 1)
	k := maskPattern32(iter)
	ret := avx512.MaskzSet1Epi16(k, x)
	got := ret.Int16s()
	for j := range got {
		var want int16
		if k.Bit(j) {
			want = x
		}
		if got[j] != want {
			return Fail
		}
	}
	return Pass
}

func testMaskBlendEpi8(r *Runner, iter uint32) Result {
	var aData, bData [64]int8
	for j := range aData {
		aData[j] = r.int8At(int(iter) + j)
		bData[j] = r.int8At(int(iter) + j + 1)
	}
	k := maskPattern64(iter)
	ret := avx512.MaskBlendEpi8(k, avx512.LoaduEpi8(aData[:]), avx512.LoaduEpi8(bData[:]))
	got := ret.Int8s()
	for j := range got {
		want := aData[j]
		if k.Bit(j) {
			want = bData[j]
		}
		if got[j] != want {
			return Fail
		}
	}
	return Pass
}

func testMaskBlendEpi16(r *Runner, iter uint32) Result {
	var aData, bData [32]int16
	for j := range aData {
		aData[j] = r.int16At(int(iter) + j)
		bData[j] = r.int16At(int(iter) + j + 1)
	}
	k := maskPattern32(iter)
	ret := avx512.MaskBlendEpi16(k, avx512.LoaduEpi16(aData[:]), avx512.LoaduEpi16(bData[:]))
	got := ret.Int16s()
	for j := range got {
		want := aData[j]
		if k.Bit(j) {
			want = bData[j]
		}
		if got[j] != want {
			return Fail
		}
	}
	return Pass
}
