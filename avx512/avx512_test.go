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

import (
	"math"
	"testing"

	"github.com/zte-riscv/avx2rvv/rvv"
)

func epi16(vals func(j int) int16) M512i {
	var data [32]int16
	for j := range data {
		data[j] = vals(j)
	}
	return LoaduEpi16(data[:])
}

func epi8(vals func(j int) int8) M512i {
	var data [64]int8
	for j := range data {
		data[j] = vals(j)
	}
	return LoaduEpi8(data[:])
}

func TestSetzeroAllViewsZero(t *testing.T) {
	v := SetzeroSi512()
	for i, b := range v.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, b)
		}
	}
	for i, lane := range v.Int64s() {
		if lane != 0 {
			t.Fatalf("int64 lane %d = %d, want 0", i, lane)
		}
	}
}

func TestLoadStoreRoundTrip(t *testing.T) {
	var data, out [32]int16
	for j := range data {
		data[j] = int16(j*7 - 100)
	}
	StoreuEpi16(out[:], LoaduEpi16(data[:]))
	if out != data {
		t.Errorf("round trip changed data: got %v", out)
	}

	var raw, rawOut [64]byte
	for j := range raw {
		raw[j] = byte(j * 3)
	}
	StoreuSi512(rawOut[:], LoaduSi512(raw[:]))
	if rawOut != raw {
		t.Errorf("byte round trip changed data: got %v", rawOut)
	}
}

func TestShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("LoaduSi512 on a short buffer did not panic")
		}
	}()
	LoaduSi512(make([]byte, 63))
}

func TestAddEpi16Wraparound(t *testing.T) {
	a := epi16(func(j int) int16 { return math.MaxInt16 })
	b := epi16(func(j int) int16 { return 1 })
	ret := AddEpi16(a, b)
	for j, lane := range ret.Int16s() {
		if lane != math.MinInt16 {
			t.Errorf("lane %d = %d, want wraparound to %d", j, lane, math.MinInt16)
		}
	}
}

func TestAvgEpu16RoundsHalfUp(t *testing.T) {
	a := epi16(func(j int) int16 { return int16(uint16(2*j + 1)) })
	b := epi16(func(j int) int16 { return int16(uint16(2 * j)) })
	ret := AvgEpu16(a, b)
	for j, lane := range ret.Uint16s() {
		want := uint16((uint32(2*j+1) + uint32(2*j) + 1) >> 1)
		if lane != want {
			t.Errorf("lane %d = %d, want %d", j, lane, want)
		}
	}
}

func TestSaturationClamps(t *testing.T) {
	tests := []struct {
		name string
		got  M512i
		want int16
	}{
		{
			"adds clamps high",
			AddsEpi16(epi16(func(int) int16 { return math.MaxInt16 }), epi16(func(int) int16 { return 100 })),
			math.MaxInt16,
		},
		{
			"adds clamps low",
			AddsEpi16(epi16(func(int) int16 { return math.MinInt16 }), epi16(func(int) int16 { return -100 })),
			math.MinInt16,
		},
		{
			"subs clamps low",
			SubsEpi16(epi16(func(int) int16 { return math.MinInt16 }), epi16(func(int) int16 { return 100 })),
			math.MinInt16,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for j, lane := range tt.got.Int16s() {
				if lane != tt.want {
					t.Errorf("lane %d = %d, want %d", j, lane, tt.want)
				}
			}
		})
	}

	u := SubsEpu8(epi8(func(int) int8 { return 10 }), epi8(func(int) int8 { return 20 }))
	for j, lane := range u.Uint8s() {
		if lane != 0 {
			t.Errorf("lane %d = %d, want unsigned floor 0", j, lane)
		}
	}
}

func TestCmpeqAllEqualIsAllOnes(t *testing.T) {
	a := epi16(func(j int) int16 { return int16(j) })
	if k := CmpeqEpi16Mask(a, a); k != 0xFFFFFFFF {
		t.Errorf("mask = %#x, want all ones", k)
	}
	b := epi16(func(j int) int16 { return int16(j) + 1 })
	if k := CmpeqEpi16Mask(a, b); k != 0 {
		t.Errorf("mask = %#x, want 0", k)
	}
}

func TestCmpgtEpi8PacksPerLane(t *testing.T) {
	a := epi8(func(j int) int8 { return int8(j) })
	b := epi8(func(j int) int8 { return 10 })
	k := CmpgtEpi8Mask(a, b)
	for j := 0; j < 64; j++ {
		want := int8(j) > 10
		if k.Bit(j) != want {
			t.Errorf("bit %d = %v, want %v", j, k.Bit(j), want)
		}
	}
}

func TestMaskMovMergesNotPassesThrough(t *testing.T) {
	src := epi16(func(j int) int16 { return int16(j) })
	a := epi16(func(j int) int16 { return int16(-j - 1) })
	k := Mask32(0x0F0F0F0F)
	ret := MaskMovEpi16(src, k, a)
	for j, lane := range ret.Int16s() {
		want := int16(j)
		if k.Bit(j) {
			want = int16(-j - 1)
		}
		if lane != want {
			t.Errorf("lane %d = %d, want %d", j, lane, want)
		}
	}
}

func TestMaskzSet1ZeroesInactiveLanes(t *testing.T) {
	ret := MaskzSet1Epi8(Mask64(0xAAAAAAAAAAAAAAAA), 42)
	for j, lane := range ret.Int8s() {
		var want int8
		if j%2 == 1 {
			want = 42
		}
		if lane != want {
			t.Errorf("lane %d = %d, want %d", j, lane, want)
		}
	}
}

func TestShiftCountSaturation(t *testing.T) {
	a := epi16(func(j int) int16 { return int16(j - 16) })
	sll := SlliEpi16(a, 16)
	for j, lane := range sll.Uint16s() {
		if lane != 0 {
			t.Errorf("slli 16 lane %d = %d, want 0", j, lane)
		}
	}
	srl := SrliEpi16(a, 20)
	for j, lane := range srl.Uint16s() {
		if lane != 0 {
			t.Errorf("srli 20 lane %d = %d, want 0", j, lane)
		}
	}
	sra := SraiEpi16(a, 16)
	for j, lane := range sra.Int16s() {
		want := int16(0)
		if j < 16 {
			want = -1
		}
		if lane != want {
			t.Errorf("srai 16 lane %d = %d, want %d", j, lane, want)
		}
	}
}

// The fixed-width result must not depend on how many engine passes the
// current VLEN forces.
func TestResultsIndependentOfVLEN(t *testing.T) {
	orig := rvv.VLEN()
	defer rvv.SetVLEN(orig)

	a := epi8(func(j int) int8 { return int8(j*5 - 100) })
	b := epi8(func(j int) int8 { return int8(60 - j*3) })

	type outputs struct {
		add  [64]int8
		sat  [64]int8
		avg  [64]uint8
		mask Mask64
	}
	capture := func() outputs {
		var o outputs
		add := AddEpi8(a, b)
		sat := AddsEpi8(a, b)
		avg := AvgEpu8(a, b)
		copy(o.add[:], add.Int8s())
		copy(o.sat[:], sat.Int8s())
		copy(o.avg[:], avg.Uint8s())
		o.mask = CmpgtEpi8Mask(a, b)
		return o
	}

	rvv.SetVLEN(512)
	want := capture()
	for _, bits := range []int{64, 128, 256, 1024} {
		rvv.SetVLEN(bits)
		if got := capture(); got != want {
			t.Errorf("VLEN %d diverged from VLEN 512 results", bits)
		}
	}
}

func TestRoundingToFRM(t *testing.T) {
	tests := []struct {
		name string
		mode uint8
		want rvv.RoundingMode
	}{
		{"nearest int", RoundToNearestInt, rvv.RNE},
		{"toward neg inf", RoundToNegInf, rvv.RDN},
		{"toward pos inf", RoundToPosInf, rvv.RUP},
		{"toward zero", RoundToZero, rvv.RTZ},
		{"current direction", RoundCurDirection, rvv.RNE},
		{"no exc flag ignored", RoundToZero | RoundNoExc, rvv.RTZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundingToFRM(tt.mode); got != tt.want {
				t.Errorf("RoundingToFRM(%#x) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}
