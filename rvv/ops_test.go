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

package rvv

import (
	"math"
	"testing"
)

func TestLoadGrantsAtMostMaxLanes(t *testing.T) {
	long := make([]int16, MaxLanes[int16]()*3)
	v := Load(long)
	if v.VL() != MaxLanes[int16]() {
		t.Errorf("VL() = %d, want %d", v.VL(), MaxLanes[int16]())
	}

	short := []int16{1, 2, 3}
	v = Load(short)
	if v.VL() != 3 {
		t.Errorf("VL() = %d, want 3 for a short tail", v.VL())
	}
	for i := 0; i < v.VL(); i++ {
		if v.Lane(i) != short[i] {
			t.Errorf("lane %d = %d, want %d", i, v.Lane(i), short[i])
		}
	}
}

func TestStoreWritesGrantedLanesOnly(t *testing.T) {
	src := []int32{10, 20, 30}
	dst := []int32{-1, -1, -1, -1}
	Store(Load(src), dst)
	want := []int32{10, 20, 30, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestSplatPanicsBeyondMaxLanes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Splat over MaxLanes did not panic")
		}
	}()
	Splat(int8(1), MaxLanes[int8]()+1)
}

func TestArithLanewise(t *testing.T) {
	a := Load([]int16{1, -2, 300, -400})
	b := Load([]int16{5, 6, -7, 8})

	tests := []struct {
		name string
		got  Vec[int16]
		want []int16
	}{
		{"add", Add(a, b), []int16{6, 4, 293, -392}},
		{"sub", Sub(a, b), []int16{-4, -8, 307, -408}},
		{"mul", Mul(a, b), []int16{5, -12, -2100, -3200}},
		{"min", Min(a, b), []int16{1, -2, -7, -400}},
		{"max", Max(a, b), []int16{5, 6, 300, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, w := range tt.want {
				if tt.got.Lane(i) != w {
					t.Errorf("lane %d = %d, want %d", i, tt.got.Lane(i), w)
				}
			}
		})
	}
}

func TestAvgURoundsHalfUp(t *testing.T) {
	tests := []struct {
		name string
		a, b uint8
		want uint8
	}{
		{"even sum", 2, 4, 3},
		{"odd sum rounds up", 2, 3, 3},
		{"max operands no overflow", 255, 255, 255},
		{"max plus zero", 255, 0, 128},
		{"near max odd", 254, 255, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := AvgU(Load([]uint8{tt.a}), Load([]uint8{tt.b}))
			if v.Lane(0) != tt.want {
				t.Errorf("AvgU(%d, %d) = %d, want %d", tt.a, tt.b, v.Lane(0), tt.want)
			}
		})
	}
}

func TestAbsWrapsAtMinimum(t *testing.T) {
	v := Abs(Load([]int8{0, 5, -5, math.MinInt8}))
	want := []int8{0, 5, 5, math.MinInt8}
	for i, w := range want {
		if v.Lane(i) != w {
			t.Errorf("lane %d = %d, want %d", i, v.Lane(i), w)
		}
	}
}

func TestSignedSaturation(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int8
		addWant  int8
		subWant  int8
	}{
		{"no overflow", 10, 20, 30, -10},
		{"positive clamp", 100, 100, math.MaxInt8, 0},
		{"negative clamp", -100, 100, 0, math.MinInt8},
		{"min minus one", math.MinInt8, 1, math.MinInt8 + 1, math.MinInt8},
		{"max plus one", math.MaxInt8, 1, math.MaxInt8, math.MaxInt8 - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			av, bv := Load([]int8{tt.a}), Load([]int8{tt.b})
			if got := AddSat(av, bv).Lane(0); got != tt.addWant {
				t.Errorf("AddSat(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.addWant)
			}
			if got := SubSat(av, bv).Lane(0); got != tt.subWant {
				t.Errorf("SubSat(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.subWant)
			}
		})
	}
}

func TestUnsignedSaturation(t *testing.T) {
	tests := []struct {
		name    string
		a, b    uint16
		addWant uint16
		subWant uint16
	}{
		{"no overflow", 10, 20, 30, 0},
		{"add clamps high", math.MaxUint16, 1, math.MaxUint16, math.MaxUint16 - 1},
		{"sub clamps low", 5, 10, 15, 0},
		{"equal operands", 7, 7, 14, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			av, bv := Load([]uint16{tt.a}), Load([]uint16{tt.b})
			if got := AddSatU(av, bv).Lane(0); got != tt.addWant {
				t.Errorf("AddSatU(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.addWant)
			}
			if got := SubSatU(av, bv).Lane(0); got != tt.subWant {
				t.Errorf("SubSatU(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.subWant)
			}
		})
	}
}

func TestShifts(t *testing.T) {
	signed := Load([]int16{1, -1, 0x4000, -0x8000})
	sll := Sll(signed, 1)
	sra := Sra(signed, 1)
	wantSll := []int16{2, -2, -0x8000, 0}
	wantSra := []int16{0, -1, 0x2000, -0x4000}
	for i := 0; i < signed.VL(); i++ {
		if sll.Lane(i) != wantSll[i] {
			t.Errorf("sll lane %d = %d, want %d", i, sll.Lane(i), wantSll[i])
		}
		if sra.Lane(i) != wantSra[i] {
			t.Errorf("sra lane %d = %d, want %d", i, sra.Lane(i), wantSra[i])
		}
	}

	srl := Srl(Load([]uint16{1, 0xFFFF, 0x4000, 0x8000}), 1)
	wantSrl := []uint16{0, 0x7FFF, 0x2000, 0x4000}
	for i, w := range wantSrl {
		if srl.Lane(i) != w {
			t.Errorf("srl lane %d = %d, want %d", i, srl.Lane(i), w)
		}
	}
}

func TestCompareMasks(t *testing.T) {
	a := Load([]int32{1, 2, 3, -4})
	b := Load([]int32{1, 5, 2, -4})

	eq := Eq(a, b)
	lt := Lt(a, b)
	gt := Gt(a, b)

	wantEq := []bool{true, false, false, true}
	wantLt := []bool{false, true, false, false}
	wantGt := []bool{false, false, true, false}
	for i := 0; i < a.VL(); i++ {
		if eq.Bit(i) != wantEq[i] {
			t.Errorf("eq bit %d = %v, want %v", i, eq.Bit(i), wantEq[i])
		}
		if lt.Bit(i) != wantLt[i] {
			t.Errorf("lt bit %d = %v, want %v", i, lt.Bit(i), wantLt[i])
		}
		if gt.Bit(i) != wantGt[i] {
			t.Errorf("gt bit %d = %v, want %v", i, gt.Bit(i), wantGt[i])
		}
	}
	if eq.AllTrue() {
		t.Error("eq.AllTrue() = true with inactive lanes")
	}
	if !Eq(a, a).AllTrue() {
		t.Error("Eq(a, a).AllTrue() = false")
	}
}

func TestMergeSelectsPerLane(t *testing.T) {
	onFalse := Load([]int16{0, 0, 0, 0})
	onTrue := Load([]int16{1, 2, 3, 4})
	k := MaskFromBits[int16](4, func(i int) bool { return i%2 == 0 })
	out := Merge(k, onTrue, onFalse)
	want := []int16{1, 0, 3, 0}
	for i, w := range want {
		if out.Lane(i) != w {
			t.Errorf("lane %d = %d, want %d", i, out.Lane(i), w)
		}
	}
}

func TestMismatchedGrantPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Add with mismatched grants did not panic")
		}
	}()
	Add(Load([]int8{1, 2}), Load([]int8{1, 2, 3}))
}

func TestSetVLENChangesMaxLanes(t *testing.T) {
	orig := VLEN()
	defer SetVLEN(orig)

	for _, bits := range []int{128, 256, 512} {
		SetVLEN(bits)
		if got := MaxLanes[int8](); got != bits/8 {
			t.Errorf("VLEN %d: MaxLanes[int8] = %d, want %d", bits, got, bits/8)
		}
		if got := MaxLanes[int16](); got != bits/16 {
			t.Errorf("VLEN %d: MaxLanes[int16] = %d, want %d", bits, got, bits/16)
		}
	}
}

func TestSetVLENRejectsBadWidths(t *testing.T) {
	for _, bits := range []int{0, 32, 96, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SetVLEN(%d) did not panic", bits)
				}
			}()
			SetVLEN(bits)
		}()
	}
}

func TestRoundingModeMnemonics(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		want string
	}{
		{RNE, "rne"},
		{RTZ, "rtz"},
		{RDN, "rdn"},
		{RUP, "rup"},
		{RMM, "rmm"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("RoundingMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
