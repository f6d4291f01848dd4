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

package sse

import "testing"

func TestSetPsArgumentOrder(t *testing.T) {
	// High lane first, so the last argument is lane zero.
	a := SetPs(4, 3, 2, 1)
	want := []float32{1, 2, 3, 4}
	for i, w := range want {
		if a.Float32s()[i] != w {
			t.Errorf("lane %d = %v, want %v", i, a.Float32s()[i], w)
		}
	}
}

func TestSetEpi32ArgumentOrder(t *testing.T) {
	a := SetEpi32(-4, 3, -2, 1)
	want := []int32{1, -2, 3, -4}
	for i, w := range want {
		if a.Int32s()[i] != w {
			t.Errorf("lane %d = %v, want %v", i, a.Int32s()[i], w)
		}
	}
}

func TestLoadStoreRoundTrip(t *testing.T) {
	src := []float32{1.5, -2.25, 3.75, -0.5}
	dst := make([]float32, 4)
	StorePs(dst, LoadPs(src))
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("float lane %d = %v, want %v", i, dst[i], src[i])
		}
	}

	ints := []int32{1, -2, 3, -4}
	intOut := make([]int32, 4)
	StoreuEpi32(intOut, LoaduEpi32(ints))
	for i := range ints {
		if intOut[i] != ints[i] {
			t.Errorf("int lane %d = %v, want %v", i, intOut[i], ints[i])
		}
	}
}

func TestShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("LoadPs on a short buffer did not panic")
		}
	}()
	LoadPs([]float32{1, 2, 3})
}

func TestFloatArith(t *testing.T) {
	a := SetPs(8, 6, 4, 2)
	b := SetPs(1, 2, 3, 4)

	tests := []struct {
		name string
		got  M128
		want []float32
	}{
		{"add", AddPs(a, b), []float32{6, 7, 8, 9}},
		{"sub", SubPs(a, b), []float32{-2, 1, 4, 7}},
		{"mul", MulPs(a, b), []float32{8, 12, 12, 8}},
		{"min", MinPs(a, b), []float32{2, 3, 2, 1}},
		{"max", MaxPs(a, b), []float32{4, 4, 6, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, w := range tt.want {
				if tt.got.Float32s()[i] != w {
					t.Errorf("lane %d = %v, want %v", i, tt.got.Float32s()[i], w)
				}
			}
		})
	}
}

func TestIntArith(t *testing.T) {
	a := SetEpi32(40, 30, 20, 10)
	b := SetEpi32(4, 3, 2, 1)

	sum := AddEpi32(a, b)
	diff := SubEpi32(a, b)
	wantSum := []int32{11, 22, 33, 44}
	wantDiff := []int32{9, 18, 27, 36}
	for i := range wantSum {
		if sum.Int32s()[i] != wantSum[i] {
			t.Errorf("add lane %d = %d, want %d", i, sum.Int32s()[i], wantSum[i])
		}
		if diff.Int32s()[i] != wantDiff[i] {
			t.Errorf("sub lane %d = %d, want %d", i, diff.Int32s()[i], wantDiff[i])
		}
	}
}

func TestSetzeroPs(t *testing.T) {
	z := SetzeroPs()
	for i, lane := range z.Float32s() {
		if lane != 0 {
			t.Errorf("lane %d = %v, want 0", i, lane)
		}
	}
}
