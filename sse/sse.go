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

// Package sse reproduces the narrower 128-bit register family on top of
// the variable-length rvv engine, the same way package avx512 handles
// the wider family. The conformance harness uses these operations as its
// helper pipeline for staging test values.
package sse

import (
	"unsafe"

	"github.com/zte-riscv/avx2rvv/rvv"
)

// M128 is a 128-bit vector of four float32 lanes (__m128).
type M128 struct {
	b [16]byte
}

// Float32s returns the 4-lane float view.
func (v *M128) Float32s() []float32 {
	return unsafe.Slice((*float32)(unsafe.Pointer(&v.b[0])), 4)
}

// Bytes returns the 16-byte view.
func (v *M128) Bytes() []byte { return v.b[:] }

// M128i is a 128-bit integer vector: 16 bytes of packed lanes sharing
// one byte layout across all width views (__m128i).
type M128i struct {
	b [16]byte
}

// Bytes returns the 16-byte view.
func (v *M128i) Bytes() []byte { return v.b[:] }

// Int32s returns the 4-lane signed 32-bit view.
func (v *M128i) Int32s() []int32 {
	return unsafe.Slice((*int32)(unsafe.Pointer(&v.b[0])), 4)
}

// Uint32s returns the 4-lane unsigned 32-bit view.
func (v *M128i) Uint32s() []uint32 {
	return unsafe.Slice((*uint32)(unsafe.Pointer(&v.b[0])), 4)
}

// SetPs builds a vector from four floats (_mm_set_ps). As in the
// fixed-width ISA, arguments arrive high lane first: e0 lands in lane 0.
func SetPs(e3, e2, e1, e0 float32) M128 {
	var v M128
	f := v.Float32s()
	f[0], f[1], f[2], f[3] = e0, e1, e2, e3
	return v
}

// SetzeroPs returns the all-zero float vector (_mm_setzero_ps).
func SetzeroPs() M128 {
	return M128{}
}

// LoadPs loads four floats from mem (_mm_loadu_ps).
func LoadPs(mem []float32) M128 {
	if len(mem) < 4 {
		panic("sse: LoadPs requires 4 lanes")
	}
	var v M128
	lanewise1(v.Float32s(), mem[:4], passthrough[float32])
	return v
}

// StorePs stores the four float lanes of a to mem (_mm_storeu_ps).
func StorePs(mem []float32, a M128) {
	if len(mem) < 4 {
		panic("sse: StorePs requires 4 lanes")
	}
	lanewise1(mem[:4], a.Float32s(), passthrough[float32])
}

// SetEpi32 builds an integer vector from four 32-bit values, high lane
// first (_mm_set_epi32).
func SetEpi32(e3, e2, e1, e0 int32) M128i {
	var v M128i
	p := v.Int32s()
	p[0], p[1], p[2], p[3] = e0, e1, e2, e3
	return v
}

// LoaduEpi32 loads four 32-bit lanes from mem (_mm_loadu_epi32).
func LoaduEpi32(mem []int32) M128i {
	if len(mem) < 4 {
		panic("sse: LoaduEpi32 requires 4 lanes")
	}
	var v M128i
	lanewise1(v.Int32s(), mem[:4], passthrough[int32])
	return v
}

// StoreuEpi32 stores the four 32-bit lanes of a to mem
// (_mm_storeu_epi32).
func StoreuEpi32(mem []int32, a M128i) {
	if len(mem) < 4 {
		panic("sse: StoreuEpi32 requires 4 lanes")
	}
	lanewise1(mem[:4], a.Int32s(), passthrough[int32])
}

// AddPs adds float lanes (_mm_add_ps).
func AddPs(a, b M128) M128 {
	var v M128
	lanewise2(v.Float32s(), a.Float32s(), b.Float32s(), rvv.Add[float32])
	return v
}

// SubPs subtracts float lanes (_mm_sub_ps).
func SubPs(a, b M128) M128 {
	var v M128
	lanewise2(v.Float32s(), a.Float32s(), b.Float32s(), rvv.Sub[float32])
	return v
}

// MulPs multiplies float lanes (_mm_mul_ps).
func MulPs(a, b M128) M128 {
	var v M128
	lanewise2(v.Float32s(), a.Float32s(), b.Float32s(), rvv.Mul[float32])
	return v
}

// MinPs returns the lane-wise float minimum (_mm_min_ps).
func MinPs(a, b M128) M128 {
	var v M128
	lanewise2(v.Float32s(), a.Float32s(), b.Float32s(), rvv.Min[float32])
	return v
}

// MaxPs returns the lane-wise float maximum (_mm_max_ps).
func MaxPs(a, b M128) M128 {
	var v M128
	lanewise2(v.Float32s(), a.Float32s(), b.Float32s(), rvv.Max[float32])
	return v
}

// AddEpi32 adds 32-bit integer lanes with wraparound (_mm_add_epi32).
func AddEpi32(a, b M128i) M128i {
	var v M128i
	lanewise2(v.Int32s(), a.Int32s(), b.Int32s(), rvv.Add[int32])
	return v
}

// SubEpi32 subtracts 32-bit integer lanes with wraparound
// (_mm_sub_epi32).
func SubEpi32(a, b M128i) M128i {
	var v M128i
	lanewise2(v.Int32s(), a.Int32s(), b.Int32s(), rvv.Sub[int32])
	return v
}

// lanewise1 applies a unary engine op across all fixed lanes.
func lanewise1[T rvv.Lanes](dst, a []T, op func(rvv.Vec[T]) rvv.Vec[T]) {
	for base := 0; base < len(dst); {
		vr := op(rvv.Load(a[base:]))
		rvv.Store(vr, dst[base:])
		base += vr.VL()
	}
}

// lanewise2 applies a binary engine op across all fixed lanes.
func lanewise2[T rvv.Lanes](dst, a, b []T, op func(va, vb rvv.Vec[T]) rvv.Vec[T]) {
	for base := 0; base < len(dst); {
		va := rvv.Load(a[base:])
		vb := rvv.Load(b[base:])
		vr := op(va, vb)
		rvv.Store(vr, dst[base:])
		base += vr.VL()
	}
}

// passthrough is the identity engine op.
func passthrough[T rvv.Lanes](v rvv.Vec[T]) rvv.Vec[T] { return v }
