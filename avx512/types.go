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

// Package avx512 reproduces 512-bit fixed-width vector operations on top
// of the variable-length rvv engine.
//
// Each exported function carries the name and lane-by-lane semantics of
// the corresponding _mm512_* intrinsic: AddEpi16 is _mm512_add_epi16,
// CmpeqEpi16Mask is _mm512_cmpeq_epi16_mask, and so on. The engine's
// register length is only known at runtime and is usually shorter than
// 512 bits, so every operation strip-mines: it issues as many engine
// passes as needed and reassembles the result in original lane order.
package avx512

import "unsafe"

// M512i is a 512-bit integer vector: 64 bytes of packed lanes.
//
// Like the hardware register it models, M512i is a bag of bytes, not a
// tagged value. The view methods reinterpret the same storage as lanes
// of any width and signedness without copying, so a value written
// through one view reads back bit-identical through every other.
// Lane order follows the little-endian memory layout shared by the two
// instruction sets being bridged.
type M512i struct {
	b [64]byte
}

// Bytes returns the 64-byte view.
func (v *M512i) Bytes() []byte { return v.b[:] }

// Int8s returns the 64-lane signed 8-bit view.
func (v *M512i) Int8s() []int8 {
	return unsafe.Slice((*int8)(unsafe.Pointer(&v.b[0])), 64)
}

// Uint8s returns the 64-lane unsigned 8-bit view.
func (v *M512i) Uint8s() []uint8 {
	return v.b[:]
}

// Int16s returns the 32-lane signed 16-bit view.
func (v *M512i) Int16s() []int16 {
	return unsafe.Slice((*int16)(unsafe.Pointer(&v.b[0])), 32)
}

// Uint16s returns the 32-lane unsigned 16-bit view.
func (v *M512i) Uint16s() []uint16 {
	return unsafe.Slice((*uint16)(unsafe.Pointer(&v.b[0])), 32)
}

// Int32s returns the 16-lane signed 32-bit view.
func (v *M512i) Int32s() []int32 {
	return unsafe.Slice((*int32)(unsafe.Pointer(&v.b[0])), 16)
}

// Uint32s returns the 16-lane unsigned 32-bit view.
func (v *M512i) Uint32s() []uint32 {
	return unsafe.Slice((*uint32)(unsafe.Pointer(&v.b[0])), 16)
}

// Int64s returns the 8-lane signed 64-bit view.
func (v *M512i) Int64s() []int64 {
	return unsafe.Slice((*int64)(unsafe.Pointer(&v.b[0])), 8)
}

// Uint64s returns the 8-lane unsigned 64-bit view.
func (v *M512i) Uint64s() []uint64 {
	return unsafe.Slice((*uint64)(unsafe.Pointer(&v.b[0])), 8)
}

// Mask8 is a packed predicate over 8 lanes (__mmask8).
type Mask8 uint8

// Mask16 is a packed predicate over 16 lanes (__mmask16).
type Mask16 uint16

// Mask32 is a packed predicate over 32 lanes (__mmask32).
type Mask32 uint32

// Mask64 is a packed predicate over 64 lanes (__mmask64).
type Mask64 uint64

// Bit reports whether lane i is selected. Bits beyond the declared lane
// count are ignored by the operations that consume the mask.
func (k Mask8) Bit(i int) bool { return k>>uint(i)&1 == 1 }

// Bit reports whether lane i is selected.
func (k Mask16) Bit(i int) bool { return k>>uint(i)&1 == 1 }

// Bit reports whether lane i is selected.
func (k Mask32) Bit(i int) bool { return k>>uint(i)&1 == 1 }

// Bit reports whether lane i is selected.
func (k Mask64) Bit(i int) bool { return k>>uint(i)&1 == 1 }
