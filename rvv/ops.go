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

import "unsafe"

// This file provides the operation set of the modeled vector unit. Each
// function corresponds to one RVV instruction class (vle/vse, vadd.vv,
// vaaddu.vv, vmerge.vvm, vmseq.vv, ...) and operates on however many
// lanes its operands were granted.

// Load requests min(MaxLanes, len(src)) lanes and fills them from src.
// This is the vsetvl+vle pair: the caller asks for len(src) lanes and
// the unit grants what one register group can hold.
func Load[T Lanes](src []T) Vec[T] {
	vl := MaxLanes[T]()
	if len(src) < vl {
		vl = len(src)
	}
	data := make([]T, vl)
	copy(data, src[:vl])
	return Vec[T]{data: data}
}

// Store writes the vector's vl lanes to dst (vse).
// PRECONDITION: len(dst) >= v.VL().
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst[:len(v.data)], v.data)
}

// Splat returns a vector of vl lanes all holding value (vmv.v.x).
func Splat[T Lanes](value T, vl int) Vec[T] {
	if vl > MaxLanes[T]() {
		panic("rvv: requested vl exceeds register length")
	}
	data := make([]T, vl)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero returns a vector of vl zero lanes.
func Zero[T Lanes](vl int) Vec[T] {
	if vl > MaxLanes[T]() {
		panic("rvv: requested vl exceeds register length")
	}
	return Vec[T]{data: make([]T, vl)}
}

// Add performs lane-wise addition with natural wraparound (vadd.vv).
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	result := make([]T, commonVL(a, b))
	for i := range result {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs lane-wise subtraction with natural wraparound (vsub.vv).
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	result := make([]T, commonVL(a, b))
	for i := range result {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs lane-wise multiplication (vmul.vv / vfmul.vv).
// Integer lanes keep the low half of the product.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	result := make([]T, commonVL(a, b))
	for i := range result {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Min returns the lane-wise minimum (vmin.vv / vminu.vv depending on T).
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	result := make([]T, commonVL(a, b))
	for i := range result {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max returns the lane-wise maximum (vmax.vv / vmaxu.vv depending on T).
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	result := make([]T, commonVL(a, b))
	for i := range result {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// AvgU returns the lane-wise rounding-up average (a+b+1)>>1 (vaaddu.vv
// with rounding mode RNU). The (a|b)-((a^b)>>1) form computes it without
// the intermediate sum overflowing the lane.
func AvgU[T UnsignedInts](a, b Vec[T]) Vec[T] {
	result := make([]T, commonVL(a, b))
	for i := range result {
		x, y := a.data[i], b.data[i]
		result[i] = (x | y) - ((x ^ y) >> 1)
	}
	return Vec[T]{data: result}
}

// Abs returns the lane-wise absolute value. The minimum value of T wraps
// to itself, matching two's-complement hardware behavior.
func Abs[T SignedInts](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		if x < 0 {
			x = -x
		}
		result[i] = x
	}
	return Vec[T]{data: result}
}

// AddSat performs lane-wise signed saturating addition (vsadd.vv).
func AddSat[T SignedInts](a, b Vec[T]) Vec[T] {
	result := make([]T, commonVL(a, b))
	for i := range result {
		x, y := a.data[i], b.data[i]
		s := x + y
		if (x^s)&(y^s) < 0 {
			// Overflow: clamp toward the sign of the operands.
			s = maxOf[T]()
			if x < 0 {
				s = minOf[T]()
			}
		}
		result[i] = s
	}
	return Vec[T]{data: result}
}

// SubSat performs lane-wise signed saturating subtraction (vssub.vv).
func SubSat[T SignedInts](a, b Vec[T]) Vec[T] {
	result := make([]T, commonVL(a, b))
	for i := range result {
		x, y := a.data[i], b.data[i]
		s := x - y
		if (x^y)&(x^s) < 0 {
			s = maxOf[T]()
			if x < 0 {
				s = minOf[T]()
			}
		}
		result[i] = s
	}
	return Vec[T]{data: result}
}

// AddSatU performs lane-wise unsigned saturating addition (vsaddu.vv).
func AddSatU[T UnsignedInts](a, b Vec[T]) Vec[T] {
	result := make([]T, commonVL(a, b))
	for i := range result {
		x, y := a.data[i], b.data[i]
		s := x + y
		if s < x {
			s = ^T(0)
		}
		result[i] = s
	}
	return Vec[T]{data: result}
}

// SubSatU performs lane-wise unsigned saturating subtraction (vssubu.vv).
func SubSatU[T UnsignedInts](a, b Vec[T]) Vec[T] {
	result := make([]T, commonVL(a, b))
	for i := range result {
		x, y := a.data[i], b.data[i]
		if y > x {
			result[i] = 0
		} else {
			result[i] = x - y
		}
	}
	return Vec[T]{data: result}
}

// Sll shifts every lane left by sh bits (vsll.vx).
func Sll[T Integers](v Vec[T], sh uint) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x << sh
	}
	return Vec[T]{data: result}
}

// Srl shifts every lane right logically by sh bits (vsrl.vx).
// The unsigned constraint makes Go's >> the logical shift.
func Srl[T UnsignedInts](v Vec[T], sh uint) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x >> sh
	}
	return Vec[T]{data: result}
}

// Sra shifts every lane right arithmetically by sh bits (vsra.vx).
func Sra[T SignedInts](v Vec[T], sh uint) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x >> sh
	}
	return Vec[T]{data: result}
}

// Eq compares lanes for equality (vmseq.vv).
func Eq[T Lanes](a, b Vec[T]) Mask[T] {
	bits := make([]bool, commonVL(a, b))
	for i := range bits {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Lt compares lanes for a < b (vmslt.vv / vmsltu.vv depending on T).
func Lt[T Lanes](a, b Vec[T]) Mask[T] {
	bits := make([]bool, commonVL(a, b))
	for i := range bits {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Gt compares lanes for a > b. Hardware expresses this as vmslt with the
// operands swapped; it is spelled out here for readability.
func Gt[T Lanes](a, b Vec[T]) Mask[T] {
	bits := make([]bool, commonVL(a, b))
	for i := range bits {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Merge selects onTrue lanes where the mask is active and onFalse lanes
// elsewhere (vmerge.vvm). Inactive lanes are taken from onFalse, never
// left undefined.
func Merge[T Lanes](m Mask[T], onTrue, onFalse Vec[T]) Vec[T] {
	vl := commonVL(onTrue, onFalse)
	if len(m.bits) < vl {
		vl = len(m.bits)
	}
	result := make([]T, vl)
	for i := range result {
		if m.bits[i] {
			result[i] = onTrue.data[i]
		} else {
			result[i] = onFalse.data[i]
		}
	}
	return Vec[T]{data: result}
}

// commonVL returns the shared vl of two operands. Mismatched operand
// lengths are a contract violation: both must come from the same
// strip-mining pass.
func commonVL[T Lanes](a, b Vec[T]) int {
	if len(a.data) != len(b.data) {
		panic("rvv: operands have mismatched vl")
	}
	return len(a.data)
}

// maxOf returns the largest value representable in a lane of T.
func maxOf[T SignedInts]() T {
	var zero T
	bits := uint(unsafe.Sizeof(zero)) * 8
	return T((uint64(1) << (bits - 1)) - 1)
}

// minOf returns the smallest value representable in a lane of T.
func minOf[T SignedInts]() T {
	return -maxOf[T]() - 1
}
