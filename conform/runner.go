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

// Package conform proves that the emulated fixed-width operations match
// their reference lane-by-lane semantics over a large, reproducible
// input space.
//
// For every catalogued operation the runner slides a window over 10,000
// generated values; each window stages eight consecutive floats and
// eight consecutive ints through the narrow register pipeline, invokes
// the operation's test body, and the body compares every decoded output
// lane against a scalar reference computation. The first mismatched
// window stops the operation's run and reports Fail.
package conform

import (
	"github.com/zte-riscv/avx2rvv/internal/mem"
	"github.com/zte-riscv/avx2rvv/rvv"
	"github.com/zte-riscv/avx2rvv/sse"
)

// Runner owns the test vectors and the aligned scratch pointers test
// bodies read their staged inputs from. It is single-threaded; bodies
// run synchronously and allocate nothing in their window loop beyond
// their own lane buffers.
type Runner struct {
	data *Data

	floatP1 []float32
	floatP2 []float32
	intP1   []int32
	intP2   []int32
}

// NewRunner generates the test vectors and allocates scratch aligned to
// the vector unit's width.
func NewRunner() *Runner {
	align := rvv.CurrentWidth()
	if align < 16 {
		align = 16
	}
	return &Runner{
		data:    NewData(),
		floatP1: mem.AlignedFloat32(4, align),
		floatP2: mem.AlignedFloat32(4, align),
		intP1:   mem.AlignedInt32(4, align),
		intP2:   mem.AlignedInt32(4, align),
	}
}

// Run executes one catalogued case over the full window space.
func (r *Runner) Run(c Case) Result {
	if c.Run == nil {
		return NotImpl
	}
	for i := uint32(0); i < NumValues-8; i++ {
		if res := r.loadFloatPointers(int(i)); res != Pass {
			return res
		}
		if res := r.loadIntPointers(int(i)); res != Pass {
			return res
		}
		if res := c.Run(r, i); res != Pass {
			return res
		}
	}
	return Pass
}

// loadFloatPointers stages floats[i..i+7] into the two scratch float
// pointers through the narrow pipeline.
func (r *Runner) loadFloatPointers(i int) Result {
	f := r.data.Floats
	if res := storePs4(r.floatP1, f[i], f[i+1], f[i+2], f[i+3]); res != Pass {
		return res
	}
	return storePs4(r.floatP2, f[i+4], f[i+5], f[i+6], f[i+7])
}

// loadIntPointers stages ints[i..i+7] into the two scratch int pointers.
func (r *Runner) loadIntPointers(i int) Result {
	n := r.data.Ints
	if res := storeEpi32x4(r.intP1, n[i], n[i+1], n[i+2], n[i+3]); res != Pass {
		return res
	}
	return storeEpi32x4(r.intP2, n[i+4], n[i+5], n[i+6], n[i+7])
}

// storePs4 round-trips x,y,z,w through SetPs/StorePs and verifies the
// high-lane-first argument order lands w in p[0].
func storePs4(p []float32, x, y, z, w float32) Result {
	a := sse.SetPs(x, y, z, w)
	sse.StorePs(p, a)
	if p[0] != w || p[1] != z || p[2] != y || p[3] != x {
		return Fail
	}
	return Pass
}

// storeEpi32x4 is storePs4 for the integer pointers.
func storeEpi32x4(p []int32, x, y, z, w int32) Result {
	a := sse.SetEpi32(x, y, z, w)
	sse.StoreuEpi32(p, a)
	if p[0] != w || p[1] != z || p[2] != y || p[3] != x {
		return Fail
	}
	return Pass
}
