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

import "github.com/zte-riscv/avx2rvv/sse"

// SSESuite returns the catalogue for the narrow register family. These
// cases double as a check of the staging pipeline itself, since the
// runner feeds every window through SetPs and StorePs before any body
// runs.
func SSESuite() *Suite {
	return &Suite{
		Name: "sse",
		Cases: []Case{
			{Name: "mm_empty", Run: testMMEmpty},
			{Name: "mm_set_ps", Run: testMMSetPs},
			{Name: "mm_setzero_ps", Run: testMMSetzeroPs},
			{Name: "mm_store_ps", Run: testMMStorePs},
			{Name: "mm_load_ps", Run: testMMLoadPs},
			{Name: "mm_add_ps", Run: testMMAddPs},
			{Name: "mm_sub_ps", Run: testMMSubPs},
			{Name: "mm_mul_ps", Run: testMMMulPs},
			{Name: "mm_min_ps", Run: testMMMinPs},
			{Name: "mm_max_ps", Run: testMMMaxPs},
			{Name: "mm_set_epi32", Run: testMMSetEpi32},
			{Name: "mm_loadu_epi32", Run: testMMLoaduEpi32},
			{Name: "mm_storeu_epi32", Run: testMMStoreuEpi32},
			{Name: "mm_add_epi32", Run: testMMAddEpi32},
			{Name: "mm_sub_epi32", Run: testMMSubEpi32},
		},
	}
}

// The emulation carries no x87 state to clear.
func testMMEmpty(r *Runner, iter uint32) Result {
	return Pass
}

func testMMSetPs(r *Runner, iter uint32) Result {
	f := r.data.Floats
	i := int(iter)
	a := sse.SetPs(f[i], f[i+1], f[i+2], f[i+3])
	lanes := a.Float32s()
	// High-lane-first arguments: the last argument lands in lane zero.
	if lanes[0] != f[i+3] || lanes[1] != f[i+2] || lanes[2] != f[i+1] || lanes[3] != f[i] {
		return Fail
	}
	return Pass
}

func testMMSetzeroPs(r *Runner, iter uint32) Result {
	a := sse.SetzeroPs()
	for _, lane := range a.Float32s() {
		if lane != 0 {
			return Fail
		}
	}
	return Pass
}

func testMMStorePs(r *Runner, iter uint32) Result {
	// The runner staged this window through SetPs/StorePs already;
	// verify the scratch holds the reversed window.
	f := r.data.Floats
	i := int(iter)
	for j := 0; j < 4; j++ {
		if r.floatP1[j] != f[i+3-j] {
			return Fail
		}
		if r.floatP2[j] != f[i+7-j] {
			return Fail
		}
	}
	return Pass
}

func testMMLoadPs(r *Runner, iter uint32) Result {
	a := sse.LoadPs(r.floatP1)
	lanes := a.Float32s()
	for j := 0; j < 4; j++ {
		if lanes[j] != r.floatP1[j] {
			return Fail
		}
	}
	return Pass
}

func testMMAddPs(r *Runner, iter uint32) Result {
	ret := sse.AddPs(sse.LoadPs(r.floatP1), sse.LoadPs(r.floatP2))
	lanes := ret.Float32s()
	for j := 0; j < 4; j++ {
		if lanes[j] != r.floatP1[j]+r.floatP2[j] {
			return Fail
		}
	}
	return Pass
}

func testMMSubPs(r *Runner, iter uint32) Result {
	ret := sse.SubPs(sse.LoadPs(r.floatP1), sse.LoadPs(r.floatP2))
	lanes := ret.Float32s()
	for j := 0; j < 4; j++ {
		if lanes[j] != r.floatP1[j]-r.floatP2[j] {
			return Fail
		}
	}
	return Pass
}

func testMMMulPs(r *Runner, iter uint32) Result {
	ret := sse.MulPs(sse.LoadPs(r.floatP1), sse.LoadPs(r.floatP2))
	lanes := ret.Float32s()
	for j := 0; j < 4; j++ {
		if lanes[j] != r.floatP1[j]*r.floatP2[j] {
			return Fail
		}
	}
	return Pass
}

func testMMMinPs(r *Runner, iter uint32) Result {
	ret := sse.MinPs(sse.LoadPs(r.floatP1), sse.LoadPs(r.floatP2))
	lanes := ret.Float32s()
	for j := 0; j < 4; j++ {
		want := r.floatP1[j]
		if r.floatP2[j] < want {
			want = r.floatP2[j]
		}
		if lanes[j] != want {
			return Fail
		}
	}
	return Pass
}

func testMMMaxPs(r *Runner, iter uint32) Result {
	ret := sse.MaxPs(sse.LoadPs(r.floatP1), sse.LoadPs(r.floatP2))
	lanes := ret.Float32s()
	for j := 0; j < 4; j++ {
		want := r.floatP1[j]
		if r.floatP2[j] > want {
			want = r.floatP2[j]
		}
		if lanes[j] != want {
			return Fail
		}
	}
	return Pass
}

func testMMSetEpi32(r *Runner, iter uint32) Result {
	n := r.data.Ints
	i := int(iter)
	a := sse.SetEpi32(n[i], n[i+1], n[i+2], n[i+3])
	lanes := a.Int32s()
	if lanes[0] != n[i+3] || lanes[1] != n[i+2] || lanes[2] != n[i+1] || lanes[3] != n[i] {
		return Fail
	}
	return Pass
}

func testMMLoaduEpi32(r *Runner, iter uint32) Result {
	a := sse.LoaduEpi32(r.intP1)
	lanes := a.Int32s()
	for j := 0; j < 4; j++ {
		if lanes[j] != r.intP1[j] {
			return Fail
		}
	}
	return Pass
}

func testMMStoreuEpi32(r *Runner, iter uint32) Result {
	n := r.data.Ints
	i := int(iter)
	for j := 0; j < 4; j++ {
		if r.intP1[j] != n[i+3-j] {
			return Fail
		}
		if r.intP2[j] != n[i+7-j] {
			return Fail
		}
	}
	return Pass
}

func testMMAddEpi32(r *Runner, iter uint32) Result {
	ret := sse.AddEpi32(sse.LoaduEpi32(r.intP1), sse.LoaduEpi32(r.intP2))
	lanes := ret.Int32s()
	for j := 0; j < 4; j++ {
		if lanes[j] != r.intP1[j]+r.intP2[j] {
			return Fail
		}
	}
	return Pass
}

func testMMSubEpi32(r *Runner, iter uint32) Result {
	ret := sse.SubEpi32(sse.LoaduEpi32(r.intP1), sse.LoaduEpi32(r.intP2))
	lanes := ret.Int32s()
	for j := 0; j < 4; j++ {
		if lanes[j] != r.intP1[j]-r.intP2[j] {
			return Fail
		}
	}
	return Pass
}
