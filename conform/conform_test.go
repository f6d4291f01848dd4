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
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zte-riscv/avx2rvv/rvv"
)

func TestSplitMix64Deterministic(t *testing.T) {
	a := NewSplitMix64(Seed)
	b := NewSplitMix64(Seed)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(), b.Next(), "draw %d diverged", i)
	}

	c := NewSplitMix64(Seed + 1)
	d := NewSplitMix64(Seed)
	same := true
	for i := 0; i < 16; i++ {
		if c.Next() != d.Next() {
			same = false
		}
	}
	require.False(t, same, "different seeds produced identical prefixes")
}

func TestNewDataDeterministicAndBounded(t *testing.T) {
	d1 := NewData()
	d2 := NewData()
	require.Equal(t, d1.Floats, d2.Floats)
	require.Equal(t, d1.Ints, d2.Ints)

	require.Len(t, d1.Floats, NumValues)
	require.Len(t, d1.Ints, NumValues)
	for i := 0; i < NumValues; i++ {
		require.GreaterOrEqual(t, d1.Floats[i], float32(-valueRange))
		require.LessOrEqual(t, d1.Floats[i], float32(valueRange))
		require.GreaterOrEqual(t, d1.Ints[i], int32(-valueRange))
		require.LessOrEqual(t, d1.Ints[i], int32(valueRange))
	}
}

func TestTally(t *testing.T) {
	var tally Tally
	require.Equal(t, float64(0), tally.Coverage(), "empty tally")

	tally.Record(Pass)
	tally.Record(Pass)
	tally.Record(Pass)
	tally.Record(Fail)
	tally.Record(NotImpl)
	require.Equal(t, uint32(3), tally.Passed)
	require.Equal(t, uint32(1), tally.Failed)
	require.Equal(t, uint32(1), tally.Skipped)
	require.Equal(t, uint32(5), tally.Total())
	require.InDelta(t, 60.0, tally.Coverage(), 0.001)
}

func TestResultStrings(t *testing.T) {
	require.Equal(t, "passed", Pass.String())
	require.Equal(t, "failed", Fail.String())
	require.Equal(t, "skipped", NotImpl.String())
}

func TestSuiteLookup(t *testing.T) {
	suites := Suites()
	require.Len(t, suites, 2)
	require.Equal(t, "sse", suites[0].Name, "narrow family runs first")
	require.Equal(t, "avx512", suites[1].Name)

	require.NotNil(t, SuiteByName("sse"))
	require.NotNil(t, SuiteByName("avx512"))
	require.Nil(t, SuiteByName("avx2"))
}

func TestSuiteFindFoldsCase(t *testing.T) {
	s := AVX512Suite()
	lower := s.Find("adds_epi")
	upper := s.Find("ADDS_EPI")
	require.NotEmpty(t, lower)
	require.Equal(t, lower, upper)
	for _, i := range lower {
		require.Contains(t, s.Cases[i].Name, "adds_epi")
	}

	require.Empty(t, s.Find("no_such_op"))
}

func TestCatalogueNamesUnique(t *testing.T) {
	for _, s := range Suites() {
		seen := make(map[string]bool)
		for _, c := range s.Cases {
			require.False(t, seen[c.Name], "duplicate case %s in suite %s", c.Name, s.Name)
			seen[c.Name] = true
		}
	}
}

func TestNotImplShortCircuits(t *testing.T) {
	r := NewRunner()
	require.Equal(t, NotImpl, r.Run(Case{Name: "deferred"}))
}

// Full conformance sweep: every implemented operation must pass at
// several register lengths, including one wider than the emulated
// registers themselves.
func TestFullConformance(t *testing.T) {
	if testing.Short() {
		t.Skip("full sweep is slow")
	}
	orig := rvv.VLEN()
	defer rvv.SetVLEN(orig)

	for _, vlen := range []int{128, 256, 512, 1024} {
		t.Run(fmt.Sprintf("vlen_%d", vlen), func(t *testing.T) {
			rvv.SetVLEN(vlen)
			r := NewRunner()
			for _, s := range Suites() {
				for _, c := range s.Cases {
					res := r.Run(c)
					require.NotEqual(t, Fail, res, "%s/%s failed", s.Name, c.Name)
					if c.Run != nil {
						require.Equal(t, Pass, res, "%s/%s", s.Name, c.Name)
					}
				}
			}
		})
	}
}
