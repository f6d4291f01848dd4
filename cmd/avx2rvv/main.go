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

// Command avx2rvv runs the intrinsic conformance suites against the
// vector engine detected on the host (or forced through AVX2RVV_VLEN
// and AVX2RVV_NO_VECTOR).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zte-riscv/avx2rvv/conform"
	"github.com/zte-riscv/avx2rvv/rvv"
)

var (
	flagList    bool
	flagIndex   int
	flagSuite   string
	flagVerbose bool
	flagQuiet   bool
)

func main() {
	root := &cobra.Command{
		Use:   "avx2rvv [PATTERN]",
		Short: "run the fixed-width intrinsic conformance suites",
		Long: `avx2rvv checks every catalogued fixed-width operation against its
scalar reference over 10,000 generated values. With no arguments it runs
the full catalogue, narrow family first. A positional PATTERN restricts
the run to operations whose name contains it (case-insensitive).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().BoolVarP(&flagList, "list", "l", false, "list catalogued operations and exit")
	root.Flags().IntVarP(&flagIndex, "index", "i", -1, "run a single operation by catalogue index (needs --suite)")
	root.Flags().StringVar(&flagSuite, "suite", "all", "suite to run: sse, avx512 or all")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print a line for every operation")
	root.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "print the summary only when something fails")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "avx2rvv:", err)
		os.Exit(2)
	}
}

func run(cmd *cobra.Command, args []string) error {
	suites, err := selectSuites(flagSuite)
	if err != nil {
		return err
	}

	if flagList {
		for _, s := range suites {
			fmt.Printf("suite %s:\n", s.Name)
			for i, c := range s.Cases {
				fmt.Printf("  %3d | %s\n", i, c.Name)
			}
		}
		return nil
	}

	type pick struct {
		suite *conform.Suite
		idx   int
	}
	var picks []pick
	switch {
	case flagIndex >= 0:
		if flagSuite == "all" {
			return fmt.Errorf("--index needs --suite sse or --suite avx512")
		}
		s := suites[0]
		if flagIndex >= len(s.Cases) {
			return fmt.Errorf("index %d out of range for suite %s (%d operations)",
				flagIndex, s.Name, len(s.Cases))
		}
		picks = append(picks, pick{s, flagIndex})
	case len(args) == 1:
		for _, s := range suites {
			for _, i := range s.Find(args[0]) {
				picks = append(picks, pick{s, i})
			}
		}
		if len(picks) == 0 {
			return fmt.Errorf("no operation matches %q", args[0])
		}
	default:
		for _, s := range suites {
			for i := range s.Cases {
				picks = append(picks, pick{s, i})
			}
		}
	}

	if flagVerbose {
		fmt.Printf("engine: %s, width %d bytes, VLEN %d\n",
			rvv.CurrentName(), rvv.CurrentWidth(), rvv.VLEN())
	}

	runner := conform.NewRunner()
	var tally conform.Tally
	for _, p := range picks {
		c := p.suite.Cases[p.idx]
		res := runner.Run(c)
		tally.Record(res)
		if flagVerbose || (res == conform.Fail && !flagQuiet) {
			fmt.Printf("[%-7s] %s/%s\n", res, p.suite.Name, c.Name)
		}
	}

	if !flagQuiet || tally.Failed > 0 {
		fmt.Printf("Passed: %d, Failed: %d, Ignored: %d\n",
			tally.Passed, tally.Failed, tally.Skipped)
		fmt.Printf("Coverage rate: %.2f%%\n", tally.Coverage())
	}
	if tally.Failed > 0 {
		os.Exit(1)
	}
	return nil
}

func selectSuites(name string) ([]*conform.Suite, error) {
	if name == "all" {
		return conform.Suites(), nil
	}
	s := conform.SuiteByName(name)
	if s == nil {
		return nil, fmt.Errorf("unknown suite %q (want sse, avx512 or all)", name)
	}
	return []*conform.Suite{s}, nil
}
