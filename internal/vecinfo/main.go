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

// Package main provides a diagnostic tool to print the vector engine
// configuration and the CPU features detected by Go.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/zte-riscv/avx2rvv/rvv"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Engine name: %s\n", rvv.CurrentName())
	fmt.Printf("Engine width: %d bytes\n", rvv.CurrentWidth())
	fmt.Printf("Engine VLEN: %d bits\n", rvv.VLEN())
	fmt.Printf("Lanes per pass: %d x int8, %d x int16, %d x int32\n",
		rvv.MaxLanes[int8](), rvv.MaxLanes[int16](), rvv.MaxLanes[int32]())
	fmt.Println()

	if runtime.GOARCH == "riscv64" {
		printRISCV64Features()
	}
}

func printRISCV64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.RISCV64 ===")
	fmt.Printf("  HasV:               %v (Vector extension)\n", cpu.RISCV64.HasV)
	fmt.Printf("  HasC:               %v (Compressed instructions)\n", cpu.RISCV64.HasC)
	fmt.Printf("  HasZba:             %v\n", cpu.RISCV64.HasZba)
	fmt.Printf("  HasZbb:             %v\n", cpu.RISCV64.HasZbb)
	fmt.Printf("  HasZbs:             %v\n", cpu.RISCV64.HasZbs)
	fmt.Printf("  HasFastMisaligned:  %v\n", cpu.RISCV64.HasFastMisaligned)
}
