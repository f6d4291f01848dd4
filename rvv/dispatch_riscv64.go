//go:build riscv64

package rvv

import "golang.org/x/sys/cpu"

func init() {
	if noVectorEnv() {
		currentWidth = minVLEN / 8
		currentName = "portable"
		return
	}
	if bits := envVLEN(); bits != 0 {
		currentWidth = bits / 8
		currentName = "rvv"
		return
	}
	if cpu.RISCV64.HasV {
		// The V extension mandates VLEN >= 128 but gives us no portable
		// way to read the actual register length, so model the mandated
		// minimum unless AVX2RVV_VLEN says otherwise.
		currentWidth = 16
		currentName = "rvv"
		return
	}
	currentWidth = minVLEN / 8
	currentName = "portable"
}
