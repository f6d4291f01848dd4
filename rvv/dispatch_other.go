//go:build !riscv64

package rvv

func init() {
	// Non-riscv64 hosts model a VLEN=128 unit, the minimum the V
	// extension mandates. This keeps the strip-mining paths exercised
	// everywhere: a 512-bit operation always takes multiple passes.
	if noVectorEnv() {
		currentWidth = minVLEN / 8
		currentName = "portable"
		return
	}
	if bits := envVLEN(); bits != 0 {
		currentWidth = bits / 8
		currentName = "portable"
		return
	}
	currentWidth = 16
	currentName = "portable"
}
