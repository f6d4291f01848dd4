package rvv

import (
	"unsafe"

	"github.com/xyproto/env/v2"
)

// currentWidth is the modeled vector register width in bytes (VLEN/8).
// Set by init() in dispatch_*.go files and adjustable with SetVLEN.
var currentWidth int

// currentName is the human-readable name of the current vector target.
var currentName string

// minVLEN is the smallest VLEN the Zvl* profiles define. It also keeps
// every element type representable in a single register (SEW <= 64).
const minVLEN = 64

// CurrentWidth returns the vector register width in bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current vector
// target, for example "rvv" or "portable".
func CurrentName() string {
	return currentName
}

// VLEN returns the modeled vector register length in bits.
func VLEN() int {
	return currentWidth * 8
}

// SetVLEN sets the modeled vector register length in bits. It exists so
// that conformance runs can exercise register lengths other than the
// host default; VLEN must be a power of two and at least 64.
func SetVLEN(bits int) {
	if bits < minVLEN || bits&(bits-1) != 0 {
		panic("rvv: VLEN must be a power of two >= 64")
	}
	currentWidth = bits / 8
}

// MaxLanes returns the maximum vl for element type T at the current VLEN.
//
// For example, with VLEN=128 (16 bytes):
//   - int8: 16 lanes
//   - int16: 8 lanes
//   - float64: 2 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}

// envVLEN returns the AVX2RVV_VLEN override in bits, or 0 if unset or
// not a usable register length.
func envVLEN() int {
	bits := env.Int("AVX2RVV_VLEN", 0)
	if bits < minVLEN || bits&(bits-1) != 0 {
		return 0
	}
	return bits
}

// noVectorEnv reports whether AVX2RVV_NO_VECTOR is set, forcing the
// minimal register length regardless of host capabilities.
func noVectorEnv() bool {
	return env.Bool("AVX2RVV_NO_VECTOR")
}
