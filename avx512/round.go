package avx512

import "github.com/zte-riscv/avx2rvv/rvv"

// Rounding-direction codes as the fixed-width ISA encodes them
// (_MM_ROUND_* / _MM_FROUND_*).
const (
	RoundToNearestInt = 0x00
	RoundToNegInf     = 0x01
	RoundToPosInf     = 0x02
	RoundToZero       = 0x03
	RoundCurDirection = 0x04
	RoundNoExc        = 0x08
)

// RoundingToFRM translates a rounding-direction code into the engine's
// frm encoding. The mapping is total: codes outside the two direction
// bits fall back to round-to-nearest-even, the hardware reset mode.
func RoundingToFRM(mode uint8) rvv.RoundingMode {
	switch mode & 0x03 {
	case RoundToNearestInt:
		return rvv.RNE
	case RoundToNegInf:
		return rvv.RDN
	case RoundToPosInf:
		return rvv.RUP
	case RoundToZero:
		return rvv.RTZ
	default:
		return rvv.RNE
	}
}
