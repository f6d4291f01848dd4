package rvv

// RoundingMode is an frm field value for the floating-point control
// register. The encoding follows the F extension.
type RoundingMode uint8

const (
	// RNE rounds to nearest, ties to even. This is the reset value.
	RNE RoundingMode = 0

	// RTZ rounds toward zero.
	RTZ RoundingMode = 1

	// RDN rounds toward negative infinity.
	RDN RoundingMode = 2

	// RUP rounds toward positive infinity.
	RUP RoundingMode = 3

	// RMM rounds to nearest, ties to max magnitude.
	RMM RoundingMode = 4
)

// String returns the assembly mnemonic for the rounding mode.
func (m RoundingMode) String() string {
	switch m {
	case RNE:
		return "rne"
	case RTZ:
		return "rtz"
	case RDN:
		return "rdn"
	case RUP:
		return "rup"
	case RMM:
		return "rmm"
	default:
		return "unknown"
	}
}
