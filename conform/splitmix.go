package conform

// SplitMix64 is Sebastiano Vigna's splitmix64 generator: 64-bit state
// advanced by a fixed odd constant, output whitened by two
// multiply-xorshift rounds. Reference: https://xoshiro.di.unimi.it/splitmix64.c
//
// The harness owns exactly one instance, seeded with a constant, so a
// mismatch observed in any run can be replayed bit-for-bit.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 returns a generator with the given seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Next returns the next value in the sequence.
func (g *SplitMix64) Next() uint64 {
	g.state += 0x9e3779b97f4a7c15
	z := g.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
