package conform

const (
	// NumValues is the length of each generated test array.
	NumValues = 10000

	// Seed is the fixed generator seed. Runs are fully deterministic:
	// the same seed always produces the same arrays.
	Seed = 123456

	// valueRange bounds the generated magnitudes to +/-100000.
	valueRange = 100000

	twoPow64 = 0x1p64
)

// Data holds the process-lifetime test vectors. They are generated once
// and read-only for the remainder of the run.
type Data struct {
	Floats []float32
	Ints   []int32
}

// NewData generates the float and integer test arrays. Draws interleave
// float first, then int, per index; reordering them would change every
// generated value.
func NewData() *Data {
	g := NewSplitMix64(Seed)
	d := &Data{
		Floats: make([]float32, NumValues),
		Ints:   make([]int32, NumValues),
	}
	for i := 0; i < NumValues; i++ {
		d.Floats[i] = float32(scaled(g.Next()))
		d.Ints[i] = int32(scaled(g.Next()))
	}
	return d
}

// scaled maps a raw draw into [-100000, 100000).
func scaled(raw uint64) float64 {
	return float64(raw)/twoPow64*(2*valueRange) - valueRange
}
