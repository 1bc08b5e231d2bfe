package sim

// LCG is the deterministic generator every draw in a run comes from.
// The recurrence (multiplier 1664525, increment 1013904223, modulus 2^32)
// is fixed: recorded runs replay bit-for-bit only against this exact stream,
// so do not substitute a statistically equivalent generator.
type LCG struct {
	state uint32
}

func NewLCG(seed uint32) *LCG {
	if seed == 0 {
		seed = 1
	}
	return &LCG{state: seed}
}

func (g *LCG) Next() uint32 {
	g.state = g.state*1664525 + 1013904223
	return g.state
}

// Float64 returns the next draw in [0, 1).
func (g *LCG) Float64() float64 {
	return float64(g.Next()) / 4294967296.0
}
