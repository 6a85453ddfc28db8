package pathfind

// Rand is the mulberry32 generator. The same seed always yields the same
// sequence, which is what makes graph layouts reproducible.
type Rand struct {
	s uint32
}

// NewRand returns a generator seeded with seed.
func NewRand(seed uint32) *Rand {
	return &Rand{s: seed}
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	r.s += 0x6D2B79F5
	t := (r.s ^ r.s>>15) * (1 | r.s)
	t = (t + (t^t>>7)*(61|t)) ^ t
	return float64(t^t>>14) / 4294967296
}
