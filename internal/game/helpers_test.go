package game

import "math"

// seqRand replays vals in order, then returns def forever.
type seqRand struct {
	vals []float64
	def  float64
	i    int
}

func (s *seqRand) Float64() float64 {
	if s.i < len(s.vals) {
		v := s.vals[s.i]
		s.i++
		return v
	}
	return s.def
}

// newQuietWorld returns a world whose random source always yields 0.5: every
// enemy spawns at the same point, heads west, never snaps and never fires.
func newQuietWorld(keys *KeySet) *World {
	return NewWorld(keys, WithRand(&seqRand{def: 0.5}))
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
