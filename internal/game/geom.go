package game

import "math"

// Rand is the random source behind AI timing, spawning and particle bursts.
// *rand.Rand satisfies it; tests substitute a scripted sequence.
type Rand interface {
	Float64() float64
}

// Bounds is the playfield rectangle, anchored at the origin.
type Bounds struct {
	W, H float64
}

// DefaultBounds matches the fixed rendering surface.
func DefaultBounds() Bounds {
	return Bounds{W: ScreenWidth, H: ScreenHeight}
}

// clampCircle keeps a body of the given diameter fully inside the bounds.
func (b Bounds) clampCircle(x, y, size float64) (float64, float64) {
	half := size / 2
	return clamp(x, half, b.W-half), clamp(y, half, b.H-half)
}

// outside reports whether (x,y) lies further than margin past any edge.
func (b Bounds) outside(x, y, margin float64) bool {
	return x < -margin || x > b.W+margin || y < -margin || y > b.H+margin
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}
