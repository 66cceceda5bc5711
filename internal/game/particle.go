package game

import (
	"image/color"
	"math"
)

// Particle is a cosmetic spark. It has no gameplay effect.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // ticks remaining
	Color  color.RGBA
}

// Alpha is the fade-out opacity: proportional to remaining life, capped at 1.
func (p Particle) Alpha() float64 {
	return math.Min(1, math.Max(0, p.Life/particleFadeTicks))
}

// ParticleSystem owns every live particle.
type ParticleSystem struct {
	P   []Particle
	rng Rand
}

func NewParticleSystem(rng Rand) *ParticleSystem {
	return &ParticleSystem{rng: rng}
}

// Burst spawns burstSize particles at (x,y) with small random velocities.
func (ps *ParticleSystem) Burst(x, y float64, col color.RGBA) {
	for i := 0; i < burstSize; i++ {
		ps.P = append(ps.P, Particle{
			X:     x,
			Y:     y,
			VX:    (ps.rng.Float64()*2 - 1) * particleMaxSpeed,
			VY:    (ps.rng.Float64()*2 - 1) * particleMaxSpeed,
			Life:  particleMinLife + ps.rng.Float64()*particleLifeSpan,
			Color: col,
		})
	}
}

// Update integrates positions and discards spent particles.
func (ps *ParticleSystem) Update(dt float64) {
	kept := ps.P[:0]
	for _, p := range ps.P {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= dt
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	ps.P = kept
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
}

func (ps *ParticleSystem) Len() int {
	return len(ps.P)
}
