// Package field implements the drifting particle field: particles with constant
// velocity and toroidal wrap, and the proximity lines drawn between them.
package field

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Particle is a point drifting at constant velocity.
type Particle struct {
	Pos    r2.Vec
	Vel    r2.Vec
	Radius float64
}

// NewParticle places a particle uniformly inside a w x h area. Velocity
// components are uniform in [-speed, speed], radius uniform in [0, maxRadius).
func NewParticle(rng *rand.Rand, w, h, speed, maxRadius float64) Particle {
	return Particle{
		Pos: r2.Vec{
			X: rng.Float64() * w,
			Y: rng.Float64() * h,
		},
		Vel: r2.Vec{
			X: (rng.Float64()*2 - 1) * speed,
			Y: (rng.Float64()*2 - 1) * speed,
		},
		Radius: rng.Float64() * maxRadius,
	}
}

// Advance moves the particle by one velocity step and wraps it back inside
// [0,w) x [0,h). The step is per call, not per second.
func (p *Particle) Advance(w, h float64) {
	p.Pos = r2.Add(p.Pos, p.Vel)
	p.Pos.X = wrap(p.Pos.X, w)
	p.Pos.Y = wrap(p.Pos.Y, h)
}

// Render draws the particle as a filled circle.
func (p *Particle) Render(s Surface, c RGBA) {
	s.FillCircle(p.Pos, p.Radius, c)
}

// wrap resets v to the opposite edge when it leaves [0, size).
// Leaving through the low edge lands on the largest value below size.
func wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	if v >= size {
		return 0
	}
	if v < 0 {
		return math.Nextafter(size, 0)
	}
	return v
}
