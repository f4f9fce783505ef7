package field

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Params holds the tunable constants of the field.
type Params struct {
	// Density is the viewport width per particle.
	Density      float64
	MaxParticles int

	// Speed bounds each velocity component to [-Speed, Speed].
	Speed     float64
	MaxRadius float64

	// Pairs closer than LinkDistance are linked with
	// alpha = max(0, LinkAlphaMax - d/LinkFalloff).
	LinkDistance float64
	LinkAlphaMax float64
	LinkFalloff  float64
	LineWidth    float64

	ParticleColor RGBA
	LinkColor     RGBA // alpha is replaced per link
}

// DefaultParams returns the stock field look: violet dots, at most 100 of
// them, linked below 100 units.
func DefaultParams() Params {
	violet := RGBA{R: 139, G: 92, B: 246}
	return Params{
		Density:       10,
		MaxParticles:  100,
		Speed:         0.5,
		MaxRadius:     2,
		LinkDistance:  100,
		LinkAlphaMax:  0.1,
		LinkFalloff:   1000,
		LineWidth:     1,
		ParticleColor: violet.WithAlpha(0.5),
		LinkColor:     violet,
	}
}

// TickStats summarises one Tick.
type TickStats struct {
	Particles int
	Pairs     int
	Links     int
	AlphaSum  float64
}

// Field owns the particle collection.
type Field struct {
	params    Params
	rng       *rand.Rand
	particles []Particle
	width     float64
	height    float64
}

// New creates an empty field. Call Initialize before the first Tick.
func New(params Params, rng *rand.Rand) *Field {
	return &Field{params: params, rng: rng}
}

// Params returns the field parameters.
func (f *Field) Params() Params {
	return f.params
}

// SetParams replaces the parameters. Takes effect on the next Initialize.
func (f *Field) SetParams(p Params) {
	f.params = p
}

// ParticleCount returns how many particles a w x h viewport gets:
// floor(min(w/density, max)), and zero for a degenerate viewport.
func (p Params) ParticleCount(w, h float64) int {
	if w <= 0 || h <= 0 || p.Density <= 0 {
		return 0
	}
	n := math.Min(w/p.Density, float64(p.MaxParticles))
	if n < 0 {
		return 0
	}
	return int(math.Floor(n))
}

// Initialize discards every particle and seeds a fresh set for the given
// viewport. The slice is rebuilt before it is swapped in.
func (f *Field) Initialize(w, h float64) {
	n := f.params.ParticleCount(w, h)
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = NewParticle(f.rng, w, h, f.params.Speed, f.params.MaxRadius)
	}
	f.width, f.height = w, h
	f.particles = particles
}

// Size returns the viewport the field was last initialized with.
func (f *Field) Size() (w, h float64) {
	return f.width, f.height
}

// Particles exposes the collection. Callers must not keep it across Initialize.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Len returns the particle count.
func (f *Field) Len() int {
	return len(f.particles)
}

// Tick clears the surface, advances and draws every particle, then links
// every close pair.
func (f *Field) Tick(s Surface) TickStats {
	s.Clear()

	for i := range f.particles {
		p := &f.particles[i]
		p.Advance(f.width, f.height)
		p.Render(s, f.params.ParticleColor)
	}

	stats := TickStats{Particles: len(f.particles)}
	ForEachPair(len(f.particles), func(i, j int) {
		stats.Pairs++
		a, b := f.particles[i].Pos, f.particles[j].Pos
		d := r2.Norm(r2.Sub(a, b))
		if d >= f.params.LinkDistance {
			return
		}
		alpha := f.params.LinkAlpha(d)
		s.StrokeLine(a, b, f.params.LineWidth, f.params.LinkColor.WithAlpha(alpha))
		stats.Links++
		stats.AlphaSum += alpha
	})
	return stats
}

// LinkAlpha returns the stroke alpha for a pair at distance d, never negative.
func (p Params) LinkAlpha(d float64) float64 {
	return math.Max(0, p.LinkAlphaMax-d/p.LinkFalloff)
}

// ForEachPair calls fn once for every unordered pair i < j of n items.
func ForEachPair(n int, fn func(i, j int)) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			fn(i, j)
		}
	}
}
