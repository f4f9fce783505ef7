package field

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func newTestField(seed int64) *Field {
	return New(DefaultParams(), rand.New(rand.NewSource(seed)))
}

func TestInitializeCount(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		want int
	}{
		{"wide viewport capped", 1000, 500, 100},
		{"very wide viewport capped", 4000, 2000, 100},
		{"narrow viewport", 50, 500, 5},
		{"fractional count floors", 57, 500, 5},
		{"zero width", 0, 500, 0},
		{"negative width", -300, 500, 0},
		{"zero height", 800, 0, 0},
		{"below one particle", 9, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(1)
			f.Initialize(tt.w, tt.h)
			if f.Len() != tt.want {
				t.Errorf("Initialize(%v, %v) count = %d, want %d", tt.w, tt.h, f.Len(), tt.want)
			}
		})
	}
}

func TestInitializeReseeds(t *testing.T) {
	f := newTestField(7)
	f.Initialize(800, 600)
	first := append([]Particle(nil), f.Particles()...)

	f.Initialize(800, 600)
	second := f.Particles()

	if len(first) != len(second) {
		t.Fatalf("count changed across reseed: %d vs %d", len(first), len(second))
	}

	same := 0
	for i := range first {
		if first[i].Pos == second[i].Pos {
			same++
		}
	}
	if same == len(first) {
		t.Error("reseed carried positions over")
	}
}

func TestInitializeBounds(t *testing.T) {
	f := newTestField(3)
	f.Initialize(640, 480)

	for i, p := range f.Particles() {
		if p.Pos.X < 0 || p.Pos.X >= 640 || p.Pos.Y < 0 || p.Pos.Y >= 480 {
			t.Errorf("particle %d out of bounds: %+v", i, p.Pos)
		}
		if math.Abs(p.Vel.X) > 0.5 || math.Abs(p.Vel.Y) > 0.5 {
			t.Errorf("particle %d velocity out of range: %+v", i, p.Vel)
		}
		if p.Radius < 0 || p.Radius >= 2 {
			t.Errorf("particle %d radius out of range: %v", i, p.Radius)
		}
	}
}

func TestAdvanceWrapInvariant(t *testing.T) {
	const w, h = 300.0, 200.0
	f := newTestField(11)
	f.Initialize(w, h)
	rec := NewRecorder(w, h)

	for tick := 0; tick < 5000; tick++ {
		f.Tick(rec)
		for i, p := range f.Particles() {
			if p.Pos.X < 0 || p.Pos.X >= w || p.Pos.Y < 0 || p.Pos.Y >= h {
				t.Fatalf("tick %d: particle %d escaped: %+v", tick, i, p.Pos)
			}
		}
	}
}

func TestAdvanceCrossesRightEdge(t *testing.T) {
	p := Particle{Pos: r2.Vec{X: 100 - 0.2, Y: 50}, Vel: r2.Vec{X: 0.5}}
	p.Advance(100, 100)

	if p.Pos.X != 0 {
		t.Errorf("x after crossing right edge = %v, want 0", p.Pos.X)
	}
	if p.Pos.Y != 50 {
		t.Errorf("y changed: %v", p.Pos.Y)
	}
}

func TestAdvanceCrossesLeftEdge(t *testing.T) {
	p := Particle{Pos: r2.Vec{X: 0.1, Y: 0.2}, Vel: r2.Vec{X: -0.3, Y: -0.4}}
	p.Advance(100, 80)

	if p.Pos.X >= 100 || p.Pos.X < 99.999 {
		t.Errorf("x after crossing left edge = %v, want just below 100", p.Pos.X)
	}
	if p.Pos.Y >= 80 || p.Pos.Y < 79.999 {
		t.Errorf("y after crossing top edge = %v, want just below 80", p.Pos.Y)
	}
}

func TestAdvanceLandingOnEdge(t *testing.T) {
	p := Particle{Pos: r2.Vec{X: 99.5, Y: 10}, Vel: r2.Vec{X: 0.5}}
	p.Advance(100, 100)

	if p.Pos.X != 0 {
		t.Errorf("x landing exactly on the edge = %v, want 0", p.Pos.X)
	}
}

func TestLinkAlpha(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		d    float64
		want float64
	}{
		{0, 0.1},
		{50, 0.05},
		{99, 0.001},
		{100, 0},
		{250, 0},
	}

	for _, tt := range tests {
		got := p.LinkAlpha(tt.d)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LinkAlpha(%v) = %v, want %v", tt.d, got, tt.want)
		}
		if got < 0 {
			t.Errorf("LinkAlpha(%v) negative: %v", tt.d, got)
		}
	}
}

func TestForEachPairCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 100} {
		seen := make(map[[2]int]bool)
		calls := 0
		ForEachPair(n, func(i, j int) {
			calls++
			if i >= j {
				t.Fatalf("n=%d: pair (%d, %d) not ordered", n, i, j)
			}
			key := [2]int{i, j}
			if seen[key] {
				t.Fatalf("n=%d: pair (%d, %d) visited twice", n, i, j)
			}
			seen[key] = true
		})
		if want := n * (n - 1) / 2; calls != want {
			t.Errorf("n=%d: %d pairs, want %d", n, calls, want)
		}
	}
}

// placed builds a field with fixed, motionless particles.
func placed(w, h float64, positions ...r2.Vec) *Field {
	f := newTestField(1)
	f.width, f.height = w, h
	for _, pos := range positions {
		f.particles = append(f.particles, Particle{Pos: pos, Radius: 1})
	}
	return f
}

func TestTickLinksClosePair(t *testing.T) {
	f := placed(500, 500, r2.Vec{X: 0, Y: 0}, r2.Vec{X: 99, Y: 0})
	rec := NewRecorder(500, 500)

	stats := f.Tick(rec)

	lines := rec.LinesInFrame()
	if len(lines) != 1 || stats.Links != 1 {
		t.Fatalf("expected one link, got %d lines (stats %d)", len(lines), stats.Links)
	}
	if math.Abs(lines[0].Color.A-0.001) > 1e-9 {
		t.Errorf("link alpha = %v, want 0.001", lines[0].Color.A)
	}
	if lines[0].Width != 1 {
		t.Errorf("line width = %v, want 1", lines[0].Width)
	}
	c := lines[0].Color
	if c.R != 139 || c.G != 92 || c.B != 246 {
		t.Errorf("link colour = %+v, want violet", c)
	}
}

func TestTickSkipsPairAtThreshold(t *testing.T) {
	f := placed(500, 500, r2.Vec{X: 10, Y: 10}, r2.Vec{X: 110, Y: 10})
	rec := NewRecorder(500, 500)

	stats := f.Tick(rec)

	if stats.Links != 0 || len(rec.LinesInFrame()) != 0 {
		t.Errorf("pair at exactly 100 units was linked")
	}
	if stats.Pairs != 1 {
		t.Errorf("pairs visited = %d, want 1", stats.Pairs)
	}
}

func TestTickDrawOrder(t *testing.T) {
	f := placed(500, 500,
		r2.Vec{X: 10, Y: 10},
		r2.Vec{X: 20, Y: 10},
		r2.Vec{X: 30, Y: 10},
	)
	rec := NewRecorder(500, 500)

	stats := f.Tick(rec)

	if rec.Calls[0].Op != OpClear {
		t.Fatalf("first call = %v, want clear", rec.Calls[0].Op)
	}
	for i := 1; i <= 3; i++ {
		if rec.Calls[i].Op != OpCircle {
			t.Errorf("call %d = %v, want circle", i, rec.Calls[i].Op)
		}
		if rec.Calls[i].Color != DefaultParams().ParticleColor {
			t.Errorf("circle %d colour = %+v", i, rec.Calls[i].Color)
		}
	}
	if stats.Pairs != 3 || stats.Links != 3 {
		t.Errorf("pairs/links = %d/%d, want 3/3", stats.Pairs, stats.Links)
	}
}

func TestTickEmptyField(t *testing.T) {
	f := newTestField(1)
	f.Initialize(0, 500)
	rec := NewRecorder(0, 500)

	stats := f.Tick(rec)

	if stats.Particles != 0 || stats.Pairs != 0 {
		t.Errorf("empty field produced %+v", stats)
	}
	if rec.Clears != 1 {
		t.Errorf("clears = %d, want 1", rec.Clears)
	}
}

func TestTickPairCountAtCap(t *testing.T) {
	f := newTestField(5)
	f.Initialize(1920, 1080)
	rec := NewRecorder(1920, 1080)

	stats := f.Tick(rec)

	if stats.Particles != 100 {
		t.Fatalf("particles = %d, want 100", stats.Particles)
	}
	if stats.Pairs != 4950 {
		t.Errorf("pairs = %d, want 4950", stats.Pairs)
	}
	if stats.Links != rec.Lines {
		t.Errorf("stats links %d != recorded lines %d", stats.Links, rec.Lines)
	}
}
