package telemetry

import "github.com/pthm-cable/driftfield/field"

// Collector accumulates per-frame field stats and produces WindowStats.
type Collector struct {
	windowFrames uint64
	windowStart  uint64

	particles []float64
	links     []float64
	pairs     int
	linkSum   int
	alphaSum  float64
	reseeds   int
	last      field.TickStats
}

// NewCollector creates a collector that flushes every windowFrames frames.
func NewCollector(windowFrames int) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	return &Collector{
		windowFrames: uint64(windowFrames),
		particles:    make([]float64, 0, windowFrames),
		links:        make([]float64, 0, windowFrames),
	}
}

// RecordFrame records the stats of one field tick.
func (c *Collector) RecordFrame(s field.TickStats) {
	c.particles = append(c.particles, float64(s.Particles))
	c.links = append(c.links, float64(s.Links))
	c.pairs += s.Pairs
	c.linkSum += s.Links
	c.alphaSum += s.AlphaSum
	c.last = s
}

// RecordReseed records a field reseed (resize, page or theme switch).
func (c *Collector) RecordReseed() {
	c.reseeds++
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(frame uint64) bool {
	return frame-c.windowStart >= c.windowFrames
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(frame uint64) WindowStats {
	stats := WindowStats{
		WindowStart: c.windowStart,
		WindowEnd:   frame,
		Frames:      len(c.links),
		Reseeds:     c.reseeds,
		Particles:   c.last.Particles,
	}

	stats.ParticlesMean, _, _, _ = Summary(c.particles)
	stats.LinksMean, stats.LinksP10, stats.LinksP50, stats.LinksP90 = Summary(c.links)
	if c.pairs > 0 {
		stats.LinkRatio = float64(c.linkSum) / float64(c.pairs)
	}
	if c.linkSum > 0 {
		stats.AlphaMean = c.alphaSum / float64(c.linkSum)
	}

	c.windowStart = frame
	c.particles = c.particles[:0]
	c.links = c.links[:0]
	c.pairs = 0
	c.linkSum = 0
	c.alphaSum = 0
	c.reseeds = 0

	return stats
}

// WindowFrames returns the number of frames per window.
func (c *Collector) WindowFrames() uint64 {
	return c.windowFrames
}
