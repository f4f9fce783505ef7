package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated field statistics for a window of frames.
type WindowStats struct {
	WindowStart uint64 `csv:"-"`
	WindowEnd   uint64 `csv:"window_end"`
	Frames      int    `csv:"frames"`
	Reseeds     int    `csv:"reseeds"`

	// Particle count at window end and over the window
	Particles     int     `csv:"particles"`
	ParticlesMean float64 `csv:"particles_mean"`

	// Proximity links drawn per frame
	LinksMean float64 `csv:"links_mean"`
	LinksP10  float64 `csv:"links_p10"`
	LinksP50  float64 `csv:"links_p50"`
	LinksP90  float64 `csv:"links_p90"`

	// Share of visited pairs that were linked, and mean alpha of a drawn link
	LinkRatio float64 `csv:"link_ratio"`
	AlphaMean float64 `csv:"alpha_mean"`
}

// Quantile returns the empirical p-quantile of values. values need not be
// sorted. Returns 0 for an empty slice.
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Summary calculates mean and the 10th, 50th and 90th percentiles.
func Summary(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_start", s.WindowStart),
		slog.Uint64("window_end", s.WindowEnd),
		slog.Int("frames", s.Frames),
		slog.Int("reseeds", s.Reseeds),
		slog.Int("particles", s.Particles),
		slog.Float64("particles_mean", s.ParticlesMean),
		slog.Float64("links_mean", s.LinksMean),
		slog.Float64("links_p10", s.LinksP10),
		slog.Float64("links_p50", s.LinksP50),
		slog.Float64("links_p90", s.LinksP90),
		slog.Float64("link_ratio", s.LinkRatio),
		slog.Float64("alpha_mean", s.AlphaMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEnd,
		"frames", s.Frames,
		"reseeds", s.Reseeds,
		"particles", s.Particles,
		"links_mean", s.LinksMean,
		"links_p50", s.LinksP50,
		"links_p90", s.LinksP90,
		"link_ratio", s.LinkRatio,
		"alpha_mean", s.AlphaMean,
	)
}
