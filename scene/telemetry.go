package scene

import "log/slog"

// flushTelemetry emits the stats window once enough frames have run.
func (s *Scene) flushTelemetry() {
	if !s.collector.ShouldFlush(s.frames) {
		return
	}

	stats := s.collector.Flush(s.frames)
	perfStats := s.perf.Stats()

	if s.opts.LogStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if s.output != nil {
		if err := s.output.WriteFrames(stats); err != nil {
			slog.Error("failed to write frames", "error", err)
		}
		if err := s.output.WritePerf(perfStats, stats.WindowEnd); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
