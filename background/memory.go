package background

import "github.com/pthm-cable/driftfield/field"

// MemoryRegion is a region backed by a field.Recorder. Headless runs and
// tests mount on it.
type MemoryRegion struct {
	W, H int
	// Err, when set, is returned by Canvas to simulate a host without 2D support.
	Err error

	rec *field.Recorder
}

// Size returns the region size.
func (r *MemoryRegion) Size() (int, int) {
	return r.W, r.H
}

// Canvas returns the region's recorder, creating it on first use.
func (r *MemoryRegion) Canvas() (Canvas, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if r.rec == nil {
		r.rec = field.NewRecorder(r.W, r.H)
	}
	return r.rec, nil
}

// Recorder returns the backing recorder, or nil before Canvas was called.
func (r *MemoryRegion) Recorder() *field.Recorder {
	return r.rec
}

// MapHost is a Host over a fixed set of regions.
type MapHost map[string]Region

// Region looks up id.
func (h MapHost) Region(id string) (Region, bool) {
	r, ok := h[id]
	return r, ok
}
