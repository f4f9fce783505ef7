// Package background mounts the particle field on a named host region and
// drives it one frame at a time.
package background

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/pthm-cable/driftfield/field"
	"github.com/pthm-cable/driftfield/viewport"
)

// MountID is the region the particle layer attaches to.
const MountID = "particles-js"

var (
	// ErrMountNotFound means the host has no region with the requested id.
	ErrMountNotFound = errors.New("mount point not found")
	// ErrNoDrawingContext means the region could not provide a 2D surface.
	ErrNoDrawingContext = errors.New("drawing context unavailable")
)

// Canvas is a resizable surface owned by the layer. Begin and End bracket
// the draw calls of one frame.
type Canvas interface {
	field.Surface
	SetSize(w, h int)
	Begin()
	End()
}

// Region is a named area of the host.
type Region interface {
	Size() (w, h int)
	// Canvas acquires the region's drawing surface.
	Canvas() (Canvas, error)
}

// Host resolves regions by id.
type Host interface {
	Region(id string) (Region, bool)
}

// Layer is a mounted particle field.
type Layer struct {
	id       string
	field    *field.Field
	canvas   Canvas
	viewport *viewport.Adapter
	last     field.TickStats
}

// Mount acquires a canvas on the host region id, sizes it to the region and
// seeds the field. The layer is not usable when an error is returned.
func Mount(host Host, id string, params field.Params, rng *rand.Rand) (*Layer, error) {
	region, ok := host.Region(id)
	if !ok {
		return nil, fmt.Errorf("mounting %q: %w", id, ErrMountNotFound)
	}
	canvas, err := region.Canvas()
	if err != nil {
		return nil, fmt.Errorf("mounting %q: %w: %v", id, ErrNoDrawingContext, err)
	}
	if canvas == nil {
		return nil, fmt.Errorf("mounting %q: %w", id, ErrNoDrawingContext)
	}

	f := field.New(params, rng)
	w, h := region.Size()
	return &Layer{
		id:       id,
		field:    f,
		canvas:   canvas,
		viewport: viewport.New(canvas, f, w, h),
	}, nil
}

// Tick runs one frame of the field on the layer canvas.
func (l *Layer) Tick() field.TickStats {
	l.canvas.Begin()
	l.last = l.field.Tick(l.canvas)
	l.canvas.End()
	return l.last
}

// Resize applies a new viewport size and reseeds.
func (l *Layer) Resize(w, h int) {
	l.viewport.Resize(w, h)
}

// Poll applies a pending host resize, if any.
func (l *Layer) Poll(src viewport.SizeSource) bool {
	return l.viewport.Poll(src)
}

// Reseed re-creates every particle for the current viewport.
func (l *Layer) Reseed() {
	w, h := l.viewport.Size()
	l.viewport.Resize(w, h)
}

// ID returns the mount id.
func (l *Layer) ID() string {
	return l.id
}

// Field returns the mounted field.
func (l *Layer) Field() *field.Field {
	return l.field
}

// Canvas returns the layer canvas.
func (l *Layer) Canvas() Canvas {
	return l.canvas
}

// Viewport returns the layer's viewport adapter.
func (l *Layer) Viewport() *viewport.Adapter {
	return l.viewport
}

// LastStats returns the stats of the most recent Tick.
func (l *Layer) LastStats() field.TickStats {
	return l.last
}
