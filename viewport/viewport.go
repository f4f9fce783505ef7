// Package viewport keeps a canvas and its particle field in step with the
// host window size.
package viewport

// Canvas is the drawing surface whose pixel size follows the viewport.
type Canvas interface {
	SetSize(w, h int)
}

// Seeder is reseeded with the new dimensions after every resize.
type Seeder interface {
	Initialize(w, h float64)
}

// SizeSource reports host resize events.
type SizeSource interface {
	// Resized reports whether the viewport changed since the last call,
	// and its current size.
	Resized() (w, h int, changed bool)
}

// Adapter owns the viewport dimensions.
type Adapter struct {
	canvas Canvas
	seeder Seeder
	w, h   int
	resets int
}

// New sizes the canvas and seeds the field for the initial viewport.
func New(canvas Canvas, seeder Seeder, w, h int) *Adapter {
	a := &Adapter{canvas: canvas, seeder: seeder}
	a.Resize(w, h)
	return a
}

// Resize applies a new viewport size: the canvas is resized, then the field
// is fully reseeded. Prior particle state is discarded.
func (a *Adapter) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	a.w, a.h = w, h
	a.canvas.SetSize(w, h)
	a.seeder.Initialize(float64(w), float64(h))
	a.resets++
}

// Poll applies a resize if the source reports one.
func (a *Adapter) Poll(src SizeSource) bool {
	w, h, changed := src.Resized()
	if !changed {
		return false
	}
	a.Resize(w, h)
	return true
}

// Size returns the current viewport size.
func (a *Adapter) Size() (w, h int) {
	return a.w, a.h
}

// Resets returns how many times the field has been seeded.
func (a *Adapter) Resets() int {
	return a.resets
}
