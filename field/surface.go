package field

import "gonum.org/v1/gonum/spatial/r2"

// RGBA is a straight-alpha colour. Alpha stays a float so that very faint
// link strokes (alpha 0.001) survive until the backend converts them.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// WithAlpha returns the colour with a replaced alpha.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Surface is the drawing target of a tick. Every draw call carries its own
// colour; implementations must not rely on style left over from a previous call.
type Surface interface {
	Clear()
	FillCircle(center r2.Vec, radius float64, c RGBA)
	StrokeLine(from, to r2.Vec, width float64, c RGBA)
}

// Op identifies a recorded draw call.
type Op uint8

const (
	OpClear Op = iota
	OpCircle
	OpLine
)

// DrawCall is one call captured by a Recorder.
type DrawCall struct {
	Op     Op
	A, B   r2.Vec
	Radius float64
	Width  float64
	Color  RGBA
}

// Recorder is an in-memory Surface. It keeps the calls issued since the last
// Clear, plus running totals across clears. Headless runs draw into it.
type Recorder struct {
	Calls   []DrawCall
	Clears  int
	Circles int
	Lines   int

	width, height int
}

// NewRecorder creates a recorder with the given pixel size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{width: w, height: h}
}

// Clear drops the retained calls of the previous frame.
func (r *Recorder) Clear() {
	r.Calls = r.Calls[:0]
	r.Calls = append(r.Calls, DrawCall{Op: OpClear})
	r.Clears++
}

// FillCircle records a filled circle.
func (r *Recorder) FillCircle(center r2.Vec, radius float64, c RGBA) {
	r.Calls = append(r.Calls, DrawCall{Op: OpCircle, A: center, Radius: radius, Color: c})
	r.Circles++
}

// StrokeLine records a line segment.
func (r *Recorder) StrokeLine(from, to r2.Vec, width float64, c RGBA) {
	r.Calls = append(r.Calls, DrawCall{Op: OpLine, A: from, B: to, Width: width, Color: c})
	r.Lines++
}

// SetSize sets the pixel size.
func (r *Recorder) SetSize(w, h int) {
	r.width, r.height = w, h
}

// Size returns the pixel size.
func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

// Begin is a no-op; a recorder has no frame scope.
func (r *Recorder) Begin() {}

// End is a no-op.
func (r *Recorder) End() {}

// LinesInFrame returns the line calls retained since the last Clear.
func (r *Recorder) LinesInFrame() []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Op == OpLine {
			out = append(out, c)
		}
	}
	return out
}
