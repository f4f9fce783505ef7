package effects

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Cursor is the custom pointer: a dot that follows the pointer instantly and
// an outline ring that glides after it.
type Cursor struct {
	Dot     r2.Vec
	Outline r2.Vec

	ease        time.Duration
	size        float64
	hoverSize   float64
	hovering    bool
	from        r2.Vec
	target      r2.Vec
	elapsed     time.Duration
	initialized bool
}

// NewCursor creates a cursor whose outline catches up over ease and is size
// wide, or hoverSize wide over interactive elements.
func NewCursor(ease time.Duration, size, hoverSize float64) *Cursor {
	return &Cursor{ease: ease, size: size, hoverSize: hoverSize}
}

// Move records a new pointer position. The outline restarts its glide from
// wherever it currently is.
func (c *Cursor) Move(p r2.Vec) {
	c.Dot = p
	if !c.initialized {
		c.Outline = p
		c.initialized = true
	}
	c.from = c.Outline
	c.target = p
	c.elapsed = 0
}

// Update advances the outline glide by dt.
func (c *Cursor) Update(dt time.Duration) {
	c.elapsed += dt
	if c.ease <= 0 || c.elapsed >= c.ease {
		c.Outline = c.target
		return
	}
	t := float64(c.elapsed) / float64(c.ease)
	c.Outline = r2.Add(c.from, r2.Scale(t, r2.Sub(c.target, c.from)))
}

// SetHover marks whether the pointer is over an interactive element.
func (c *Cursor) SetHover(h bool) {
	c.hovering = h
}

// Hovering reports the hover state.
func (c *Cursor) Hovering() bool {
	return c.hovering
}

// OutlineSize returns the current outline diameter.
func (c *Cursor) OutlineSize() float64 {
	if c.hovering {
		return c.hoverSize
	}
	return c.size
}
