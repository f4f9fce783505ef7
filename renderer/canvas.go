// Package renderer implements the drawing surfaces and host bindings on top
// of a raylib window.
package renderer

import (
	"fmt"
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/driftfield/background"
	"github.com/pthm-cable/driftfield/field"
)

// Color converts a field colour to a raylib colour.
func Color(c field.RGBA) rl.Color {
	a := math.Max(0, math.Min(1, c.A))
	return rl.Color{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

func vec(v r2.Vec) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// Canvas is a transparent render texture the particle layer draws into.
// Present composites it onto the current frame. Must be used on the thread
// that owns the window.
type Canvas struct {
	target rl.RenderTexture2D
	w, h   int
	loaded bool
	// failed is set once a reallocation failure has been logged.
	failed bool
}

// loadTarget allocates GPU render textures. Replaced in tests.
var loadTarget = rl.LoadRenderTexture

// NewCanvas allocates a w x h canvas.
func NewCanvas(w, h int) (*Canvas, error) {
	c := &Canvas{}
	if err := c.alloc(w, h); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Canvas) alloc(w, h int) error {
	c.Unload()
	c.w, c.h = max(w, 0), max(h, 0)
	if c.w == 0 || c.h == 0 {
		return nil
	}
	c.target = loadTarget(int32(c.w), int32(c.h))
	if c.target.ID == 0 {
		return fmt.Errorf("render texture %dx%d: %w", c.w, c.h, background.ErrNoDrawingContext)
	}
	c.loaded = true
	return nil
}

// SetSize reallocates the canvas at w x h. Contents are discarded.
func (c *Canvas) SetSize(w, h int) {
	if c.loaded && w == c.w && h == c.h {
		return
	}
	err := c.alloc(w, h)
	if err == nil {
		c.failed = false
		return
	}
	// the field keeps ticking into a canvas that presents nothing
	c.loaded = false
	if !c.failed {
		c.failed = true
		slog.Error("particle canvas unavailable", "width", w, "height", h, "error", err)
	}
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (w, h int) {
	return c.w, c.h
}

// Begin redirects drawing into the canvas.
func (c *Canvas) Begin() {
	if c.loaded {
		rl.BeginTextureMode(c.target)
	}
}

// End restores drawing to the window.
func (c *Canvas) End() {
	if c.loaded {
		rl.EndTextureMode()
	}
}

// Clear wipes the canvas to transparent.
func (c *Canvas) Clear() {
	if c.loaded {
		rl.ClearBackground(rl.Blank)
	}
}

// FillCircle draws a filled circle.
func (c *Canvas) FillCircle(center r2.Vec, radius float64, col field.RGBA) {
	if c.loaded {
		rl.DrawCircleV(vec(center), float32(radius), Color(col))
	}
}

// StrokeLine draws a line segment.
func (c *Canvas) StrokeLine(from, to r2.Vec, width float64, col field.RGBA) {
	if c.loaded {
		rl.DrawLineEx(vec(from), vec(to), float32(width), Color(col))
	}
}

// Present draws the canvas onto the window at the origin.
func (c *Canvas) Present() {
	if !c.loaded {
		return
	}
	// render textures are stored bottom-up
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(c.w), Height: -float32(c.h)}
	rl.DrawTextureRec(c.target.Texture, src, rl.Vector2{}, rl.White)
}

// Unload releases the render texture.
func (c *Canvas) Unload() {
	if c.loaded {
		rl.UnloadRenderTexture(c.target)
		c.loaded = false
	}
}
