package renderer

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/background"
)

// WindowHost exposes named full-window regions of the raylib window.
type WindowHost struct {
	regions map[string]bool
}

// NewWindowHost creates a host offering a full-window region for each id.
func NewWindowHost(ids ...string) *WindowHost {
	h := &WindowHost{regions: make(map[string]bool, len(ids))}
	for _, id := range ids {
		h.regions[id] = true
	}
	return h
}

// Region implements background.Host.
func (h *WindowHost) Region(id string) (background.Region, bool) {
	if !h.regions[id] {
		return nil, false
	}
	return windowRegion{}, true
}

type windowRegion struct{}

func (windowRegion) Size() (w, h int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (r windowRegion) Canvas() (background.Canvas, error) {
	w, h := r.Size()
	c, err := NewCanvas(w, h)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// WindowFrames paces the render loop on the window's frames. EndDrawing
// blocks for the target frame rate, so Next only checks for shutdown.
type WindowFrames struct{}

// Next reports whether another frame should run.
func (WindowFrames) Next(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	return !rl.WindowShouldClose()
}

// WindowSize reports window resizes.
type WindowSize struct{}

// Resized returns the window size and whether it changed this frame.
func (WindowSize) Resized() (w, h int, changed bool) {
	return rl.GetScreenWidth(), rl.GetScreenHeight(), rl.IsWindowResized()
}
