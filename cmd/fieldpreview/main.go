// Particle field preview tool - tune the field live with sliders.
//
// Usage: go run ./cmd/fieldpreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/background"
	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/field"
	"github.com/pthm-cable/driftfield/renderer"
)

const (
	windowWidth  = 1200
	windowHeight = 720
	panelWidth   = 340
)

// previewRegion is the window area left of the control panel.
type previewRegion struct{}

func (previewRegion) Size() (int, int) {
	return max(0, rl.GetScreenWidth()-panelWidth), rl.GetScreenHeight()
}

func (r previewRegion) Canvas() (background.Canvas, error) {
	w, h := r.Size()
	c, err := renderer.NewCanvas(w, h)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// previewSizes reports window resizes as preview area resizes.
type previewSizes struct{}

func (previewSizes) Resized() (int, int, bool) {
	w, h := previewRegion{}.Size()
	return w, h, rl.IsWindowResized()
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, "Particle Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	host := background.MapHost{background.MountID: previewRegion{}}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	layer, err := background.Mount(host, background.MountID, cfg.Derived.FieldParams, rng)
	if err != nil {
		slog.Error("failed to mount field", "error", err)
		os.Exit(1)
	}
	canvas := layer.Canvas().(*renderer.Canvas)
	defer canvas.Unload()

	params := layer.Field().Params()
	paused := false
	var stats field.TickStats

	for !rl.WindowShouldClose() {
		layer.Poll(previewSizes{})

		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if !paused {
			stats = layer.Tick()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 26, G: 16, B: 37, A: 255})
		canvas.Present()

		// Control panel
		panelX := float32(rl.GetScreenWidth() - panelWidth + 15)
		panelY := float32(10)
		rl.DrawRectangle(int32(panelX)-15, 0, panelWidth, int32(rl.GetScreenHeight()), rl.RayWhite)

		rl.DrawText("Particle Field", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Sliders that change the particle count or motion need a reseed
		reseed := false

		density := slider(&panelY, panelX, "Density (px per particle)", params.Density, 2, 50, "%.0f")
		if density != params.Density {
			params.Density = density
			reseed = true
		}

		maxParticles := slider(&panelY, panelX, "Max particles", float64(params.MaxParticles), 0, 300, "%.0f")
		if int(maxParticles) != params.MaxParticles {
			params.MaxParticles = int(maxParticles)
			reseed = true
		}

		speed := slider(&panelY, panelX, "Speed (per frame)", params.Speed, 0, 3, "%.2f")
		if speed != params.Speed {
			params.Speed = speed
			reseed = true
		}

		params.LinkDistance = slider(&panelY, panelX, "Link distance", params.LinkDistance, 0, 250, "%.0f")
		params.LinkAlphaMax = slider(&panelY, panelX, "Link alpha max", params.LinkAlphaMax, 0, 1, "%.2f")

		layer.Field().SetParams(params)

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reseed") {
			reseed = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(paused, "Resume", "Pause")) {
			paused = !paused
		}
		panelY += 40
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 250, Height: 30}, "Reset to config") {
			params = cfg.Derived.FieldParams
			layer.Field().SetParams(params)
			reseed = true
		}
		panelY += 50

		if reseed {
			layer.Reseed()
		}

		// Stats
		w, h := layer.Viewport().Size()
		lines := []string{
			fmt.Sprintf("Viewport: %dx%d", w, h),
			fmt.Sprintf("Particles: %d", stats.Particles),
			fmt.Sprintf("Pairs: %d  Links: %d", stats.Pairs, stats.Links),
			fmt.Sprintf("Alpha at 0: %.3f", params.LinkAlpha(0)),
			fmt.Sprintf("Seeds: %d", layer.Viewport().Resets()),
			fmt.Sprintf("FPS: %d", rl.GetFPS()),
		}
		for _, line := range lines {
			rl.DrawText(line, int32(panelX), int32(panelY), 16, rl.DarkGray)
			panelY += 20
		}
		rl.DrawText("Space: pause", int32(panelX), int32(panelY)+10, 14, rl.Gray)

		rl.EndDrawing()
	}
}

// slider draws a labelled slider, advances y, and returns the new value.
func slider(y *float32, x float32, label string, value, lo, hi float64, format string) float64 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: panelWidth - 100, Height: 20},
		"", "",
		float32(value), float32(lo), float32(hi),
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+panelWidth-90), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	if float64(v) == float64(float32(value)) {
		return value
	}
	return float64(v)
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
