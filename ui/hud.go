package ui

import (
	"fmt"
	"sort"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/field"
	"github.com/pthm-cable/driftfield/telemetry"
)

// HUDData holds the values the debug HUD shows.
type HUDData struct {
	Page      string
	Theme     string
	Stats     field.TickStats
	Viewport  [2]int
	Mounted   bool
	FPS       int32
	Frames    uint64
	BootSound bool
	Melody    bool
}

// Lines returns the HUD text, one entry per line.
func (d HUDData) Lines() []string {
	layer := fmt.Sprintf("Particles: %d | Links: %d / %d pairs", d.Stats.Particles, d.Stats.Links, d.Stats.Pairs)
	if !d.Mounted {
		layer = "Particles: unavailable"
	}
	return []string{
		fmt.Sprintf("Page: %s | Theme: %s", d.Page, d.Theme),
		layer,
		fmt.Sprintf("Viewport: %dx%d | FPS: %d | Frame: %d", d.Viewport[0], d.Viewport[1], d.FPS, d.Frames),
		fmt.Sprintf("Boot: %s | Melody: %s", choose(d.BootSound, "played", "ready"), choose(d.Melody, "on", "off")),
	}
}

func choose(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}

// HUD renders the debug heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	lines := data.Lines()
	height := int32(len(lines))*r.Theme.LineHeight + 2*r.Theme.Padding
	r.DrawPanel(8, 8, 360, height)

	y := 8 + r.Theme.Padding
	for _, line := range lines {
		rl.DrawText(line, 8+r.Theme.Padding, y, r.Theme.FontSize, r.Theme.LabelColor)
		y += r.Theme.LineHeight
	}
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-42, 12, rl.Gray)
}

// PhaseRow is one line of the perf panel.
type PhaseRow struct {
	Name string
	Avg  time.Duration
	Pct  float64
}

// PhaseRows orders the phase breakdown by average duration, longest first.
func PhaseRows(stats telemetry.PerfStats) []PhaseRow {
	rows := make([]PhaseRow, 0, len(stats.PhaseAvg))
	for name, avg := range stats.PhaseAvg {
		rows = append(rows, PhaseRow{Name: name, Avg: avg, Pct: stats.PhasePct[name]})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Avg != rows[j].Avg {
			return rows[i].Avg > rows[j].Avg
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// PerfPanel renders the frame phase breakdown.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	rows := PhaseRows(stats)
	width := int32(260)
	height := int32(len(rows)+3)*(r.Theme.LineHeight+2) + 2*r.Theme.Padding
	r.DrawPanel(p.x, p.y, width, height)

	x := p.x + r.Theme.Padding
	y := p.y + r.Theme.Padding
	y = r.DrawSectionHeader(x, y, "Frame Performance")
	y = r.DrawLabelValue(x, y, "Avg", stats.AvgFrame.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "Max", stats.MaxFrame.Round(time.Microsecond).String())
	for _, row := range rows {
		y = r.DrawBar(x, y, row.Name, row.Pct/100, width-2*r.Theme.Padding)
	}
}
