package scene

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/driftfield/effects"
	"github.com/pthm-cable/driftfield/field"
	"github.com/pthm-cable/driftfield/renderer"
	"github.com/pthm-cable/driftfield/telemetry"
	"github.com/pthm-cable/driftfield/workspace"
)

// wheelStep is how far one mouse wheel notch scrolls the home page.
const wheelStep = 60

var heroTitles = []string{"Hi, I'm a", "developer.", "I build with"}

var cardTitles = []string{"Portfolio", "Field Notes", "Synth Kit"}

// Frame is the driver tick for a windowed run.
func (s *Scene) Frame(uint64) {
	s.perf.StartFrame()
	s.handleWindowKeys()
	s.Update(time.Duration(rl.GetFrameTime()*float32(time.Second)), readInput())

	s.perf.StartPhase(telemetry.PhasePresent)
	s.Draw()
	s.perf.EndFrame()
	s.perf.RecordPresent()

	s.frames++
	s.flushTelemetry()
}

// handleWindowKeys processes keys that act on the window rather than the page.
func (s *Scene) handleWindowKeys() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		s.debug = !s.debug
	}
}

// readInput gathers this frame's pointer and key input.
func readInput() Input {
	mouse := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	in := Input{
		Pointer: r2.Vec{X: float64(mouse.X), Y: float64(mouse.Y)},
		Moved:   delta.X != 0 || delta.Y != 0,
		Click:   rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Scroll:  -float64(rl.GetMouseWheelMove()) * wheelStep,
	}

	keys := []struct {
		key    int32
		action Action
	}{
		{rl.KeyB, ActionBoot},
		{rl.KeyM, ActionMelody},
		{rl.KeyT, ActionTheme},
		{rl.KeyTab, ActionPage},
		{rl.KeyE, ActionSidebar},
	}
	for _, k := range keys {
		if rl.IsKeyPressed(k.key) {
			in.Actions = append(in.Actions, k.action)
		}
	}

	for i, f := range workspace.Files() {
		if rl.IsKeyPressed(rl.KeyOne + int32(i)) {
			in.OpenFile = f.Name
		}
	}
	return in
}

// Draw renders the current page.
func (s *Scene) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(renderer.Color(s.palette.Background))

	s.drawBlobs()
	if s.layer != nil {
		if p, ok := s.layer.Canvas().(interface{ Present() }); ok {
			p.Present()
		}
	}

	if s.page == PageHome {
		s.drawHome()
	} else {
		s.drawWorkspace()
	}

	if s.loader > 0 {
		s.drawLoader()
	}
	if s.debug {
		s.hud.Draw(s.hudData(rl.GetFPS()))
		s.perfPanel.Draw(s.perf.Stats())
		s.hud.DrawControls(int32(s.height), "B boot  M melody  T theme  Tab page  1-6 files  E sidebar  F3 debug  F11 fullscreen")
	}
	s.drawCursor()

	rl.EndDrawing()
}

func (s *Scene) col(c field.RGBA) rl.Color {
	return renderer.Color(c)
}

func rec(r effects.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.Min.X), Y: float32(r.Min.Y), Width: float32(r.W), Height: float32(r.H)}
}

func (s *Scene) drawBlobs() {
	w, h := float64(s.width), float64(s.height)
	shift := effects.Parallax(s.scrollY, s.cfg.Effects.ParallaxSpeed)
	anchors := []r2.Vec{{X: 0.2, Y: 0.25}, {X: 0.8, Y: 0.3}, {X: 0.5, Y: 0.8}}
	for i, a := range anchors {
		off := effects.BlobOffset(s.pointer, w, h, i, s.cfg.Effects.BlobSpeed)
		x := a.X*w + off.X
		y := a.Y*h + off.Y
		if s.page == PageHome {
			y += shift * 0.2
		}
		rl.DrawCircleV(rl.Vector2{X: float32(x), Y: float32(y)}, float32(0.18*w), rl.Fade(s.col(s.palette.Accent), 0.06))
	}
}

func (s *Scene) drawHome() {
	l := s.homeLayout()
	text, muted, accent := s.col(s.palette.Text), s.col(s.palette.Muted), s.col(s.palette.Accent)

	// hero
	y := int32(180 - s.scrollY)
	for i, line := range heroTitles[:2] {
		rl.DrawText(line, 80, y+int32(i)*64, 56, text)
	}
	typed := heroTitles[2] + " " + s.typewriter.Text()
	if (time.Now().UnixMilli()/500)%2 == 0 {
		typed += "|"
	}
	rl.DrawText(typed, 80, y+150, 32, accent)

	cta := l.CTA
	off := effects.Magnetic(s.pointer, cta, s.cfg.Effects.MagneticStrength)
	if !cta.Contains(s.pointer) {
		off = r2.Vec{}
	}
	cta.Min = r2.Add(cta.Min, off)
	rl.DrawRectangleRec(rec(cta), accent)
	rl.DrawText("Open workspace", int32(cta.Min.X)+22, int32(cta.Min.Y)+15, 18, s.col(s.palette.Background))

	// sections
	for _, sec := range homeSections[1:] {
		top := int32(sec.Top - s.scrollY)
		alpha := float32(0.15)
		if s.reveal.Visible(sec.ID) {
			alpha = 1
		}
		rl.DrawText(sec.Title, 80, top+80, 40, rl.Fade(text, alpha))
		rl.DrawLine(80, top+130, 280, top+130, rl.Fade(accent, alpha))
	}

	// project cards
	for i, card := range l.Cards {
		s.drawCard(card, cardTitles[i%len(cardTitles)])
	}

	// header
	rl.DrawRectangleRec(rec(l.Header), rl.Fade(s.col(s.palette.Panel), 0.92))
	rl.DrawText("portfolio", 24, int32(l.Header.H/2)-10, 22, text)
	active := s.ActiveSection()
	if l.Menu.W > 0 {
		for i := 0; i < 3; i++ {
			y := int32(l.Menu.H/2) - 8 + int32(i)*7
			rl.DrawRectangle(int32(l.Menu.Min.X)+16, y, 24, 3, text)
		}
		if len(l.Nav) > 0 {
			last := l.Nav[len(l.Nav)-1]
			drop := rect(l.Nav[0].Min.X, l.Nav[0].Min.Y, l.Nav[0].W, last.Min.Y+last.H-l.Nav[0].Min.Y)
			rl.DrawRectangleRec(rec(drop), rl.Fade(s.col(s.palette.Panel), 0.97))
		}
	}
	for i, r := range l.Nav {
		c := muted
		if homeSections[i].ID == active {
			c = accent
		}
		rl.DrawText(homeSections[i].Title, int32(r.Min.X)+12, int32(r.Min.Y+r.H/2)-8, 16, c)
	}
	rl.DrawText(s.palette.Name, int32(l.Theme.Min.X), int32(l.Theme.H/2)-8, 14, muted)

	// scroll progress
	pct := effects.ScrollProgress(s.scrollY, homeHeight, float64(s.height))
	rl.DrawRectangle(0, int32(l.Header.H), int32(float64(s.width)*pct/100), 3, accent)
}

func (s *Scene) drawCard(card effects.Rect, title string) {
	tilt := effects.Rest
	if card.Contains(s.pointer) {
		tilt = effects.TiltAt(s.pointer, card, s.cfg.Effects.TiltMax, s.cfg.Effects.TiltScale)
	}

	c := card.Center()
	r := rl.Rectangle{
		X:      float32(c.X),
		Y:      float32(c.Y - tilt.RotateX),
		Width:  float32(card.W * tilt.Scale),
		Height: float32(card.H * tilt.Scale),
	}
	origin := rl.Vector2{X: r.Width / 2, Y: r.Height / 2}
	rl.DrawRectanglePro(r, origin, float32(tilt.RotateY*0.3), s.col(s.palette.Panel))

	if card.Contains(s.pointer) {
		spot := effects.Local(s.pointer, card)
		rl.BeginScissorMode(int32(card.Min.X), int32(card.Min.Y), int32(card.W), int32(card.H))
		rl.DrawCircleV(rl.Vector2{X: float32(card.Min.X + spot.X), Y: float32(card.Min.Y + spot.Y)}, 120, rl.Fade(s.col(s.palette.Accent), 0.12))
		rl.EndScissorMode()
	}
	rl.DrawText(title, int32(card.Min.X)+20, int32(card.Min.Y)+20, 24, s.col(s.palette.Text))
}

func (s *Scene) drawWorkspace() {
	l := s.workspaceLayout()
	text, muted, accent := s.col(s.palette.Text), s.col(s.palette.Muted), s.col(s.palette.Accent)
	panel := s.col(s.palette.Panel)
	files := workspace.Files()
	active := s.ws.Active()

	// editor
	if p, ok := s.ws.Panel(active.Name); ok {
		x, y := int32(l.Content.Min.X)+24, int32(l.Content.Min.Y)+16
		rl.DrawText(p.Breadcrumb, x, y, 14, muted)
		rl.DrawText(p.Title, x, y+28, 28, text)
		y += 76
		for _, e := range p.Entries {
			rl.DrawText(e.Heading, x, y, 20, accent)
			if e.Company != "" || e.Period != "" {
				rl.DrawText(fmt.Sprintf("%s  %s", e.Company, e.Period), x, y+24, 14, muted)
				y += 20
			}
			rl.DrawText(e.Text, x, y+26, 16, text)
			y += 60
		}
	}

	// tabs
	rl.DrawRectangle(int32(l.Content.Min.X), 0, int32(l.Content.W), tabHeight, panel)
	for i, r := range l.Tabs {
		c := muted
		if files[i].Name == active.Name {
			rl.DrawRectangleRec(rec(r), s.col(s.palette.Background))
			rl.DrawRectangle(int32(r.Min.X), int32(r.Min.Y+r.H)-2, int32(r.W), 2, accent)
			c = text
		}
		rl.DrawText(files[i].Label(), int32(r.Min.X)+12, 10, 14, c)
	}

	// activity bar
	rl.DrawRectangle(0, 0, activityWidth, int32(s.height), panel)
	for i, r := range l.Activity {
		c := muted
		if i == s.ws.Activity() {
			c = text
			rl.DrawRectangle(0, int32(r.Min.Y), 2, int32(r.H), accent)
		}
		rl.DrawText(workspace.Activities[i][:1], int32(r.Min.X)+18, int32(r.Min.Y)+14, 20, c)
	}

	// sidebar
	if len(l.Files) > 0 {
		if l.Overlay {
			rl.DrawRectangle(int32(l.Sidebar.Min.X), 0, int32(s.width), int32(s.height), rl.Fade(rl.Black, 0.4))
		}
		rl.DrawRectangleRec(rec(l.Sidebar), panel)
		rl.DrawText("EXPLORER", int32(l.Sidebar.Min.X)+16, 14, 12, muted)
		for i, r := range l.Files {
			c := muted
			if files[i].Name == active.Name {
				rl.DrawRectangleRec(rec(r), rl.Fade(accent, 0.2))
				c = text
			}
			rl.DrawText(files[i].Label(), int32(r.Min.X)+24, int32(r.Min.Y)+6, 14, c)
		}
	}

	// status bar
	rl.DrawRectangleRec(rec(l.Status), accent)
	sy := int32(l.Status.Min.Y) + 4
	rl.DrawText(s.ws.Status(), 12, sy, 14, rl.White)
	boot := "boot"
	if s.player.BootPlayed() {
		boot = "boot (played)"
	}
	melody := "melody"
	if s.player.MelodyPlaying() {
		melody = "melody (on)"
	}
	rl.DrawText(boot, int32(l.Boot.Min.X)+8, sy, 14, rl.White)
	rl.DrawText(melody, int32(l.Melody.Min.X)+8, sy, 14, rl.White)
	rl.DrawText("theme", int32(l.Theme.Min.X)+8, sy, 14, rl.White)
}

func (s *Scene) drawLoader() {
	total := loaderDuration(s.cfg, s.page)
	rl.DrawRectangle(0, 0, int32(s.width), int32(s.height), s.col(s.palette.Background))

	msg := "Loading..."
	if s.page == PageWorkspace {
		msg = "Starting workspace..."
	}
	fs := int32(24)
	tw := rl.MeasureText(msg, fs)
	cx, cy := int32(s.width/2), int32(s.height/2)
	rl.DrawText(msg, cx-tw/2, cy-40, fs, s.col(s.palette.Text))

	if total > 0 {
		done := 1 - float64(s.loader)/float64(total)
		bar := int32(300)
		rl.DrawRectangle(cx-bar/2, cy, bar, 4, s.col(s.palette.Panel))
		rl.DrawRectangle(cx-bar/2, cy, int32(float64(bar)*done), 4, s.col(s.palette.Accent))
	}
}

func (s *Scene) drawCursor() {
	accent := s.col(s.palette.Accent)
	dot := s.cursor.Dot
	out := s.cursor.Outline
	rl.DrawCircleV(rl.Vector2{X: float32(dot.X), Y: float32(dot.Y)}, 4, accent)
	rl.DrawCircleLines(int32(out.X), int32(out.Y), float32(s.cursor.OutlineSize()/2), rl.Fade(accent, 0.6))
}
