// Package scene wires the particle layer and the page features into the two
// portfolio pages and steps them one frame at a time.
package scene

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/driftfield/background"
	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/effects"
	"github.com/pthm-cable/driftfield/sound"
	"github.com/pthm-cable/driftfield/telemetry"
	"github.com/pthm-cable/driftfield/theme"
	"github.com/pthm-cable/driftfield/typing"
	"github.com/pthm-cable/driftfield/ui"
	"github.com/pthm-cable/driftfield/viewport"
	"github.com/pthm-cable/driftfield/workspace"
)

// Options configures scene creation.
type Options struct {
	Seed      int64
	Page      Page
	Hash      string // workspace file to open, as in "#about"
	LogStats  bool
	OutputDir string

	Prefs    theme.Store  // nil disables theme persistence
	Sound    sound.Output // nil plays nothing
	Reporter Reporter     // nil reports through slog
}

// Action is a discrete user command.
type Action int

const (
	ActionBoot Action = iota
	ActionMelody
	ActionTheme
	ActionPage
	ActionSidebar
)

// Input is the user input gathered for one frame.
type Input struct {
	Pointer r2.Vec
	Moved   bool
	Click   bool
	Scroll  float64 // pixels, positive scrolls down
	Actions []Action
	// OpenFile names a workspace file to open.
	OpenFile string
}

// Scene holds the state of the running page.
type Scene struct {
	cfg  *config.Config
	opts Options
	ctx  context.Context
	rng  *rand.Rand

	host          background.Host
	sizes         viewport.SizeSource
	layer         *background.Layer
	mountReported bool
	reporter      Reporter

	page          Page
	loader        time.Duration
	width, height int

	typewriter *typing.Typewriter
	cursor     *effects.Cursor
	reveal     *effects.Reveal
	ws         *workspace.Workspace
	themes     *theme.Selector
	palette    theme.Palette
	player     *sound.Player

	pointer  r2.Vec
	scrollY  float64
	menuOpen bool

	debug     bool
	hud       *ui.HUD
	perfPanel *ui.PerfPanel

	frames    uint64
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
}

// New creates the scene and mounts the particle layer on host. sizes may be
// nil when the host never resizes. A layer that cannot mount is reported and
// the page runs without particles.
func New(ctx context.Context, cfg *config.Config, host background.Host, sizes viewport.SizeSource, opts Options) (*Scene, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tw, err := typing.New(cfg.Typing.Words, cfg.Derived.TypingDelays)
	if err != nil {
		return nil, fmt.Errorf("typing effect: %w", err)
	}
	ws, err := workspace.New(cfg.Effects.SidebarBreakpoint)
	if err != nil {
		return nil, err
	}
	themes, err := theme.NewSelector(opts.Prefs, cfg.Theme.Key, cfg.Theme.Default)
	if err != nil {
		return nil, err
	}
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = LogReporter{}
	}

	s := &Scene{
		cfg:        cfg,
		opts:       opts,
		ctx:        ctx,
		rng:        rand.New(rand.NewSource(seed)),
		host:       host,
		sizes:      sizes,
		reporter:   reporter,
		width:      cfg.Screen.Width,
		height:     cfg.Screen.Height,
		typewriter: tw,
		cursor:     effects.NewCursor(cfg.Derived.CursorEase, cfg.Effects.CursorOutline, cfg.Effects.CursorOutlineHover),
		reveal:     effects.NewReveal(0.1),
		ws:         ws,
		themes:     themes,
		player:     sound.NewPlayer(opts.Sound, beep.SampleRate(cfg.Sound.SampleRate), cfg.Derived.MelodyHold),
		collector:  telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perf:       telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:     output,
		hud:        ui.NewHUD(),
		perfPanel:  ui.NewPerfPanel(8, 90),
	}
	if region, ok := host.Region(cfg.Field.MountID); ok {
		s.width, s.height = region.Size()
	}

	s.palette, err = themes.Load(ctx)
	if err != nil {
		slog.Warn("using default theme", "error", err)
	}

	slog.Info("scene created",
		"seed", seed,
		"page", opts.Page.String(),
		"theme", s.palette.Name,
		"width", s.width,
		"height", s.height,
	)

	s.SwitchPage(opts.Page)
	return s, nil
}

// SwitchPage shows page p: the loader restarts and the particle field is
// re-created.
func (s *Scene) SwitchPage(p Page) {
	s.page = p
	s.loader = loaderDuration(s.cfg, p)
	s.scrollY = 0
	s.menuOpen = false

	if p == PageWorkspace {
		hash := s.ws.Hash()
		if hash == "" {
			hash = s.opts.Hash
		}
		if err := s.ws.Open(hash); err != nil {
			slog.Warn("opening workspace file", "hash", hash, "error", err)
		}
		s.ws.Resize(s.width)
	}

	s.remount()
}

// remount drops the current layer and mounts a fresh field.
func (s *Scene) remount() {
	if s.layer != nil {
		if u, ok := s.layer.Canvas().(interface{ Unload() }); ok {
			u.Unload()
		}
		s.layer = nil
	}

	layer, err := background.Mount(s.host, s.cfg.Field.MountID, s.cfg.Derived.FieldParams, s.rng)
	if err != nil {
		s.reportMount(err)
		return
	}
	if w, h := layer.Viewport().Size(); w != s.width || h != s.height {
		layer.Resize(s.width, s.height)
	}
	s.layer = layer
	s.collector.RecordReseed()
}

func (s *Scene) reportMount(err error) {
	if s.mountReported {
		return
	}
	s.mountReported = true
	s.reporter.Report(err)
}

// Resize applies a new viewport size: the field is reseeded and the
// workspace sidebar follows the width.
func (s *Scene) Resize(w, h int) {
	s.width, s.height = w, h
	if s.layer != nil {
		s.layer.Resize(w, h)
		s.collector.RecordReseed()
	}
	s.ws.Resize(w)
	if !s.narrow() {
		s.menuOpen = false
	}
	s.scrollY = min(s.scrollY, maxScroll(float64(h)))
}

// SetTheme activates the named theme and re-creates the field.
func (s *Scene) SetTheme(name string) error {
	p, err := s.themes.Set(s.ctx, name)
	if err != nil {
		return err
	}
	s.palette = p
	s.remount()
	return nil
}

func (s *Scene) nextTheme() {
	p, err := s.themes.Next(s.ctx)
	if err != nil {
		slog.Error("failed to save theme", "error", err)
	}
	s.palette = p
	s.remount()
}

// Update advances the page by dt of wall time and one field frame.
func (s *Scene) Update(dt time.Duration, in Input) {
	s.perf.StartPhase(telemetry.PhaseReseed)
	if s.sizes != nil {
		if w, h, changed := s.sizes.Resized(); changed {
			s.Resize(w, h)
		}
	}
	for _, a := range in.Actions {
		s.apply(a)
	}
	if in.OpenFile != "" && s.page == PageWorkspace {
		if err := s.ws.ClickFile(in.OpenFile, s.width); err != nil {
			slog.Warn("opening workspace file", "file", in.OpenFile, "error", err)
		}
	}
	if in.Click && s.loader <= 0 {
		s.click(in.Pointer)
	}

	s.loader = max(0, s.loader-dt)
	if s.page == PageHome {
		s.typewriter.Advance(dt)
		s.scrollY = min(max(0, s.scrollY+in.Scroll), maxScroll(float64(s.height)))
		s.observeSections()
	}

	if in.Moved {
		s.cursor.Move(in.Pointer)
	}
	s.pointer = in.Pointer
	s.cursor.SetHover(s.interactiveAt(in.Pointer))
	s.cursor.Update(dt)

	s.perf.StartPhase(telemetry.PhaseTick)
	if s.layer != nil {
		s.collector.RecordFrame(s.layer.Tick())
	}
}

// HeadlessFrame is the driver tick for runs without a window.
func (s *Scene) HeadlessFrame(uint64) {
	s.perf.StartFrame()
	s.Update(s.cfg.Derived.HeadlessInterval, Input{})
	s.perf.EndFrame()
	s.frames++
	s.flushTelemetry()
}

func (s *Scene) apply(a Action) {
	switch a {
	case ActionBoot:
		s.player.PlayBoot()
	case ActionMelody:
		s.player.ToggleMelody()
	case ActionTheme:
		s.nextTheme()
	case ActionPage:
		if s.page == PageHome {
			s.SwitchPage(PageWorkspace)
		} else {
			s.SwitchPage(PageHome)
		}
	case ActionSidebar:
		if s.page == PageWorkspace {
			s.ws.ClickActivity(s.ws.Activity(), s.width)
		} else if s.narrow() {
			s.menuOpen = !s.menuOpen
		}
	}
}

func (s *Scene) click(p r2.Vec) {
	if s.page == PageHome {
		s.clickHome(p)
		return
	}
	s.clickWorkspace(p)
}

func (s *Scene) clickHome(p r2.Vec) {
	l := s.homeLayout()
	if l.Menu.Contains(p) {
		s.menuOpen = !s.menuOpen
		return
	}
	if i := hit(l.Nav, p); i >= 0 {
		s.scrollY = min(homeSections[i].Top, maxScroll(float64(s.height)))
		s.menuOpen = false
		return
	}
	if l.Theme.Contains(p) {
		s.nextTheme()
		return
	}
	if l.CTA.Contains(p) {
		s.SwitchPage(PageWorkspace)
	}
}

func (s *Scene) clickWorkspace(p r2.Vec) {
	l := s.workspaceLayout()
	files := workspace.Files()

	switch {
	case l.Boot.Contains(p):
		s.player.PlayBoot()
	case l.Melody.Contains(p):
		s.player.ToggleMelody()
	case l.Theme.Contains(p):
		s.nextTheme()
	case hit(l.Activity, p) >= 0:
		s.ws.ClickActivity(hit(l.Activity, p), s.width)
	case hit(l.Files, p) >= 0:
		if err := s.ws.ClickFile(files[hit(l.Files, p)].Name, s.width); err != nil {
			slog.Warn("opening workspace file", "error", err)
		}
	case l.Overlay && !l.Sidebar.Contains(p):
		s.ws.ClickOverlay()
	case hit(l.Tabs, p) >= 0:
		if err := s.ws.Switch(files[hit(l.Tabs, p)].Name); err != nil {
			slog.Warn("switching tab", "error", err)
		}
	}
}

// interactiveAt reports whether p is over something clickable.
func (s *Scene) interactiveAt(p r2.Vec) bool {
	if s.page == PageHome {
		l := s.homeLayout()
		return hit(l.Nav, p) >= 0 || hit(l.Cards, p) >= 0 || l.CTA.Contains(p) || l.Theme.Contains(p) || l.Menu.Contains(p)
	}
	l := s.workspaceLayout()
	return hit(l.Tabs, p) >= 0 || hit(l.Files, p) >= 0 || hit(l.Activity, p) >= 0 || hit(l.buttons(), p) >= 0
}

func (s *Scene) observeSections() {
	for i, sec := range homeSections {
		bottom := homeHeight
		if i+1 < len(homeSections) {
			bottom = homeSections[i+1].Top
		}
		s.reveal.Observe(sec.ID, sec.Top, bottom-sec.Top, s.scrollY, float64(s.height))
	}
}

func (s *Scene) homeLayout() homeLayout {
	scrolled := effects.HeaderScrolled(s.scrollY, s.cfg.Effects.HeaderThreshold)
	return layoutHome(float64(s.width), float64(s.height), s.scrollY, scrolled, s.narrow(), s.menuOpen)
}

func (s *Scene) workspaceLayout() workspaceLayout {
	return layoutWorkspace(float64(s.width), float64(s.height), s.narrow(), s.ws.SidebarOpen())
}

func (s *Scene) narrow() bool {
	return s.width <= s.cfg.Effects.SidebarBreakpoint
}

// MenuOpen reports whether the narrow-window nav menu is expanded.
func (s *Scene) MenuOpen() bool {
	return s.menuOpen
}

// ActiveSection returns the home section the viewport is in.
func (s *Scene) ActiveSection() string {
	sections := make([]effects.Section, len(homeSections))
	for i, sec := range homeSections {
		sections[i] = effects.Section{ID: sec.ID, Top: sec.Top}
	}
	return effects.ActiveSection(sections, s.scrollY, s.cfg.Effects.SectionOffset)
}

// hudData collects the debug HUD values.
func (s *Scene) hudData(fps int32) ui.HUDData {
	d := ui.HUDData{
		Page:      s.page.String(),
		Theme:     s.palette.Name,
		Viewport:  [2]int{s.width, s.height},
		Mounted:   s.layer != nil,
		FPS:       fps,
		Frames:    s.frames,
		BootSound: s.player.BootPlayed(),
		Melody:    s.player.MelodyPlaying(),
	}
	if s.layer != nil {
		d.Stats = s.layer.LastStats()
	}
	return d
}

// Page returns the page on show.
func (s *Scene) Page() Page {
	return s.page
}

// Loading reports whether the loader overlay is up.
func (s *Scene) Loading() bool {
	return s.loader > 0
}

// Layer returns the particle layer, or nil when it could not be mounted.
func (s *Scene) Layer() *background.Layer {
	return s.layer
}

// Workspace returns the workspace page state.
func (s *Scene) Workspace() *workspace.Workspace {
	return s.ws
}

// Palette returns the active theme palette.
func (s *Scene) Palette() theme.Palette {
	return s.palette
}

// Player returns the sound player.
func (s *Scene) Player() *sound.Player {
	return s.player
}

// ScrollY returns the home page scroll offset.
func (s *Scene) ScrollY() float64 {
	return s.scrollY
}

// Frames returns the number of frames stepped.
func (s *Scene) Frames() uint64 {
	return s.frames
}

// Unload releases the layer canvas and closes telemetry output.
func (s *Scene) Unload() {
	if s.layer != nil {
		if u, ok := s.layer.Canvas().(interface{ Unload() }); ok {
			u.Unload()
		}
		s.layer = nil
	}
	s.player.StopMelody()
	if err := s.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
