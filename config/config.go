// Package config provides configuration loading and access for the page.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/driftfield/field"
	"github.com/pthm-cable/driftfield/typing"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Driver    DriverConfig    `yaml:"driver"`
	Loader    LoaderConfig    `yaml:"loader"`
	Typing    TypingConfig    `yaml:"typing"`
	Theme     ThemeConfig     `yaml:"theme"`
	Sound     SoundConfig     `yaml:"sound"`
	Effects   EffectsConfig   `yaml:"effects"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Prefs     PrefsConfig     `yaml:"prefs"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width" env:"DRIFTFIELD_SCREEN_WIDTH"`
	Height    int    `yaml:"height" env:"DRIFTFIELD_SCREEN_HEIGHT"`
	TargetFPS int    `yaml:"target_fps" env:"DRIFTFIELD_TARGET_FPS"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// FieldConfig holds the particle field parameters. Density is viewport
// width per particle; Speed bounds each velocity component per frame.
type FieldConfig struct {
	MountID       string   `yaml:"mount_id"`
	Density       float64  `yaml:"density"`
	MaxParticles  int      `yaml:"max_particles" env:"DRIFTFIELD_MAX_PARTICLES"`
	Speed         float64  `yaml:"speed"`
	MaxRadius     float64  `yaml:"max_radius"`
	LinkDistance  float64  `yaml:"link_distance"`
	LinkAlphaMax  float64  `yaml:"link_alpha_max"`
	LinkFalloff   float64  `yaml:"link_falloff"`
	LineWidth     float64  `yaml:"line_width"`
	Color         [3]uint8 `yaml:"color"`
	ParticleAlpha float64  `yaml:"particle_alpha"`
}

// DriverConfig holds render loop settings.
type DriverConfig struct {
	// HeadlessInterval paces frames when there is no display (0 = unpaced).
	HeadlessInterval float64 `yaml:"headless_interval"`
}

// LoaderConfig holds loader overlay durations, in seconds.
type LoaderConfig struct {
	Home      float64 `yaml:"home"`
	Workspace float64 `yaml:"workspace"`
}

// TypingConfig holds the hero typing effect settings. Delays are seconds.
type TypingConfig struct {
	Words     []string `yaml:"words"`
	Type      float64  `yaml:"type"`
	Delete    float64  `yaml:"delete"`
	HoldFull  float64  `yaml:"hold_full"`
	HoldEmpty float64  `yaml:"hold_empty"`
}

// ThemeConfig holds theme defaults.
type ThemeConfig struct {
	Key     string `yaml:"key"`
	Default string `yaml:"default"`
}

// SoundConfig holds audio settings.
type SoundConfig struct {
	Enabled    bool    `yaml:"enabled" env:"DRIFTFIELD_SOUND"`
	SampleRate int     `yaml:"sample_rate"`
	BufferMs   int     `yaml:"buffer_ms"`
	MelodyHold float64 `yaml:"melody_hold"` // seconds before the melody button resets
}

// EffectsConfig holds pointer and scroll effect constants.
// CursorEase is the time in seconds the cursor outline takes to catch up.
type EffectsConfig struct {
	TiltMax            float64 `yaml:"tilt_max"`
	TiltScale          float64 `yaml:"tilt_scale"`
	MagneticStrength   float64 `yaml:"magnetic_strength"`
	BlobSpeed          float64 `yaml:"blob_speed"`
	HeaderThreshold    float64 `yaml:"header_threshold"`
	SectionOffset      float64 `yaml:"section_offset"`
	ParallaxSpeed      float64 `yaml:"parallax_speed"`
	CursorEase         float64 `yaml:"cursor_ease"`
	CursorOutline      float64 `yaml:"cursor_outline"`
	CursorOutlineHover float64 `yaml:"cursor_outline_hover"`
	SidebarBreakpoint  int     `yaml:"sidebar_breakpoint"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // frames per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// PrefsConfig holds preference store settings.
type PrefsConfig struct {
	Path string `yaml:"path" env:"DRIFTFIELD_PREFS"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FieldParams      field.Params
	HeadlessInterval time.Duration
	HomeLoader       time.Duration
	WorkspaceLoader  time.Duration
	MelodyHold       time.Duration
	TypingDelays     typing.Delays
	CursorEase       time.Duration
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults,
// then applies DRIFTFIELD_* environment overrides.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Field.MountID == "" {
		c.Field.MountID = "particles-js"
	}
	if c.Theme.Key == "" {
		c.Theme.Key = "portfolio-theme"
	}
	if c.Theme.Default == "" {
		c.Theme.Default = "theme-retro"
	}
	if c.Telemetry.StatsWindow < 1 {
		c.Telemetry.StatsWindow = 60
	}

	rgb := field.RGBA{R: c.Field.Color[0], G: c.Field.Color[1], B: c.Field.Color[2]}
	c.Derived.FieldParams = field.Params{
		Density:       c.Field.Density,
		MaxParticles:  c.Field.MaxParticles,
		Speed:         c.Field.Speed,
		MaxRadius:     c.Field.MaxRadius,
		LinkDistance:  c.Field.LinkDistance,
		LinkAlphaMax:  c.Field.LinkAlphaMax,
		LinkFalloff:   c.Field.LinkFalloff,
		LineWidth:     c.Field.LineWidth,
		ParticleColor: rgb.WithAlpha(c.Field.ParticleAlpha),
		LinkColor:     rgb,
	}

	c.Derived.HeadlessInterval = seconds(c.Driver.HeadlessInterval)
	c.Derived.HomeLoader = seconds(c.Loader.Home)
	c.Derived.WorkspaceLoader = seconds(c.Loader.Workspace)
	c.Derived.MelodyHold = seconds(c.Sound.MelodyHold)
	c.Derived.CursorEase = seconds(c.Effects.CursorEase)
	c.Derived.TypingDelays = typing.Delays{
		Type:      seconds(c.Typing.Type),
		Delete:    seconds(c.Typing.Delete),
		HoldFull:  seconds(c.Typing.HoldFull),
		HoldEmpty: seconds(c.Typing.HoldEmpty),
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
