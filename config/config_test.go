package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pthm-cable/driftfield/field"
	"github.com/pthm-cable/driftfield/typing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Field.MountID != "particles-js" {
		t.Errorf("mount id = %q", cfg.Field.MountID)
	}
	if cfg.Theme.Key != "portfolio-theme" || cfg.Theme.Default != "theme-retro" {
		t.Errorf("theme = %+v", cfg.Theme)
	}
	if len(cfg.Typing.Words) != 5 {
		t.Errorf("typing words = %v", cfg.Typing.Words)
	}
	if cfg.Derived.HomeLoader != 2500*time.Millisecond {
		t.Errorf("home loader = %v, want 2.5s", cfg.Derived.HomeLoader)
	}
	if cfg.Derived.MelodyHold != 5*time.Second {
		t.Errorf("melody hold = %v, want 5s", cfg.Derived.MelodyHold)
	}
	if got := cfg.Derived.TypingDelays; got != typing.DefaultDelays() {
		t.Errorf("typing delays = %+v, want %+v", got, typing.DefaultDelays())
	}
}

func TestDefaultsMatchFieldDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := cfg.Derived.FieldParams
	want := field.DefaultParams()
	if got != want {
		t.Errorf("derived field params = %+v\nwant %+v", got, want)
	}
}

func TestLoadUserFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("field:\n  max_particles: 40\n  link_distance: 80\nscreen:\n  width: 640\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Derived.FieldParams.MaxParticles != 40 {
		t.Errorf("max particles = %d, want 40", cfg.Derived.FieldParams.MaxParticles)
	}
	if cfg.Derived.FieldParams.LinkDistance != 80 {
		t.Errorf("link distance = %v, want 80", cfg.Derived.FieldParams.LinkDistance)
	}
	if cfg.Screen.Width != 640 {
		t.Errorf("width = %d, want 640", cfg.Screen.Width)
	}
	// untouched keys keep their defaults
	if cfg.Screen.Height != 720 {
		t.Errorf("height = %d, want 720", cfg.Screen.Height)
	}
	if math.Abs(cfg.Derived.FieldParams.LinkAlphaMax-0.1) > 1e-12 {
		t.Errorf("link alpha max = %v", cfg.Derived.FieldParams.LinkAlphaMax)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped ErrNotExist", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DRIFTFIELD_SCREEN_WIDTH", "1920")
	t.Setenv("DRIFTFIELD_MAX_PARTICLES", "60")
	t.Setenv("DRIFTFIELD_SOUND", "false")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Screen.Width != 1920 {
		t.Errorf("width = %d, want 1920", cfg.Screen.Width)
	}
	if cfg.Derived.FieldParams.MaxParticles != 60 {
		t.Errorf("max particles = %d, want 60", cfg.Derived.FieldParams.MaxParticles)
	}
	if cfg.Sound.Enabled {
		t.Error("sound still enabled")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Field.MaxParticles = 33

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load written file: %v", err)
	}
	if back.Field.MaxParticles != 33 {
		t.Errorf("max particles = %d, want 33", back.Field.MaxParticles)
	}
	if back.Field.Color != [3]uint8{139, 92, 246} {
		t.Errorf("color = %v", back.Field.Color)
	}
}
