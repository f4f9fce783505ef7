// Package theme holds the page palettes and the persisted theme selection.
package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/driftfield/field"
)

// ErrUnknownTheme is returned when a theme name has no palette.
var ErrUnknownTheme = errors.New("unknown theme")

// Palette is the set of colours a page draws with.
type Palette struct {
	Name       string
	Background field.RGBA
	Panel      field.RGBA
	Text       field.RGBA
	Muted      field.RGBA
	Accent     field.RGBA
}

var palettes = []Palette{
	{
		Name:       "theme-retro",
		Background: field.RGBA{R: 26, G: 16, B: 37, A: 1},
		Panel:      field.RGBA{R: 43, G: 27, B: 61, A: 1},
		Text:       field.RGBA{R: 255, G: 230, B: 109, A: 1},
		Muted:      field.RGBA{R: 170, G: 140, B: 200, A: 1},
		Accent:     field.RGBA{R: 255, G: 94, B: 156, A: 1},
	},
	{
		Name:       "theme-dark",
		Background: field.RGBA{R: 30, G: 30, B: 30, A: 1},
		Panel:      field.RGBA{R: 37, G: 37, B: 38, A: 1},
		Text:       field.RGBA{R: 212, G: 212, B: 212, A: 1},
		Muted:      field.RGBA{R: 128, G: 128, B: 128, A: 1},
		Accent:     field.RGBA{R: 0, G: 122, B: 204, A: 1},
	},
	{
		Name:       "theme-light",
		Background: field.RGBA{R: 255, G: 255, B: 255, A: 1},
		Panel:      field.RGBA{R: 243, G: 243, B: 243, A: 1},
		Text:       field.RGBA{R: 51, G: 51, B: 51, A: 1},
		Muted:      field.RGBA{R: 110, G: 110, B: 110, A: 1},
		Accent:     field.RGBA{R: 0, G: 95, B: 184, A: 1},
	},
	{
		Name:       "theme-dracula",
		Background: field.RGBA{R: 40, G: 42, B: 54, A: 1},
		Panel:      field.RGBA{R: 68, G: 71, B: 90, A: 1},
		Text:       field.RGBA{R: 248, G: 248, B: 242, A: 1},
		Muted:      field.RGBA{R: 98, G: 114, B: 164, A: 1},
		Accent:     field.RGBA{R: 189, G: 147, B: 249, A: 1},
	},
}

// Names returns the theme names in selector order.
func Names() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the palette for name.
func Lookup(name string) (Palette, bool) {
	for _, p := range palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// Store is the key-value store the selection is persisted in.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Selector tracks the active theme and persists changes.
type Selector struct {
	store    Store
	key      string
	fallback string
	current  Palette
}

// NewSelector creates a selector persisting under key. fallback must name a
// known palette. store may be nil, in which case nothing is persisted.
func NewSelector(store Store, key, fallback string) (*Selector, error) {
	p, ok := Lookup(fallback)
	if !ok {
		return nil, fmt.Errorf("default theme %q: %w", fallback, ErrUnknownTheme)
	}
	return &Selector{store: store, key: key, fallback: fallback, current: p}, nil
}

// Load applies the saved theme, or the default when nothing valid is saved.
// A saved name with no palette is removed from the store. A store error
// leaves the default active and is returned.
func (s *Selector) Load(ctx context.Context) (Palette, error) {
	s.current, _ = Lookup(s.fallback)
	if s.store == nil {
		return s.current, nil
	}

	saved, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return s.current, fmt.Errorf("loading theme: %w", err)
	}
	if !ok {
		return s.current, nil
	}
	p, known := Lookup(saved)
	if !known {
		slog.Warn("discarding saved theme", "theme", saved)
		if err := s.store.Delete(ctx, s.key); err != nil {
			return s.current, fmt.Errorf("discarding theme: %w", err)
		}
		return s.current, nil
	}
	s.current = p
	slog.Info("theme loaded", "theme", p.Name)
	return s.current, nil
}

// Set activates and persists the named theme.
func (s *Selector) Set(ctx context.Context, name string) (Palette, error) {
	p, ok := Lookup(name)
	if !ok {
		return s.current, fmt.Errorf("setting theme %q: %w", name, ErrUnknownTheme)
	}
	s.current = p
	slog.Info("theme changed", "theme", name)

	if s.store == nil {
		return p, nil
	}
	if err := s.store.Set(ctx, s.key, name); err != nil {
		return p, fmt.Errorf("saving theme: %w", err)
	}
	return p, nil
}

// Next cycles to the following theme in selector order.
func (s *Selector) Next(ctx context.Context) (Palette, error) {
	idx := 0
	for i, p := range palettes {
		if p.Name == s.current.Name {
			idx = (i + 1) % len(palettes)
			break
		}
	}
	return s.Set(ctx, palettes[idx].Name)
}

// Current returns the active palette.
func (s *Selector) Current() Palette {
	return s.current
}
