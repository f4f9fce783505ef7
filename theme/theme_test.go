package theme

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/driftfield/prefs"
)

type mapStore struct {
	values map[string]string
	err    error
}

func (m *mapStore) Get(_ context.Context, key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mapStore) Set(_ context.Context, key, value string) error {
	if m.err != nil {
		return m.err
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func (m *mapStore) Delete(_ context.Context, key string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.values, key)
	return nil
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		saved map[string]string
		want  string
	}{
		{"nothing saved", nil, "theme-retro"},
		{"saved theme", map[string]string{"portfolio-theme": "theme-dracula"}, "theme-dracula"},
		{"unknown saved theme", map[string]string{"portfolio-theme": "theme-neon"}, "theme-retro"},
		{"other key only", map[string]string{"other": "theme-dark"}, "theme-retro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSelector(&mapStore{values: tt.saved}, "portfolio-theme", "theme-retro")
			if err != nil {
				t.Fatal(err)
			}
			p, err := s.Load(context.Background())
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if p.Name != tt.want || s.Current().Name != tt.want {
				t.Errorf("loaded %q, want %q", p.Name, tt.want)
			}
		})
	}
}

func TestLoadDiscardsUnknownTheme(t *testing.T) {
	store := &mapStore{values: map[string]string{"portfolio-theme": "theme-neon", "other": "x"}}
	s, _ := NewSelector(store, "portfolio-theme", "theme-retro")

	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := store.values["portfolio-theme"]; ok {
		t.Error("unknown theme still stored")
	}
	if store.values["other"] != "x" {
		t.Error("unrelated key removed")
	}
}

func TestLoadStoreError(t *testing.T) {
	boom := errors.New("disk gone")
	s, _ := NewSelector(&mapStore{err: boom}, "portfolio-theme", "theme-retro")

	p, err := s.Load(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped store error", err)
	}
	if p.Name != "theme-retro" {
		t.Errorf("fallback = %q", p.Name)
	}
}

func TestSetPersists(t *testing.T) {
	store := &mapStore{}
	s, _ := NewSelector(store, "portfolio-theme", "theme-retro")

	if _, err := s.Set(context.Background(), "theme-light"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if store.values["portfolio-theme"] != "theme-light" {
		t.Errorf("stored = %q", store.values["portfolio-theme"])
	}
}

func TestSetUnknown(t *testing.T) {
	store := &mapStore{}
	s, _ := NewSelector(store, "portfolio-theme", "theme-retro")

	_, err := s.Set(context.Background(), "theme-neon")
	if !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("err = %v, want ErrUnknownTheme", err)
	}
	if s.Current().Name != "theme-retro" {
		t.Errorf("current changed to %q", s.Current().Name)
	}
	if len(store.values) != 0 {
		t.Error("unknown theme was persisted")
	}
}

func TestNextCycles(t *testing.T) {
	s, _ := NewSelector(nil, "portfolio-theme", "theme-retro")
	names := Names()

	for i := 1; i <= len(names); i++ {
		p, err := s.Next(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		want := names[i%len(names)]
		if p.Name != want {
			t.Errorf("step %d: %q, want %q", i, p.Name, want)
		}
	}
}

func TestNewSelectorUnknownDefault(t *testing.T) {
	if _, err := NewSelector(nil, "k", "theme-neon"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("err = %v", err)
	}
}

func TestSelectorWithSQLiteStore(t *testing.T) {
	store, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	ctx := context.Background()

	first, _ := NewSelector(store, "portfolio-theme", "theme-retro")
	if _, err := first.Set(ctx, "theme-dark"); err != nil {
		t.Fatal(err)
	}

	second, _ := NewSelector(store, "portfolio-theme", "theme-retro")
	p, err := second.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "theme-dark" {
		t.Errorf("reloaded %q, want theme-dark", p.Name)
	}
}

func TestSQLiteStoreDiscardsUnknownTheme(t *testing.T) {
	store, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	ctx := context.Background()

	if err := store.Set(ctx, "portfolio-theme", "theme-neon"); err != nil {
		t.Fatal(err)
	}
	s, _ := NewSelector(store, "portfolio-theme", "theme-retro")
	if p, err := s.Load(ctx); err != nil || p.Name != "theme-retro" {
		t.Fatalf("Load = %q, %v", p.Name, err)
	}
	if _, ok, err := store.Get(ctx, "portfolio-theme"); err != nil || ok {
		t.Errorf("Get after discard: present=%v err=%v", ok, err)
	}
}
