package prefs

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store, path
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetMissing(t *testing.T) {
	store, _ := openTestStore(t)

	value, ok, err := store.Get(context.Background(), "portfolio-theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || value != "" {
		t.Errorf("got (%q, %v) for missing key", value, ok)
	}
}

func TestSetOverwrites(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "portfolio-theme", "theme-dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "portfolio-theme", "theme-light"); err != nil {
		t.Fatalf("set again: %v", err)
	}

	value, ok, err := store.Get(ctx, "portfolio-theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || value != "theme-light" {
		t.Errorf("got (%q, %v), want theme-light", value, ok)
	}
}

func TestValueSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Set(ctx, "portfolio-theme", "theme-dracula"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "portfolio-theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || value != "theme-dracula" {
		t.Errorf("got (%q, %v) after reopen", value, ok)
	}
}

func TestEmptyKeyRejected(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, " ", "x"); !errors.Is(err, ErrKeyRequired) {
		t.Errorf("Set err = %v, want ErrKeyRequired", err)
	}
	if _, _, err := store.Get(ctx, ""); !errors.Is(err, ErrKeyRequired) {
		t.Errorf("Get err = %v, want ErrKeyRequired", err)
	}
}

func TestDelete(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("key still present after delete")
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Errorf("deleting missing key: %v", err)
	}
}

func TestNilStore(t *testing.T) {
	var s *Store
	if err := s.Close(); err != nil {
		t.Errorf("Close on nil store: %v", err)
	}
	if _, _, err := s.Get(context.Background(), "k"); err == nil {
		t.Error("expected error from nil store")
	}
}

func TestOpenAppliesPragmas(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	var mode string
	if err := store.sqlDB.QueryRowContext(ctx, `PRAGMA journal_mode`).Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}

	var timeout int
	if err := store.sqlDB.QueryRowContext(ctx, `PRAGMA busy_timeout`).Scan(&timeout); err != nil {
		t.Fatalf("busy_timeout: %v", err)
	}
	if timeout != 5000 {
		t.Errorf("busy_timeout = %d, want 5000", timeout)
	}
}
