package workspace

import (
	"errors"
	"testing"
)

func newWorkspace(t *testing.T) *Workspace {
	t.Helper()
	w, err := New(768)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestEmbeddedContentCoversEveryFile(t *testing.T) {
	w := newWorkspace(t)
	for _, f := range Files() {
		p, ok := w.library[f.Name]
		if !ok || p.Title == "" || p.Breadcrumb == "" {
			t.Errorf("panel %q = %+v", f.Name, p)
		}
	}
}

func TestSwitch(t *testing.T) {
	tests := []struct {
		file   string
		status string
	}{
		{"index", "JavaScript"},
		{"about", "Markdown"},
		{"experience", "JSON"},
		{"projects", "JSX"},
		{"skills", "TypeScript"},
		{"contact", "Shell Script"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			w := newWorkspace(t)
			if err := w.Switch(tt.file); err != nil {
				t.Fatalf("Switch: %v", err)
			}
			if w.Active().Name != tt.file || w.Status() != tt.status || w.Hash() != tt.file {
				t.Errorf("active=%q status=%q hash=%q", w.Active().Name, w.Status(), w.Hash())
			}
			if _, ok := w.Panel(tt.file); !ok {
				t.Error("panel not filled")
			}
		})
	}
}

func TestSwitchUnknownKeepsState(t *testing.T) {
	w := newWorkspace(t)
	if err := w.Switch("skills"); err != nil {
		t.Fatal(err)
	}

	err := w.Switch("secrets")
	if !errors.Is(err, ErrUnknownFile) {
		t.Fatalf("err = %v, want ErrUnknownFile", err)
	}
	if w.Active().Name != "skills" || w.Status() != "TypeScript" || w.Hash() != "skills" {
		t.Errorf("state changed: %q %q %q", w.Active().Name, w.Status(), w.Hash())
	}
}

func TestFillOnce(t *testing.T) {
	w := newWorkspace(t)
	if err := w.Switch("about"); err != nil {
		t.Fatal(err)
	}
	first, _ := w.Panel("about")

	// a later edit to the source must not refill an already filled panel
	w.library["about"] = Panel{Title: "changed"}
	if err := w.Switch("index"); err != nil {
		t.Fatal(err)
	}
	if err := w.Switch("about"); err != nil {
		t.Fatal(err)
	}
	again, _ := w.Panel("about")
	if again.Title != first.Title {
		t.Errorf("panel refilled: %q", again.Title)
	}
	if w.Filled() != 2 {
		t.Errorf("filled = %d, want 2", w.Filled())
	}
}

func TestOpen(t *testing.T) {
	t.Run("no hash fills index", func(t *testing.T) {
		w := newWorkspace(t)
		if err := w.Open(""); err != nil {
			t.Fatal(err)
		}
		if _, ok := w.Panel("index"); !ok || w.Filled() != 1 {
			t.Error("index not filled")
		}
		if w.Hash() != "" {
			t.Errorf("hash = %q, want empty", w.Hash())
		}
	})

	t.Run("hash switches", func(t *testing.T) {
		w := newWorkspace(t)
		if err := w.Open("#projects"); err != nil {
			t.Fatal(err)
		}
		if w.Active().Name != "projects" || w.Status() != "JSX" {
			t.Errorf("active = %q", w.Active().Name)
		}
	})

	t.Run("unknown hash falls back", func(t *testing.T) {
		w := newWorkspace(t)
		if err := w.Open("#nope"); !errors.Is(err, ErrUnknownFile) {
			t.Fatalf("err = %v", err)
		}
		if w.Active().Name != "index" {
			t.Errorf("active = %q, want index", w.Active().Name)
		}
		if _, ok := w.Panel("index"); !ok {
			t.Error("index not filled on fallback")
		}
	})
}

func TestSidebar(t *testing.T) {
	w := newWorkspace(t)

	// wide windows never toggle
	w.ClickActivity(1, 1024)
	if w.SidebarOpen() || w.Activity() != 1 {
		t.Fatalf("wide click: open=%v activity=%d", w.SidebarOpen(), w.Activity())
	}

	w.ClickActivity(0, 768)
	if !w.SidebarOpen() {
		t.Fatal("narrow click did not open sidebar")
	}
	w.ClickActivity(0, 500)
	if w.SidebarOpen() {
		t.Fatal("second narrow click did not close sidebar")
	}

	w.ClickActivity(0, 500)
	if err := w.ClickFile("contact", 500); err != nil {
		t.Fatal(err)
	}
	if w.SidebarOpen() {
		t.Error("file click on narrow window left sidebar open")
	}

	w.ClickActivity(0, 500)
	w.Resize(700)
	if !w.SidebarOpen() {
		t.Error("resize below breakpoint closed sidebar")
	}
	w.Resize(769)
	if w.SidebarOpen() {
		t.Error("resize above breakpoint kept sidebar open")
	}

	w.ClickActivity(0, 500)
	w.ClickOverlay()
	if w.SidebarOpen() {
		t.Error("overlay click kept sidebar open")
	}

	w.ClickActivity(99, 500)
	if w.Activity() != 0 {
		t.Errorf("out of range activity selected: %d", w.Activity())
	}
}

func TestFileLabel(t *testing.T) {
	got := Files()[2].Label()
	if got != "experience.json" {
		t.Errorf("label = %q", got)
	}
}
