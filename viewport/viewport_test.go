package viewport

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/driftfield/field"
)

type fakeSize struct {
	w, h    int
	changed bool
}

func (f *fakeSize) Resized() (int, int, bool) {
	changed := f.changed
	f.changed = false
	return f.w, f.h, changed
}

func TestNewSeedsField(t *testing.T) {
	rec := field.NewRecorder(0, 0)
	f := field.New(field.DefaultParams(), rand.New(rand.NewSource(1)))

	a := New(rec, f, 1000, 500)

	if w, h := rec.Size(); w != 1000 || h != 500 {
		t.Errorf("canvas size = %dx%d, want 1000x500", w, h)
	}
	if f.Len() != 100 {
		t.Errorf("particles = %d, want 100", f.Len())
	}
	if a.Resets() != 1 {
		t.Errorf("resets = %d, want 1", a.Resets())
	}
}

func TestResizeReseeds(t *testing.T) {
	rec := field.NewRecorder(0, 0)
	f := field.New(field.DefaultParams(), rand.New(rand.NewSource(2)))
	a := New(rec, f, 1000, 500)

	a.Resize(50, 500)

	if w, h := a.Size(); w != 50 || h != 500 {
		t.Errorf("size = %dx%d, want 50x500", w, h)
	}
	if f.Len() != 5 {
		t.Errorf("particles after resize = %d, want 5", f.Len())
	}
	for i, p := range f.Particles() {
		if p.Pos.X >= 50 {
			t.Errorf("particle %d kept old position %v", i, p.Pos)
		}
	}
}

func TestResizeNegativeClamps(t *testing.T) {
	rec := field.NewRecorder(0, 0)
	f := field.New(field.DefaultParams(), rand.New(rand.NewSource(3)))
	a := New(rec, f, -20, 300)

	if w, _ := a.Size(); w != 0 {
		t.Errorf("width = %d, want 0", w)
	}
	if f.Len() != 0 {
		t.Errorf("particles = %d, want 0", f.Len())
	}
}

func TestPoll(t *testing.T) {
	rec := field.NewRecorder(0, 0)
	f := field.New(field.DefaultParams(), rand.New(rand.NewSource(4)))
	a := New(rec, f, 800, 600)
	src := &fakeSize{w: 320, h: 240}

	if a.Poll(src) {
		t.Error("Poll applied a resize with no event")
	}
	if a.Resets() != 1 {
		t.Errorf("resets = %d, want 1", a.Resets())
	}

	src.changed = true
	if !a.Poll(src) {
		t.Fatal("Poll ignored a resize event")
	}
	if f.Len() != 32 {
		t.Errorf("particles = %d, want 32", f.Len())
	}
	if a.Resets() != 2 {
		t.Errorf("resets = %d, want 2", a.Resets())
	}
}
