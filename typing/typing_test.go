package typing

import (
	"errors"
	"testing"
	"time"
)

var heroWords = []string{"Angular", "React", "React Native", "TypeScript", "Node.js"}

func TestNewValidates(t *testing.T) {
	if _, err := New(nil, DefaultDelays()); !errors.Is(err, ErrNoWords) {
		t.Errorf("nil words: err = %v", err)
	}
	if _, err := New([]string{"React", ""}, DefaultDelays()); !errors.Is(err, ErrNoWords) {
		t.Errorf("empty word: err = %v", err)
	}
	if _, err := New(heroWords, Delays{Type: 0, Delete: time.Millisecond}); !errors.Is(err, ErrBadDelay) {
		t.Errorf("zero type delay: err = %v", err)
	}
}

func TestStepTypesHoldsDeletesAndMovesOn(t *testing.T) {
	tw, err := New([]string{"Go", "Ok"}, DefaultDelays())
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		text  string
		delay time.Duration
	}{
		{"G", 100 * time.Millisecond},
		{"Go", 2 * time.Second},
		{"G", 50 * time.Millisecond},
		{"", 500 * time.Millisecond},
		{"O", 100 * time.Millisecond},
		{"Ok", 2 * time.Second},
		{"O", 50 * time.Millisecond},
		{"", 500 * time.Millisecond},
		{"G", 100 * time.Millisecond},
	}

	for i, want := range steps {
		delay := tw.Step()
		if got := tw.Text(); got != want.text {
			t.Errorf("step %d: text %q, want %q", i, got, want.text)
		}
		if delay != want.delay {
			t.Errorf("step %d: delay %v, want %v", i, delay, want.delay)
		}
	}
}

func TestWordIndexWraps(t *testing.T) {
	tw, _ := New(heroWords, DefaultDelays())

	seen := []int{tw.Word()}
	for len(seen) < len(heroWords)+1 {
		before := tw.Word()
		tw.Step()
		if tw.Word() != before {
			seen = append(seen, tw.Word())
		}
	}
	want := []int{0, 1, 2, 3, 4, 0}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("word order = %v, want %v", seen, want)
		}
	}
}

func TestAdvanceFollowsDelays(t *testing.T) {
	tw, _ := New(heroWords, DefaultDelays())

	tw.Advance(0)
	if tw.Text() != "A" {
		t.Fatalf("first frame text = %q, want A", tw.Text())
	}

	tw.Advance(600 * time.Millisecond)
	if tw.Text() != "Angular" || !tw.Deleting() {
		t.Fatalf("after 600ms text = %q deleting=%v", tw.Text(), tw.Deleting())
	}

	tw.Advance(1999 * time.Millisecond)
	if tw.Text() != "Angular" {
		t.Errorf("held word changed early: %q", tw.Text())
	}

	tw.Advance(time.Millisecond)
	if tw.Text() != "Angula" {
		t.Errorf("after hold text = %q, want Angula", tw.Text())
	}
}

func TestMultibyteRunes(t *testing.T) {
	tw, _ := New([]string{"héllo"}, DefaultDelays())
	tw.Step()
	tw.Step()
	if tw.Text() != "hé" {
		t.Errorf("text = %q, want hé", tw.Text())
	}
}
