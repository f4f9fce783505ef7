// Package typing implements the hero typewriter: words are typed out one
// rune at a time, held, deleted, and the next word follows.
package typing

import (
	"errors"
	"time"
)

var (
	// ErrNoWords is returned when the word list is empty.
	ErrNoWords = errors.New("typing: no words")
	// ErrBadDelay is returned for a non-positive type or delete delay.
	ErrBadDelay = errors.New("typing: type and delete delays must be positive")
)

// Delays controls the pacing of a Typewriter.
type Delays struct {
	Type      time.Duration
	Delete    time.Duration
	HoldFull  time.Duration
	HoldEmpty time.Duration
}

// DefaultDelays returns the hero pacing: 100ms per typed rune, 50ms per
// deleted rune, 2s hold on a full word, 0.5s before the next word.
func DefaultDelays() Delays {
	return Delays{
		Type:      100 * time.Millisecond,
		Delete:    50 * time.Millisecond,
		HoldFull:  2 * time.Second,
		HoldEmpty: 500 * time.Millisecond,
	}
}

// Typewriter is the typing state machine. It is not safe for concurrent use.
type Typewriter struct {
	words    [][]rune
	delays   Delays
	word     int
	chars    int
	deleting bool

	clock time.Duration
	due   time.Duration
}

// New creates a typewriter over words.
func New(words []string, delays Delays) (*Typewriter, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if delays.Type <= 0 || delays.Delete <= 0 {
		return nil, ErrBadDelay
	}
	tw := &Typewriter{delays: delays}
	for _, w := range words {
		if w == "" {
			return nil, ErrNoWords
		}
		tw.words = append(tw.words, []rune(w))
	}
	return tw, nil
}

// Step types or deletes one rune and returns the delay before the next step.
func (tw *Typewriter) Step() time.Duration {
	current := tw.words[tw.word]

	next := tw.delays.Type
	if tw.deleting {
		if tw.chars > 0 {
			tw.chars--
		}
		next = tw.delays.Delete
	} else if tw.chars < len(current) {
		tw.chars++
	}

	switch {
	case !tw.deleting && tw.chars == len(current):
		tw.deleting = true
		next = tw.delays.HoldFull
	case tw.deleting && tw.chars == 0:
		tw.deleting = false
		tw.word = (tw.word + 1) % len(tw.words)
		next = tw.delays.HoldEmpty
	}
	return next
}

// Advance moves the typewriter forward by elapsed time, running every step
// that falls due. The first call runs the initial step immediately.
func (tw *Typewriter) Advance(elapsed time.Duration) {
	tw.clock += elapsed
	for tw.clock >= tw.due {
		tw.clock -= tw.due
		tw.due = tw.Step()
	}
}

// Text returns the currently visible text.
func (tw *Typewriter) Text() string {
	return string(tw.words[tw.word][:tw.chars])
}

// Word returns the index of the word being typed or deleted.
func (tw *Typewriter) Word() int {
	return tw.word
}

// Deleting reports whether the current word is being deleted.
func (tw *Typewriter) Deleting() bool {
	return tw.deleting
}
