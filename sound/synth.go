// Package sound synthesises the page's two sound effects, a boot-beep
// sequence and a short melody, as beep streamers.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	Square Wave = iota
	Sine
)

const (
	attack    = 10 * time.Millisecond
	floorGain = 0.01
)

// Note is one enveloped oscillator tone. Its gain rises linearly from 0 to
// Peak over the first 10ms, then falls exponentially to 0.01 at the end.
type Note struct {
	Freq  float64
	Start time.Duration
	Dur   time.Duration
	Wave  Wave
	Peak  float64
}

// Gain returns the envelope at t seconds into the note.
func (n Note) Gain(t float64) float64 {
	dur := n.Dur.Seconds()
	a := attack.Seconds()
	switch {
	case t < 0 || t >= dur:
		return 0
	case t < a || dur <= a:
		return n.Peak * t / a
	case n.Peak <= floorGain:
		return n.Peak
	}
	frac := (t - a) / (dur - a)
	return n.Peak * math.Pow(floorGain/n.Peak, frac)
}

// Sample returns the signal at t seconds into the note.
func (n Note) Sample(t float64) float64 {
	phase := n.Freq * t
	var v float64
	switch n.Wave {
	case Sine:
		v = math.Sin(2 * math.Pi * phase)
	default:
		if phase-math.Floor(phase) < 0.5 {
			v = 1
		} else {
			v = -1
		}
	}
	return v * n.Gain(t)
}

// End returns when the note stops, relative to the start of its sequence.
func (n Note) End() time.Duration {
	return n.Start + n.Dur
}

// toneStreamer plays a single note from its first sample.
type toneStreamer struct {
	note  Note
	rate  float64
	pos   int
	total int
}

func newTone(sr beep.SampleRate, n Note) *toneStreamer {
	return &toneStreamer{note: n, rate: float64(sr), total: sr.N(n.Dur)}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			break
		}
		v := s.note.Sample(float64(s.pos) / s.rate)
		samples[i][0], samples[i][1] = v, v
		s.pos++
		n++
	}
	return n, true
}

func (s *toneStreamer) Err() error { return nil }

// Render mixes notes into one streamer, each delayed by its Start.
func Render(sr beep.SampleRate, notes []Note) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		voices = append(voices, beep.Seq(beep.Silence(sr.N(n.Start)), newTone(sr, n)))
	}
	return beep.Mix(voices...)
}

// Length returns when the last of notes ends.
func Length(notes []Note) time.Duration {
	var end time.Duration
	for _, n := range notes {
		end = max(end, n.End())
	}
	return end
}

func secs(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// BootSequence returns the retro boot beeps.
func BootSequence() []Note {
	const peak = 0.15
	return []Note{
		{Freq: 800, Start: 0, Dur: secs(0.1), Wave: Square, Peak: peak},
		{Freq: 600, Start: secs(0.15), Dur: secs(0.08), Wave: Square, Peak: peak},
		{Freq: 900, Start: secs(0.3), Dur: secs(0.12), Wave: Square, Peak: peak},
		{Freq: 400, Start: secs(0.5), Dur: secs(0.15), Wave: Sine, Peak: peak},
		{Freq: 1200, Start: secs(0.7), Dur: secs(0.2), Wave: Square, Peak: peak},
	}
}

// Note frequencies used by the melody, in Hz.
const (
	E4  = 329.63
	G4  = 392.00
	A4  = 440.00
	As4 = 466.16
	B4  = 493.88
	C5  = 523.25
	E5  = 659.25
	G5  = 783.99
)

// Melody returns the square-wave tune. Timing is in units of 0.15s.
func Melody() []Note {
	const (
		unit = 0.15
		peak = 0.12
	)
	score := []struct {
		freq     float64
		at, long float64
	}{
		{E5, 0, 1}, {E5, 1.5, 1}, {E5, 3, 1}, {C5, 4, 1}, {E5, 5, 1},
		{G5, 7, 2}, {G4, 11, 2},
		{C5, 15, 1}, {G4, 17, 1}, {E4, 19, 1}, {A4, 21, 1}, {B4, 23, 1}, {As4, 24, 1}, {A4, 25, 1},
	}

	notes := make([]Note, len(score))
	for i, s := range score {
		notes[i] = Note{Freq: s.freq, Start: secs(s.at * unit), Dur: secs(s.long * unit), Wave: Square, Peak: peak}
	}
	return notes
}
