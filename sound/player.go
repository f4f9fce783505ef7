package sound

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Output plays streamers.
type Output interface {
	Play(s beep.Streamer)
}

// Speaker is the system audio device.
type Speaker struct{}

// NewSpeaker initialises the audio device at sr with the given buffer.
// The device can be initialised once per process.
func NewSpeaker(sr beep.SampleRate, buffer time.Duration) (*Speaker, error) {
	if err := speaker.Init(sr, sr.N(buffer)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return &Speaker{}, nil
}

// Play adds s to the device mixer.
func (*Speaker) Play(s beep.Streamer) {
	speaker.Play(s)
}

// Discard is an Output that drops everything, used when sound is disabled.
type Discard struct{}

// Play drops s.
func (Discard) Play(beep.Streamer) {}

// stoppable ends its source early once stopped. The speaker goroutine calls
// Stream; Stop may be called from any goroutine.
type stoppable struct {
	src     beep.Streamer
	stopped atomic.Bool
}

func (s *stoppable) Stream(samples [][2]float64) (int, bool) {
	if s.stopped.Load() {
		return 0, false
	}
	return s.src.Stream(samples)
}

func (s *stoppable) Err() error { return s.src.Err() }

// Player owns the page's sound buttons.
type Player struct {
	out  Output
	sr   beep.SampleRate
	hold time.Duration

	bootPlayed atomic.Bool
	playing    atomic.Bool

	mu     sync.Mutex
	melody *stoppable
	gen    uint64
	timer  *time.Timer
}

// NewPlayer creates a player. hold is how long after starting the melody
// its playing state clears by itself.
func NewPlayer(out Output, sr beep.SampleRate, hold time.Duration) *Player {
	if out == nil {
		out = Discard{}
	}
	return &Player{out: out, sr: sr, hold: hold}
}

// PlayBoot plays the boot sequence the first time it is called and reports
// whether it played.
func (p *Player) PlayBoot() bool {
	if !p.bootPlayed.CompareAndSwap(false, true) {
		return false
	}
	p.out.Play(Render(p.sr, BootSequence()))
	slog.Info("boot sound played")
	return true
}

// BootPlayed reports whether the boot sequence has been played.
func (p *Player) BootPlayed() bool {
	return p.bootPlayed.Load()
}

// ToggleMelody starts the melody, or stops it if it is playing. It returns
// the new playing state.
func (p *Player) ToggleMelody() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.playing.Load() {
		p.stopLocked()
		return false
	}

	p.gen++
	gen := p.gen
	p.melody = &stoppable{src: Render(p.sr, Melody())}
	p.playing.Store(true)
	p.out.Play(p.melody)

	p.timer = time.AfterFunc(p.hold, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.gen == gen {
			p.playing.Store(false)
		}
	})
	slog.Info("melody started")
	return true
}

// StopMelody stops the melody if it is playing.
func (p *Player) StopMelody() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.melody != nil {
		p.melody.stopped.Store(true)
		p.melody = nil
	}
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.gen++
	if p.playing.Swap(false) {
		slog.Info("melody stopped")
	}
}

// MelodyPlaying reports whether the melody button is in its playing state.
func (p *Player) MelodyPlaying() bool {
	return p.playing.Load()
}
