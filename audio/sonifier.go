package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pathfinder/navigation"
)

const (
	revealTickDuration = 30 * time.Millisecond
	chimeNoteDuration  = 120 * time.Millisecond
	buzzDuration       = 250 * time.Millisecond

	// Reveal pitch climbs two octaves from the base over a replay
	revealBaseFreq = 220.0
	revealOctaves  = 2.0
)

// Sonifier turns reveal replays into short tones
// Every Play call is a no-op until Initialize succeeds
type Sonifier struct {
	mu          sync.Mutex
	cfg         *Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

func NewSonifier(cfg *Config) *Sonifier {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Sonifier{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker, disabled configs stay silent without error
func (s *Sonifier) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized || !s.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Cleanup silences everything still queued and closes the speaker
func (s *Sonifier) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Active reports whether tones reach the speaker
func (s *Sonifier) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// PlayReveal ticks once per revealed cell, path cells an octave above visited ones
func (s *Sonifier) PlayReveal(ev navigation.RevealEvent) {
	s.play(func() beep.Streamer { return revealTone(s.rate, ev) })
}

// PlayResult chimes when a route was found and buzzes when not
func (s *Sonifier) PlayResult(res navigation.Result) {
	if res.Found {
		s.play(func() beep.Streamer { return chime(s.rate) })
		return
	}
	s.play(func() beep.Streamer {
		return beep.Take(s.rate.N(buzzDuration), NewBuzzGenerator(s.rate, 110))
	})
}

func (s *Sonifier) play(build func() beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := newVolume(build(), s.cfg.MasterVolume)
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// RevealFrequency maps a replay step to pitch
func RevealFrequency(ev navigation.RevealEvent) float64 {
	progress := 0.0
	if ev.Total > 1 {
		progress = float64(ev.Step) / float64(ev.Total-1)
	}
	freq := revealBaseFreq * math.Pow(2, revealOctaves*progress)
	if ev.Kind != navigation.RevealVisited {
		freq *= 2
	}
	return freq
}

func revealTone(rate beep.SampleRate, ev navigation.RevealEvent) beep.Streamer {
	return beep.Take(rate.N(revealTickDuration), NewToneGenerator(rate, RevealFrequency(ev), 60, 0.3))
}

// chime is a rising fifth; falls back to a plain decaying tone if the sine generator rejects the rate
func chime(rate beep.SampleRate) beep.Streamer {
	notes := []float64{660, 990}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		var note beep.Streamer = NewToneGenerator(rate, freq, 8, 0.3)
		if sine, err := generators.SineTone(rate, freq); err == nil {
			note = &effects.Gain{Streamer: sine, Gain: -0.7}
		}
		parts = append(parts, beep.Take(rate.N(chimeNoteDuration), note))
	}
	return beep.Seq(parts...)
}

// newVolume scales by vol, math.Log2(0) is -Inf so zero volume is silenced instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
