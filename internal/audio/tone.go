// Package audio turns sound intents from the simulation into generated tones.
// Playback is best effort: when no output device can be opened the player
// stays silent and the game runs unchanged.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.25
	release    = 30 * time.Millisecond
)

// ToneTable maps a sound label to the tone played for it.
func ToneTable(cfg config.SoundsConfig) map[string]config.ToneConfig {
	return map[string]config.ToneConfig{
		invaders.SoundShot:      cfg.Shot,
		invaders.SoundExplosion: cfg.Explosion,
		invaders.SoundWin:       cfg.Win,
		invaders.SoundGameOver:  cfg.GameOver,
	}
}

// TonePlayer is an EntitySink that plays sound intents on the speaker.
// Every other intent kind is ignored.
type TonePlayer struct {
	mu      sync.Mutex
	tones   map[string]config.ToneConfig
	mixer   *beep.Mixer
	enabled bool
	played  int
}

// NewTonePlayer creates a player for the given tones. Call Init before use.
func NewTonePlayer(cfg config.SoundsConfig) *TonePlayer {
	return &TonePlayer{
		tones: ToneTable(cfg),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker. On error the player remains disabled.
func (p *TonePlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return nil
}

// Close silences anything still playing.
func (p *TonePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}

// Played returns how many tones were started.
func (p *TonePlayer) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Emit plays the tone for a sound spawn intent.
func (p *TonePlayer) Emit(in core.Intent) {
	if in.Op != core.OpSpawn || in.Kind != core.KindSound {
		return
	}
	s := p.Streamer(in.Label)
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played++
}

// Streamer builds the streamer for a sound label, or nil if the label is
// unknown or its tone is silent.
func (p *TonePlayer) Streamer(label string) beep.Streamer {
	tone, ok := p.tones[label]
	if !ok || tone.Frequency <= 0 || tone.Length <= 0 {
		return nil
	}
	d := time.Duration(tone.Length * float64(time.Second))
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), newFade(newSine(tone.Frequency), sampleRate.N(d), sampleRate.N(release))),
		Base:     2,
		Volume:   math.Log2(volume),
	}
}

type sine struct {
	step  float64
	phase float64
}

func newSine(freq float64) *sine {
	return &sine{step: freq / float64(sampleRate)}
}

func (s *sine) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += s.step
		s.phase -= math.Floor(s.phase)
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// fade ramps the last releaseN samples of a total-length stream to zero so
// tones end without a click.
type fade struct {
	streamer beep.Streamer
	total    int
	releaseN int
	pos      int
}

func newFade(s beep.Streamer, total, releaseN int) *fade {
	if releaseN > total {
		releaseN = total
	}
	return &fade{streamer: s, total: total, releaseN: releaseN}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	start := f.total - f.releaseN
	for i := 0; i < n; i++ {
		if f.pos >= start && f.releaseN > 0 {
			vol := float64(f.total-f.pos) / float64(f.releaseN)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
