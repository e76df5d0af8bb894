// Package chime plays a short tone through the speaker when the theme flips.
package chime

import (
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/theme"
)

const toneLength = 120 * time.Millisecond

// Frequency is the pitch played when switching to t.
func Frequency(t theme.Theme) float64 {
	if t == theme.Light {
		return 659.25 // E5
	}
	return 440 // A4
}

// Tone is a sine at freq that fades out over d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(2*math.Pi*freq*float64(pos)/float64(sr)) * volume * env * env
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
}

// Player owns the speaker. Tones are mixed onto one bus behind a
// beep.Ctrl, so muting pauses the bus and drops whatever is still ringing.
// Audio is optional: when the device cannot be opened the player stays
// silent.
type Player struct {
	sr      beep.SampleRate
	volume  float64
	enabled bool
	ready   bool
	muted   bool
	mixer   *beep.Mixer
	ctrl    *beep.Ctrl
	logger  *log.Logger
}

func New(cfg config.Audio, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := &Player{
		sr:      beep.SampleRate(config.ChimeSampleRate),
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		logger:  logger,
	}
	p.mixer = &beep.Mixer{}
	p.ctrl = &beep.Ctrl{Streamer: p.mixer}
	return p
}

// Init opens the speaker and starts the bus.
func (p *Player) Init() error {
	if !p.enabled || p.ready {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(time.Second/20)); err != nil {
		return fmt.Errorf("chime: speaker init: %w", err)
	}
	speaker.Play(p.ctrl)
	p.ready = true
	return nil
}

// SetMuted pauses or resumes the bus. Tones still ringing are dropped.
func (p *Player) SetMuted(muted bool) {
	speaker.Lock()
	p.muted = muted
	p.ctrl.Paused = muted
	if muted {
		p.mixer.Clear()
	}
	speaker.Unlock()
}

// Muted reports whether the chime is silenced.
func (p *Player) Muted() bool { return p.muted }

// Play sounds the tone for t. It reports whether anything was queued.
func (p *Player) Play(t theme.Theme) bool {
	if !p.ready || p.muted || p.volume == 0 {
		return false
	}
	p.queue(t)
	return true
}

func (p *Player) queue(t theme.Theme) {
	speaker.Lock()
	p.mixer.Add(Tone(p.sr, Frequency(t), toneLength, p.volume))
	speaker.Unlock()
	p.logger.Printf("chime: %s at %.2f Hz", t, Frequency(t))
}
