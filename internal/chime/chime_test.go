package chime

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/theme"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneLengthAndRange(t *testing.T) {
	sr := beep.SampleRate(8000)
	samples := drain(Tone(sr, 440, 100*time.Millisecond, 0.5))

	if len(samples) != sr.N(100*time.Millisecond) {
		t.Fatalf("expected %d samples, got %d", sr.N(100*time.Millisecond), len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("tone should start at zero, got %g", samples[0][0])
	}
	for i, s := range samples {
		if math.Abs(s[0]) > 0.5 || s[0] != s[1] {
			t.Fatalf("sample %d out of range or not mono: %v", i, s)
		}
	}

	// The envelope fades out.
	tail := samples[len(samples)-10:]
	for _, s := range tail {
		if math.Abs(s[0]) > 0.01 {
			t.Errorf("expected a quiet tail, got %g", s[0])
		}
	}
}

func TestFrequencyDiffersByTheme(t *testing.T) {
	if Frequency(theme.Dark) == Frequency(theme.Light) {
		t.Error("dark and light chimes should differ")
	}
}

func TestPlayerSilentUntilReady(t *testing.T) {
	p := New(config.Audio{Enabled: false, Volume: 0.3}, nil)
	if err := p.Init(); err != nil {
		t.Fatalf("disabled player must not touch the speaker: %v", err)
	}
	if p.Play(theme.Light) {
		t.Error("player without a speaker must not play")
	}
	p.SetMuted(true)
	if !p.Muted() {
		t.Error("expected muted player")
	}
}

func TestMuteSilencesTheBus(t *testing.T) {
	p := New(config.Audio{Enabled: true, Volume: 0.3}, nil)
	p.ready = true

	if !p.Play(theme.Light) {
		t.Fatal("expected a tone to be queued")
	}
	if p.mixer.Len() != 1 {
		t.Fatalf("expected 1 tone on the bus, got %d", p.mixer.Len())
	}

	buf := make([][2]float64, 256)
	if n, ok := p.ctrl.Stream(buf); !ok || n != len(buf) {
		t.Fatalf("bus should stream, got n=%d ok=%v", n, ok)
	}
	loud := false
	for _, s := range buf[1:] {
		if s[0] != 0 {
			loud = true
			break
		}
	}
	if !loud {
		t.Error("expected the unmuted bus to carry the tone")
	}

	p.SetMuted(true)
	if !p.ctrl.Paused {
		t.Error("muting should pause the bus")
	}
	if p.mixer.Len() != 0 {
		t.Errorf("muting should drop ringing tones, %d left", p.mixer.Len())
	}
	if p.Play(theme.Dark) {
		t.Error("muted player must not queue tones")
	}
	n, ok := p.ctrl.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("paused bus should keep streaming silence, got n=%d ok=%v", n, ok)
	}
	for i, s := range buf {
		if s != [2]float64{} {
			t.Fatalf("sample %d not silent while muted: %v", i, s)
		}
	}

	p.SetMuted(false)
	if p.ctrl.Paused {
		t.Error("unmuting should resume the bus")
	}
}
