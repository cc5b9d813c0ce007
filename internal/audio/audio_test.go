package audio

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	if d := p.Play(SoundWhack); d != 0 {
		t.Fatalf("Nop.Play = %v, want 0", d)
	}
	h := p.Loop(SoundFuse)
	h.Stop()
	h.Stop()
}

func TestSwooshVariants(t *testing.T) {
	tests := []struct {
		n    int
		want Sound
	}{
		{0, SoundSwoosh1},
		{1, SoundSwoosh1},
		{2, SoundSwoosh2},
		{3, SoundSwoosh3},
		{9, SoundSwoosh3},
	}
	for _, tt := range tests {
		if got := Swoosh(tt.n); got != tt.want {
			t.Errorf("Swoosh(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestEverySoundHasAName(t *testing.T) {
	for s := Sound(0); s < soundCount; s++ {
		if s.String() == "" || s.String() == "unknown" {
			t.Errorf("sound %d has no name", s)
		}
	}
}

func TestVoiceStaysInRange(t *testing.T) {
	for s := Sound(0); s < soundCount; s++ {
		v := newVoice(beep.SampleRate(44100), 100*time.Millisecond, 1, waveform(s))
		buf := make([][2]float64, 512)
		for i := 0; i < 10; i++ {
			n, ok := v.Stream(buf)
			if n != len(buf) || !ok {
				t.Fatalf("%v: Stream = %d, %v", s, n, ok)
			}
			for _, smp := range buf {
				if math.IsNaN(smp[0]) || math.Abs(smp[0]) > 1 || smp[0] != smp[1] {
					t.Fatalf("%v: sample %v out of range", s, smp)
				}
			}
		}
	}
}

func TestEveryOneShotHasALength(t *testing.T) {
	for s := Sound(0); s < soundCount; s++ {
		if s == SoundFuse {
			continue
		}
		if clipLengths[s] <= 0 {
			t.Errorf("%v has no clip length", s)
		}
	}
}

func TestBellRingsOnlyForSelectedCues(t *testing.T) {
	var buf strings.Builder
	b := NewBell(&buf, SoundWrong, SoundExplosion)

	b.Play(SoundWhack)
	b.Play(SoundWrong)
	b.Play(SoundExplosion)
	b.Loop(SoundFuse).Stop()

	if got := buf.String(); got != "\a\a" {
		t.Errorf("got %q, want two bells", got)
	}
	if b.Play(SoundSwoosh1) != ClipLength(SoundSwoosh1) {
		t.Error("bell should report the clip length so swooshes stay paced")
	}
}
