package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// clipLengths are the one-shot durations of the synthesized cues.
var clipLengths = [soundCount]time.Duration{
	SoundLaunch:    250 * time.Millisecond,
	SoundWhack:     150 * time.Millisecond,
	SoundExplosion: 600 * time.Millisecond,
	SoundWrong:     300 * time.Millisecond,
	SoundSwoosh1:   280 * time.Millisecond,
	SoundSwoosh2:   320 * time.Millisecond,
	SoundSwoosh3:   360 * time.Millisecond,
}

// ClipLength returns the length of a one-shot cue; looping cues report zero.
func ClipLength(s Sound) time.Duration {
	if s < 0 || s >= soundCount {
		return 0
	}
	return clipLengths[s]
}

// NewVoice returns a streamer that synthesizes s. A zero length never ends;
// one-shots should be wrapped in beep.Take.
func NewVoice(sr beep.SampleRate, length time.Duration, volume float64, s Sound) beep.Streamer {
	return newVoice(sr, length, volume, waveform(s))
}

// wave returns a sample for time t (seconds) and progress p in [0, 1].
// Looping voices always see p = 0.
type wave func(t, p float64) float64

func waveform(snd Sound) wave {
	switch snd {
	case SoundLaunch:
		// Rising chirp.
		return func(t, p float64) float64 {
			return 0.4 * (1 - p) * math.Sin(2*math.Pi*(220+440*p)*t)
		}
	case SoundWhack:
		// Short thump with a noisy attack.
		return func(t, p float64) float64 {
			env := math.Exp(-p * 6)
			return env * (0.5*math.Sin(2*math.Pi*140*t) + 0.3*(rand.Float64()*2-1)*(1-p))
		}
	case SoundExplosion:
		// Decaying low noise.
		return func(t, p float64) float64 {
			env := math.Pow(1-p, 2)
			return env * (0.6*(rand.Float64()*2-1) + 0.3*math.Sin(2*math.Pi*55*t))
		}
	case SoundWrong:
		// Two falling square-ish tones.
		return func(t, p float64) float64 {
			freq := 330.0
			if p > 0.5 {
				freq = 220
			}
			return 0.3 * math.Copysign(1, math.Sin(2*math.Pi*freq*t)) * (1 - p*0.5)
		}
	case SoundSwoosh1, SoundSwoosh2, SoundSwoosh3:
		// Filtered noise swell; variants differ in pitch.
		pitch := 1 + 0.2*float64(snd-SoundSwoosh1)
		return func(t, p float64) float64 {
			env := math.Sin(math.Pi * p)
			return 0.25 * env * (rand.Float64()*2 - 1) * math.Sin(2*math.Pi*900*pitch*t*(0.5+p))
		}
	case SoundFuse:
		// Continuous crackle.
		return func(t, _ float64) float64 {
			crackle := 0.0
			if rand.Float64() < 0.02 {
				crackle = rand.Float64()*2 - 1
			}
			return 0.15*(rand.Float64()*2-1)*(0.5+0.5*math.Sin(2*math.Pi*7*t)) + 0.4*crackle
		}
	default:
		return func(float64, float64) float64 { return 0 }
	}
}

// voice streams a synthesized waveform. A zero length never ends.
type voice struct {
	sr     beep.SampleRate
	pos    int
	total  int
	volume float64
	fn     wave
}

func newVoice(sr beep.SampleRate, length time.Duration, volume float64, fn wave) *voice {
	return &voice{sr: sr, total: sr.N(length), volume: volume, fn: fn}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(v.pos) / float64(v.sr)
		p := 0.0
		if v.total > 0 {
			p = math.Min(float64(v.pos)/float64(v.total), 1)
		}
		sample := v.volume * v.fn(t, p)
		samples[i][0] = sample
		samples[i][1] = sample
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error {
	return nil
}
