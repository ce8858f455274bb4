package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType is the oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator streams a fixed-length wave. Noise is seeded so the same
// sound is produced every time.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero or less is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// stretch scales a duration by 1/pitch, so higher pitches play shorter,
// the way a resampled clip would.
func stretch(d time.Duration, pitch float64) time.Duration {
	if pitch <= 0 {
		return d
	}
	return time.Duration(float64(d) / pitch)
}

// CreateArrowShoot is a short filtered whoosh with a falling tone.
func CreateArrowShoot(rate beep.SampleRate, pitch float64) beep.Streamer {
	dur := stretch(180*time.Millisecond, pitch)

	noise := NewOscillator(0, dur, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, dur, 5*time.Millisecond, dur*2/3, rate)

	tone := NewOscillator(520*pitch, dur, WaveSaw, rate)
	toneShaped := NewEnvelope(tone, dur, 2*time.Millisecond, dur/2, rate)

	return beep.Take(rate.N(dur), beep.Mix(
		newVolume(noiseShaped, 0.5),
		newVolume(toneShaped, 0.15),
	))
}

// CreateAmethystHit is a bright two-partial chime.
func CreateAmethystHit(rate beep.SampleRate, pitch float64) beep.Streamer {
	dur := stretch(350*time.Millisecond, pitch)

	fund := NewOscillator(1318.51*pitch, dur, WaveSine, rate)
	fundShaped := NewEnvelope(fund, dur, 3*time.Millisecond, dur*3/4, rate)

	over := NewOscillator(1318.51*2.76*pitch, dur, WaveSine, rate)
	overShaped := NewEnvelope(over, dur, 3*time.Millisecond, dur/3, rate)

	return beep.Take(rate.N(dur), beep.Mix(
		newVolume(fundShaped, 0.6),
		newVolume(overShaped, 0.25),
	))
}

// CreateHurt is a low square-wave thud used when the player takes damage.
func CreateHurt(rate beep.SampleRate, pitch float64) beep.Streamer {
	dur := stretch(120*time.Millisecond, pitch)
	osc := NewOscillator(140*pitch, dur, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, dur, 2*time.Millisecond, dur/2, rate), 0.4)
}
