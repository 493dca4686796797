package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay applies an instant attack and exponential release to a stream
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

// NewDecay shapes s to fade out over duration
func NewDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: max(rate.N(duration), 1)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if d.position >= d.total {
			return i, i > 0
		}
		vol := math.Exp(-5 * float64(d.position) / float64(d.total))
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ImpactLevel normalizes a wall impact speed against the velocity cap
func ImpactLevel(speed, maxVelocity float64) float64 {
	if maxVelocity <= 0 {
		return 0
	}
	return vmath.Clamp(speed/maxVelocity, 0, 1)
}

// CreateImpactSound generates a short tick whose pitch and loudness follow level in [0,1]
func CreateImpactSound(level float64, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	level = vmath.Clamp(level, 0, 1)

	freq := parameter.ImpactBaseFreq * (1 + 2*level)
	tone := NewOscillator(freq, parameter.ImpactDuration, WaveSine, rate)
	click := NewOscillator(0, parameter.ImpactDuration/4, WaveNoise, rate)

	mixed := beep.Mix(
		newVolume(NewDecay(tone, parameter.ImpactDuration, rate), 0.8),
		newVolume(NewDecay(click, parameter.ImpactDuration/4, rate), 0.2),
	)
	return newVolume(mixed, cfg.Volume*level)
}
