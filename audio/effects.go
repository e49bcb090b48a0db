package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a finite streamer that sweeps linearly from startFreq to
// endFreq over its duration with an attack/release envelope
type tone struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
	attack    int
	release   int
	gain      float64
}

// NewTone creates a swept, enveloped oscillator streamer
func NewTone(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, gain float64) beep.Streamer {
	samples := rate.N(duration)
	attack := rate.N(5 * time.Millisecond)
	release := rate.N(30 * time.Millisecond)
	if attack+release > samples {
		attack = samples / 4
		release = samples / 4
	}
	return &tone{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  samples,
		wave:      wave,
		rate:      rate,
		attack:    attack,
		release:   release,
		gain:      gain,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (t.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		// Envelope
		env := 1.0
		if t.position < t.attack && t.attack > 0 {
			env = float64(t.position) / float64(t.attack)
		} else if rem := t.duration - t.position; rem < t.release && t.release > 0 {
			env = float64(rem) / float64(t.release)
		}
		val *= env * t.gain

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase with linear frequency sweep
		progress := float64(t.position) / float64(t.duration)
		freq := t.startFreq + (t.endFreq-t.startFreq)*progress
		t.phase += freq / float64(t.rate)
		t.phase = t.phase - math.Floor(t.phase) // Keep in [0, 1)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
