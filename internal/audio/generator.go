package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Waveform selects the oscillator shape for a generated tone.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// envelope shapes a tone with a linear attack and exponential release so
// clips start and end without clicks.
func envelope(t, attack, total float64) float64 {
	if t < attack {
		return t / attack
	}
	return math.Exp(-(t - attack) * 6 / total)
}

// ToneGenerator produces a fixed-frequency waveform. Use with beep.Take to
// bound its duration.
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	wave  Waveform
	total float64 // Clip length in seconds, for the envelope
	pos   int
	seed  int64
}

// NewToneGenerator creates a tone at the given frequency and waveform,
// enveloped over the given duration.
func NewToneGenerator(sr beep.SampleRate, freq float64, wave Waveform, d time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:    sr,
		freq:  freq,
		wave:  wave,
		total: d.Seconds(),
		seed:  1,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := g.oscillate(t) * envelope(t, 0.005, g.total) * 0.25

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// oscillate produces one raw sample of the selected waveform at time t.
func (g *ToneGenerator) oscillate(t float64) float64 {
	switch g.wave {
	case WaveSquare:
		if math.Sin(2*math.Pi*g.freq*t) >= 0 {
			return 1
		}
		return -1
	case WaveSaw:
		phase := g.freq * t
		return -2 * (phase - math.Floor(phase+0.5))
	case WaveNoise:
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		return float64(g.seed)/float64(0x7fffffff)*2 - 1
	default:
		return math.Sin(2 * math.Pi * g.freq * t)
	}
}

// SweepGenerator produces a sine tone whose frequency moves linearly from
// start to end over the clip duration.
type SweepGenerator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	total     float64
	pos       int
	phase     float64
}

// NewSweepGenerator creates a frequency sweep over the given duration.
func NewSweepGenerator(sr beep.SampleRate, startFreq, endFreq float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		total:     d.Seconds(),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	dt := 1 / float64(g.sr)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(t/g.total, 1)
		freq := g.startFreq + (g.endFreq-g.startFreq)*progress

		// Integrate phase so the sweep stays continuous
		g.phase += 2 * math.Pi * freq * dt
		sample := math.Sin(g.phase) * envelope(t, 0.01, g.total) * 0.25

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
