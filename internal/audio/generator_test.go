package audio

import (
	"math"
	"testing"
	"time"
)

func peak(samples [][2]float64) float64 {
	max := 0.0
	for _, s := range samples {
		if a := math.Abs(s[0]); a > max {
			max = a
		}
	}
	return max
}

func TestToneGeneratorProducesSamples(t *testing.T) {
	waves := []struct {
		name string
		wave Waveform
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tt := range waves {
		t.Run(tt.name, func(t *testing.T) {
			g := NewToneGenerator(sampleRate, 440, tt.wave, 100*time.Millisecond)

			samples := make([][2]float64, 4096)
			n, ok := g.Stream(samples)
			if !ok || n != len(samples) {
				t.Fatalf("Stream returned n=%d ok=%v", n, ok)
			}

			if p := peak(samples); p == 0 {
				t.Error("Generator produced silence")
			} else if p > 1 {
				t.Errorf("Generator clipped, peak = %f", p)
			}

			// Stereo channels carry the same signal
			for i, s := range samples {
				if s[0] != s[1] {
					t.Fatalf("Sample %d is not mono-duplicated: %f != %f", i, s[0], s[1])
				}
			}

			if err := g.Err(); err != nil {
				t.Errorf("Err() = %v", err)
			}
		})
	}
}

func TestToneGeneratorEnvelopeDecays(t *testing.T) {
	d := 100 * time.Millisecond
	g := NewToneGenerator(sampleRate, 440, WaveSine, d)

	total := sampleRate.N(d)
	samples := make([][2]float64, total)
	g.Stream(samples)

	early := peak(samples[total/10 : total/5])
	late := peak(samples[total*4/5:])
	if late >= early {
		t.Errorf("Envelope should decay: early peak %f, late peak %f", early, late)
	}
}

func TestSweepGeneratorFrequencyMoves(t *testing.T) {
	d := 500 * time.Millisecond
	g := NewSweepGenerator(sampleRate, 200, 800, d)

	total := sampleRate.N(d)
	samples := make([][2]float64, total)
	n, ok := g.Stream(samples)
	if !ok || n != total {
		t.Fatalf("Stream returned n=%d ok=%v", n, ok)
	}

	// Count zero crossings in the first and last fifth; an upward sweep
	// ends with a much denser signal
	crossings := func(s [][2]float64) int {
		c := 0
		for i := 1; i < len(s); i++ {
			if (s[i-1][0] < 0) != (s[i][0] < 0) {
				c++
			}
		}
		return c
	}

	first := crossings(samples[:total/5])
	last := crossings(samples[total*4/5:])
	if last <= first {
		t.Errorf("Upward sweep should end faster than it starts: %d vs %d crossings", first, last)
	}
}

