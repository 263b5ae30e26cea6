// Package audio plays the game's sound effects through the system speaker.
// Every clip has a procedurally generated fallback, so the game is fully
// playable with no sound files on disk; WAV files in the sounds directory
// override individual clips. All failures degrade to silence.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// Clip names, matching the event names emitted by the game.
const (
	ClipShoot     = "shoot"
	ClipHit       = "hit"
	ClipExplosion = "explosion"
	ClipGameOver  = "game_over"
	ClipLevelUp   = "level_up"
)

// clipFactory produces a fresh streamer for one playback of a clip.
type clipFactory func() beep.Streamer

// Manager owns the speaker and the clip table.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	clips       map[string]clipFactory
	initialized bool
	muted       bool
	logger      *log.Logger
}

// NewManager creates a sound manager with the generated default clips.
func NewManager(logger *log.Logger) *Manager {
	m := &Manager{
		mixer:  &beep.Mixer{},
		clips:  make(map[string]clipFactory),
		logger: logger,
	}
	m.registerDefaults()
	return m
}

// registerDefaults installs the procedural versions of every clip.
func (m *Manager) registerDefaults() {
	m.clips[ClipShoot] = take(100*time.Millisecond, func(d time.Duration) beep.Streamer {
		return NewToneGenerator(sampleRate, 800, WaveSquare, d)
	})
	m.clips[ClipHit] = take(200*time.Millisecond, func(d time.Duration) beep.Streamer {
		return NewToneGenerator(sampleRate, 200, WaveSine, d)
	})
	m.clips[ClipExplosion] = take(300*time.Millisecond, func(d time.Duration) beep.Streamer {
		return NewToneGenerator(sampleRate, 100, WaveNoise, d)
	})
	m.clips[ClipGameOver] = take(time.Second, func(d time.Duration) beep.Streamer {
		return NewSweepGenerator(sampleRate, 400, 100, d)
	})
	m.clips[ClipLevelUp] = take(500*time.Millisecond, func(d time.Duration) beep.Streamer {
		return NewSweepGenerator(sampleRate, 200, 800, d)
	})
}

// take wraps a generator constructor into a duration-bounded clip factory.
func take(d time.Duration, gen func(time.Duration) beep.Streamer) clipFactory {
	return func() beep.Streamer {
		return beep.Take(sampleRate.N(d), gen(d))
	}
}

// Initialize opens the speaker. On failure the manager stays silent and
// every Play call becomes a no-op; the game keeps running.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// LoadDir overrides clips with WAV files named <clip>.wav found in dir.
// Missing or unreadable files leave the generated clip in place.
func (m *Manager) LoadDir(dir string) {
	if dir == "" {
		return
	}

	names := []string{ClipShoot, ClipHit, ClipExplosion, ClipGameOver, ClipLevelUp}
	for _, name := range names {
		path := filepath.Join(dir, name+".wav")
		factory, err := m.loadWAV(path)
		if err != nil {
			if !os.IsNotExist(err) {
				m.logger.Warn("Failed to load sound, using generated clip", "clip", name, "path", path, "error", err)
			}
			continue
		}

		m.mu.Lock()
		m.clips[name] = factory
		m.mu.Unlock()
		m.logger.Debug("Loaded sound", "clip", name, "path", path)
	}
}

// loadWAV decodes a WAV file into a memory buffer, resampling to the
// speaker rate when needed.
func (m *Manager) loadWAV(path string) (clipFactory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)

	return func() beep.Streamer {
		return buf.Streamer(0, buf.Len())
	}, nil
}

// Play queues one playback of the named clip. Unknown names are logged
// and dropped; playback never blocks the game loop.
func (m *Manager) Play(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}

	factory, ok := m.clips[name]
	if !ok {
		m.logger.Warn("Unknown sound clip", "clip", name)
		return
	}

	speaker.Lock()
	m.mixer.Add(factory())
	speaker.Unlock()
}

// SetMuted toggles all sound output.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted reports whether sound output is disabled.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Cleanup silences the mixer. The speaker itself has no close; dropping
// all streamers is enough to stop output.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}
