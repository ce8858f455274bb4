// Package audio synthesises the handful of sounds the demo host plays.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"master-quest/internal/config"
)

const sampleRate = beep.SampleRate(config.AudioSampleRate)

// Generator builds a streamer for one playback at the given pitch.
type Generator func(rate beep.SampleRate, pitch float64) beep.Streamer

// SoundManager mixes one-shot sounds into the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	generators  map[string]Generator
	initialized bool
	muted       bool
	played      uint64
	logger      *slog.Logger
}

// NewSoundManager registers the built-in sounds. Nothing plays until
// Initialize succeeds.
func NewSoundManager(logger *slog.Logger) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		generators: map[string]Generator{
			config.SoundBeamShoot:  CreateArrowShoot,
			config.SoundBeamImpact: CreateAmethystHit,
			config.SoundPlayerHurt: CreateHurt,
		},
		logger: logger,
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*config.AudioBufferMillis)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted silences future sounds. Sounds already mixed in finish.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Build returns the streamer Play would mix for a sound, or nil when the
// id is unknown.
func (sm *SoundManager) Build(id string, volume, pitch float64) beep.Streamer {
	gen, ok := sm.generators[id]
	if !ok {
		return nil
	}
	return newVolume(gen(sampleRate, pitch), volume)
}

// Play mixes in a sound. It returns false if the sound was dropped.
func (sm *SoundManager) Play(id string, volume, pitch float64) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	s := sm.Build(id, volume, pitch)
	if s == nil {
		sm.logger.Warn("unknown sound", "id", id)
		return false
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
	return true
}

// Played is the number of sounds mixed in so far.
func (sm *SoundManager) Played() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}
