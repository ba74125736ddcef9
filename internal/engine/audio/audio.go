// Package audio plays the carousel's background music and control clicks.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned by playback calls made before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Cue is a short synthesized sound played for a control.
type Cue int

const (
	CueResume Cue = iota // auto-rotate switched on
	CuePause             // auto-rotate switched off
	CueReset
)

// Frequency returns the tone pitch in Hz.
func (c Cue) Frequency() float64 {
	switch c {
	case CueResume:
		return 880
	case CuePause:
		return 660
	default:
		return 523.25
	}
}

const cueLength = 60 * time.Millisecond

// Manager handles music and click playback.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	music       beep.StreamSeekCloser
	musicCtrl   *beep.Ctrl
	musicVolume *effects.Volume
	musicPath   string

	// Volume settings (0.0 to 1.0)
	musicLevel float64
	clickLevel float64

	// Mixer for overlapping clicks and the music loop.
	mixer *beep.Mixer
}

// New creates a new audio manager.
func New(musicVolume, clickVolume float64) *Manager {
	return &Manager{
		musicLevel: clamp(musicVolume, 0, 1),
		clickLevel: clamp(clickVolume, 0, 1),
		mixer:      &beep.Mixer{},
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close stops playback and releases the music file.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.stopMusicLocked()
	speaker.Clear()
	m.initialized = false
}

// Initialized reports whether Init succeeded.
func (m *Manager) Initialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMusicVolume sets the music volume (0.0 to 1.0).
func (m *Manager) SetMusicVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.musicLevel = clamp(vol, 0, 1)
	if m.musicVolume != nil {
		speaker.Lock()
		applyVolume(m.musicVolume, m.musicLevel)
		speaker.Unlock()
	}
}

// MusicVolume returns the music volume.
func (m *Manager) MusicVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.musicLevel
}

// ClickVolume returns the click volume.
func (m *Manager) ClickVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.clickLevel
}

// MusicPath returns the file currently looping, or "".
func (m *Manager) MusicPath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.musicPath
}

// PlayMusic loops a WAV file until Close, replacing any loop already playing.
func (m *Manager) PlayMusic(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}
	m.stopMusicLocked()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open music: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode wav: %w", err)
	}

	looped := beep.Loop(-1, streamer)
	var s beep.Streamer = looped
	if format.SampleRate != m.sampleRate {
		s = beep.Resample(4, format.SampleRate, m.sampleRate, looped)
	}

	m.musicCtrl = &beep.Ctrl{Streamer: s}
	m.musicVolume = &effects.Volume{Streamer: m.musicCtrl, Base: 2}
	applyVolume(m.musicVolume, m.musicLevel)
	m.music = streamer
	m.musicPath = path

	speaker.Lock()
	m.mixer.Add(m.musicVolume)
	speaker.Unlock()
	return nil
}

// SetMusicPaused pauses or resumes the music loop.
func (m *Manager) SetMusicPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.musicCtrl != nil {
		speaker.Lock()
		m.musicCtrl.Paused = paused
		speaker.Unlock()
	}
}

func (m *Manager) stopMusicLocked() {
	if m.musicCtrl != nil {
		speaker.Lock()
		// A nil streamer drains out of the mixer on its next pull.
		m.musicCtrl.Streamer = nil
		speaker.Unlock()
	}
	if m.music != nil {
		m.music.Close()
	}
	m.music = nil
	m.musicCtrl = nil
	m.musicVolume = nil
	m.musicPath = ""
}

// Play sounds a control cue.
func (m *Manager) Play(c Cue) error {
	m.mu.RLock()
	initialized := m.initialized
	sr := m.sampleRate
	level := m.clickLevel
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}

	tone, err := cueTone(sr, c)
	if err != nil {
		return err
	}
	vol := &effects.Volume{Streamer: tone, Base: 2}
	applyVolume(vol, level)

	speaker.Lock()
	m.mixer.Add(vol)
	speaker.Unlock()
	return nil
}

// cueTone returns a finite sine burst for the cue.
func cueTone(sr beep.SampleRate, c Cue) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, c.Frequency())
	if err != nil {
		return nil, fmt.Errorf("cue tone: %w", err)
	}
	return beep.Take(sr.N(cueLength), sine), nil
}

func applyVolume(v *effects.Volume, level float64) {
	v.Silent = level <= 0
	v.Volume = volumeExponent(level)
}

// volumeExponent maps a linear 0-1 level to the base-2 exponent used by
// effects.Volume, so a level of 0.5 halves the amplitude.
func volumeExponent(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
