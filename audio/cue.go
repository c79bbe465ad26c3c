package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(48000)
	cueDuration  = 180 * time.Millisecond
	baseCueFreq  = 440.0
	cueSemitones = 4 // Major third between consecutive cues
)

// CueManager plays short chimes when modifiers are activated
type CueManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCueManager creates a silent manager; call Initialize to open the speaker
func NewCueManager() *CueManager {
	return &CueManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (cm *CueManager) Initialize() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(cm.mixer)
	cm.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (cm *CueManager) Initialized() bool {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.initialized
}

// Cleanup drops queued cues
func (cm *CueManager) Cleanup() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if !cm.initialized {
		return
	}
	speaker.Lock()
	cm.mixer.Clear()
	speaker.Unlock()
	cm.initialized = false
}

// PlayActivation mixes the chime for the step-th activated modifier
// Each step is delayed so consecutive cues form an arpeggio
func (cm *CueManager) PlayActivation(step int) bool {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if !cm.initialized {
		return false
	}

	speaker.Lock()
	cm.mixer.Add(ActivationCue(sampleRate, step))
	speaker.Unlock()
	return true
}

// ActivationCue returns the delayed chime streamer for step
func ActivationCue(sr beep.SampleRate, step int) beep.Streamer {
	freq := CueFrequency(step)
	delay := beep.Silence(sr.N(time.Duration(step) * cueDuration / 2))
	chime := beep.Take(sr.N(cueDuration), NewChimeGenerator(sr, freq))
	return beep.Seq(delay, chime)
}

// CueFrequency is the pitch of the step-th cue, rising by cueSemitones per step within one octave
func CueFrequency(step int) float64 {
	semis := (step * cueSemitones) % 12
	return baseCueFreq * math.Pow(2, float64(semis)/12)
}

// ChimeGenerator streams a decaying sine with a soft overtone
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime at freq Hz
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.7*math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(2*math.Pi*g.freq*2*t)

		// 5ms attack, exponential decay
		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*12)
		sample *= envelope * 0.25

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
