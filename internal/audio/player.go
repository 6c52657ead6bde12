package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues into the speaker. The zero value and a Player whose
// Init failed are silent; every method is safe to call either way.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent player; call Init to open the audio device.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Hit plays a short rising chirp.
func (p *Player) Hit() {
	p.play(NewTone(sampleRate, 660, 1320, 80*time.Millisecond, 0.3))
}

// Miss plays a low falling buzz.
func (p *Player) Miss() {
	p.play(NewTone(sampleRate, 220, 110, 150*time.Millisecond, 0.35))
}

// GameOver plays a long descending tone.
func (p *Player) GameOver() {
	p.play(NewTone(sampleRate, 440, 55, 900*time.Millisecond, 0.4))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
