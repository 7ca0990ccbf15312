package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundNone SoundType = iota
	SoundGrowth
	SoundGameOver
	SoundRot
)

// SoundFor maps a game event to its sound effect
func SoundFor(t event.EventType) SoundType {
	switch t {
	case event.EventGrowth:
		return SoundGrowth
	case event.EventGameOver:
		return SoundGameOver
	case event.EventFoodRotted:
		return SoundRot
	}
	return SoundNone
}

// Player plays synthesized effects for routed game events
// Events arrive on the tick goroutine; playback happens on the speaker goroutine
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool

	muted atomic.Bool

	// sink hands a finished streamer to the output device
	sink func(beep.Streamer)
}

// NewPlayer creates a player; it stays silent until Initialize succeeds
func NewPlayer(volume float64) *Player {
	return &Player{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferSize)); err != nil {
		return err
	}
	speaker.Play(p.mixer)

	p.sink = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	return nil
}

// Cleanup stops all sounds
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
	p.sink = nil
}

// ToggleMute flips muting and returns the new state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetMuted sets muting
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// Play builds and queues a sound effect, no-op when muted or uninitialized
func (p *Player) Play(sound SoundType) {
	if p.muted.Load() {
		return
	}

	p.mu.Lock()
	sink := p.sink
	p.mu.Unlock()
	if sink == nil {
		return
	}

	if s := p.create(sound); s != nil {
		sink(s)
	}
}

func (p *Player) create(sound SoundType) beep.Streamer {
	switch sound {
	case SoundGrowth:
		return CreateGrowthSound(p.rate, p.volume)
	case SoundGameOver:
		return CreateGameOverSound(p.rate, p.volume)
	case SoundRot:
		return CreateRotSound(p.rate, p.volume)
	}
	return nil
}

// EventTypes implements event.Handler
func (p *Player) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGrowth,
		event.EventGameOver,
		event.EventFoodRotted,
	}
}

// HandleEvent implements event.Handler
func (p *Player) HandleEvent(ev event.GameEvent) {
	p.Play(SoundFor(ev.Type))
}
