package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/parameter"
)

// Wave maps a phase in [0, 1) to a sample in [-1, 1]
type Wave func(phase float64) float64

func Sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }

func Square(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

func Saw(p float64) float64 { return 2*p - 1 }

// Noise ignores the phase
func Noise(float64) float64 { return rand.Float64()*2 - 1 }

// Note is one tone with a linear attack and release
type Note struct {
	Freq    float64
	Wave    Wave
	Length  time.Duration
	Attack  time.Duration
	Release time.Duration
}

// tone renders a Note; the stream ends after Length
type tone struct {
	wave  Wave
	step  float64 // Phase advance per sample
	phase float64

	pos, total      int
	attack, release int
}

func newTone(def Note, rate beep.SampleRate) *tone {
	return &tone{
		wave:    def.Wave,
		step:    def.Freq / float64(rate),
		total:   rate.N(def.Length),
		attack:  rate.N(def.Attack),
		release: rate.N(def.Release),
	}
}

// gain is the envelope level at the current sample
func (t *tone) gain() float64 {
	switch {
	case t.attack > 0 && t.pos < t.attack:
		return float64(t.pos) / float64(t.attack)
	case t.release > 0 && t.pos >= t.total-t.release:
		return float64(t.total-t.pos) / float64(t.release)
	}
	return 1
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	n := 0
	for n < len(samples) && t.pos < t.total {
		v := t.wave(t.phase) * t.gain()
		samples[n] = [2]float64{v, v}
		t.phase += t.step
		t.phase -= math.Floor(t.phase)
		t.pos++
		n++
	}
	// A drained tone must report false or beep.Seq never advances
	return n, n > 0
}

func (t *tone) Err() error { return nil }

// phrase plays tones back to back
func phrase(rate beep.SampleRate, notes ...Note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, def := range notes {
		parts[i] = newTone(def, rate)
	}
	return beep.Seq(parts...)
}

// withGain scales s linearly; effects.Volume works in log2, so zero needs Silent
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// CreateGrowthSound is a rising two-note chime, E5 then B5
func CreateGrowthSound(rate beep.SampleRate, vol float64) beep.Streamer {
	note := Note{Wave: Square, Length: parameter.GrowthNoteDuration,
		Attack: parameter.GrowthAttack, Release: parameter.GrowthRelease}
	e5, b5 := note, note
	e5.Freq, b5.Freq = 659.25, 987.77
	return withGain(phrase(rate, e5, b5), vol*0.6)
}

// CreateGameOverSound is a falling saw phrase G4, Eb4, G3
func CreateGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := make([]Note, 0, 3)
	for _, freq := range []float64{392.00, 311.13, 196.00} {
		notes = append(notes, Note{Freq: freq, Wave: Saw, Length: parameter.GameOverNoteDuration,
			Attack: parameter.GameOverAttack, Release: parameter.GameOverRelease})
	}
	return withGain(phrase(rate, notes...), vol*0.5)
}

// CreateRotSound is a soft noise puff followed by a low sine thud
func CreateRotSound(rate beep.SampleRate, vol float64) beep.Streamer {
	half := parameter.RotSoundDuration / 2
	puff := Note{Wave: Noise, Length: half, Attack: parameter.RotAttack, Release: parameter.RotRelease}
	thud := Note{Freq: 110, Wave: Sine, Length: half, Attack: parameter.RotAttack, Release: parameter.RotRelease}
	seq := beep.Seq(
		withGain(newTone(puff, rate), 0.3),
		withGain(newTone(thud, rate), 0.5),
	)
	return withGain(seq, vol*0.4)
}
