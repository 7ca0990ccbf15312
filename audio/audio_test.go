package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLengthAndPeak(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	tn := newTone(Note{Freq: 440, Wave: Sine, Length: parameter.GrowthNoteDuration}, rate)

	n, peak := drain(tn)
	if want := rate.N(parameter.GrowthNoteDuration); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
	if peak <= 0.9 || peak > 1.0 {
		t.Errorf("Expected sine peak near 1, got %v", peak)
	}
}

func TestToneEnvelopeEdges(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	def := Note{Wave: Square, Length: parameter.RotSoundDuration,
		Attack: parameter.RotAttack, Release: parameter.RotRelease}
	tn := newTone(def, rate)

	buf := make([][2]float64, rate.N(def.Length))
	n, ok := tn.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Expected %d samples, got %d (ok=%t)", len(buf), n, ok)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample during attack, got %v", buf[0][0])
	}
	if mid := buf[len(buf)/2][0]; mid != 1 {
		t.Errorf("Expected full level mid-note, got %v", mid)
	}
	if last := buf[n-1][0]; last <= 0 || last >= 0.01 {
		t.Errorf("Expected last sample faded near zero, got %v", last)
	}
	if n, ok := tn.Stream(buf); n != 0 || ok {
		t.Errorf("Expected drained tone to end, got %d (ok=%t)", n, ok)
	}
}

func TestEffectLengths(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	tests := []struct {
		name string
		s    beep.Streamer
		want int
	}{
		{"growth", CreateGrowthSound(rate, 1), 2 * rate.N(parameter.GrowthNoteDuration)},
		{"game over", CreateGameOverSound(rate, 1), 3 * rate.N(parameter.GameOverNoteDuration)},
		{"rot", CreateRotSound(rate, 1), 2 * rate.N(parameter.RotSoundDuration/2)},
	}
	for _, tt := range tests {
		if n, _ := drain(tt.s); n != tt.want {
			t.Errorf("%s: expected %d samples, got %d", tt.name, tt.want, n)
		}
	}
}

func TestSilentVolume(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	if _, peak := drain(CreateGrowthSound(rate, 0)); peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %v", peak)
	}
}

func TestPlayerRoutesEvents(t *testing.T) {
	p := NewPlayer(0.5)
	var played []beep.Streamer
	p.sink = func(s beep.Streamer) { played = append(played, s) }

	p.HandleEvent(event.GameEvent{Type: event.EventGrowth})
	p.HandleEvent(event.GameEvent{Type: event.EventFoodSpawned})
	p.HandleEvent(event.GameEvent{Type: event.EventGameOver})

	if len(played) != 2 {
		t.Errorf("Expected 2 sounds, got %d", len(played))
	}

	if !p.ToggleMute() {
		t.Fatal("Expected muted after toggle")
	}
	p.HandleEvent(event.GameEvent{Type: event.EventFoodRotted})
	if len(played) != 2 {
		t.Errorf("Expected no sound while muted, got %d", len(played))
	}
}

func TestPlayerUninitializedIsSilent(t *testing.T) {
	p := NewPlayer(1)
	p.Play(SoundGrowth)
	if p.IsMuted() {
		t.Error("Expected unmuted by default")
	}
}

func TestSoundFor(t *testing.T) {
	if SoundFor(event.EventGrowth) != SoundGrowth {
		t.Error("Expected growth sound for Growth")
	}
	if SoundFor(event.EventFoodSpawned) != SoundNone {
		t.Error("Expected no sound for FoodSpawned")
	}
}
