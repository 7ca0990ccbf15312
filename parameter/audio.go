package parameter

import "time"

// Audio
const (
	AudioSampleRate = 44100
	AudioBufferSize = 100 * time.Millisecond

	// Growth chime: two rising square notes
	GrowthNoteDuration = 60 * time.Millisecond
	GrowthAttack       = 5 * time.Millisecond
	GrowthRelease      = 40 * time.Millisecond

	// Game over: three falling saw notes
	GameOverNoteDuration = 140 * time.Millisecond
	GameOverAttack       = 10 * time.Millisecond
	GameOverRelease      = 80 * time.Millisecond

	// Rot: noise puff then low thud, each half of RotSoundDuration
	RotSoundDuration = 90 * time.Millisecond
	RotAttack        = 5 * time.Millisecond
	RotRelease       = 30 * time.Millisecond
)
