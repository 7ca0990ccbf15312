package parameter

import "time"

// Arena
const (
	ArenaWidth  = 25
	ArenaHeight = 25
)

// Snake movement
const (
	// MoveIntervalBase is the delay between head advances at round start
	MoveIntervalBase = 350 * time.Millisecond

	// MoveIntervalStep is subtracted from the interval on each growth
	MoveIntervalStep = 10 * time.Millisecond

	// MoveIntervalMin is the floor; the interval never shrinks below it
	MoveIntervalMin = 10 * time.Millisecond

	// SnakeInitialLength is the segment count of a freshly spawned snake (head + one body)
	SnakeInitialLength = 2
)

// Food
const (
	// FoodSpawnPeriod is the spawn timer period
	FoodSpawnPeriod = 2000 * time.Millisecond

	// FoodLifespan is how long uneaten food survives
	FoodLifespan = 5000 * time.Millisecond

	// FoodCeiling caps concurrent live food; the spawner only acts below it
	FoodCeiling = 10
)

// Engine
const (
	// FrameInterval is the scheduler tick period (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxFrameDelta clamps a single tick's elapsed time after stalls (e.g. terminal suspend)
	MaxFrameDelta = 250 * time.Millisecond
)

// Spectator feed
const (
	SpectatorPath         = "/ws"
	SpectatorSendQueue    = 16
	SpectatorWriteTimeout = 2 * time.Second
	SpectatorMaxClients   = 32
)
