package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// GameOverSystem resets the round once per tick when any GameOver event arrived
type GameOverSystem struct {
	world  *engine.World
	events *eventCursor

	// Telemetry
	statBest *atomic.Int64
}

func NewGameOverSystem(world *engine.World) engine.System {
	return &GameOverSystem{
		world:    world,
		events:   newEventCursor(world),
		statBest: world.Resources.Status.Ints.Get("game.best"),
	}
}

func (s *GameOverSystem) Name() string {
	return "game_over"
}

func (s *GameOverSystem) Priority() int {
	return parameter.PriorityGameOver
}

func (s *GameOverSystem) Update() {
	var cause *event.GameOverPayload
	for _, ev := range s.events.read() {
		if ev.Type != event.EventGameOver {
			continue
		}
		if p, ok := ev.Payload.(*event.GameOverPayload); ok && cause == nil {
			cause = p
		} else if cause == nil {
			cause = &event.GameOverPayload{}
		}
	}
	if cause == nil {
		return
	}

	s.reset(cause)
}

func (s *GameOverSystem) reset(cause *event.GameOverPayload) {
	res := s.world.Resources
	game := res.Game

	length := cause.Length
	if length == 0 {
		length = len(res.Snake.Segments)
	}
	if length > game.BestLength {
		game.BestLength = length
		s.statBest.Store(int64(length))
	}
	log.Printf("round %d [%s] over: cause=%s at=%s length=%d best=%d cleared=%d",
		game.Round, game.RoundID, cause.Cause, cause.Position, length, game.BestLength, s.world.EntityCount())

	// Every entity is either food or a segment
	s.world.ClearEntities()
	res.Snake.Segments = res.Snake.Segments[:0]

	SpawnSnake(s.world)
}
