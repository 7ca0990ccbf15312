package system

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// MovementSystem applies steering input and advances the snake one cell per move interval
//
// Per move:
//  1. Record the pre-move tail cell for growth
//  2. Step the head along its heading and apply the boundary policy
//  3. Check the new head against the body, the vacated tail cell excluded
//  4. Shift every segment into the cell of the one ahead of it
type MovementSystem struct {
	world *engine.World
}

func NewMovementSystem(world *engine.World) engine.System {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Update() {
	res := s.world.Resources
	snake := res.Snake
	headEntity := snake.Head()

	head, _ := s.world.Components.SnakeHead.GetComponent(headEntity)
	if dir, ok := res.Input.Source.Poll(); ok && dir != head.Direction.Opposite() {
		head.Direction = dir
		s.world.Components.SnakeHead.SetComponent(headEntity, head)
	}

	if !snake.MoveTimer.Finished() {
		return
	}

	positions := s.world.SegmentPositions()
	tailIdx := len(positions) - 1
	snake.LastTail = positions[tailIdx]
	snake.HasLastTail = true

	next := positions[0].Step(head.Direction)
	if !res.Arena.Contains(next) {
		if res.Arena.Boundary == core.BoundaryWall {
			s.world.PushEvent(event.EventGameOver, &event.GameOverPayload{
				Cause:    event.CauseWall,
				Position: next,
				Length:   len(positions),
			})
			return
		}
		next = res.Arena.Wrap(next)
	}

	for _, p := range positions[:tailIdx] {
		if p == next {
			s.world.PushEvent(event.EventGameOver, &event.GameOverPayload{
				Cause:    event.CauseSelf,
				Position: next,
				Length:   len(positions),
			})
			return
		}
	}

	for i := tailIdx; i > 0; i-- {
		s.world.Components.Position.SetComponent(snake.Segments[i], positions[i-1])
	}
	s.world.Components.Position.SetComponent(headEntity, next)
}
