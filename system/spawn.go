package system

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// SpawnSnake places a fresh two-segment snake at the arena center with a random heading
// The second segment sits one cell behind the head; a new round begins
func SpawnSnake(world *engine.World) {
	res := world.Resources
	arena := res.Arena.Arena

	dir := core.RandomDirection(res.Rand.Source)
	center := arena.Center()
	behind := arena.Wrap(center.Step(dir.Opposite()))

	head := world.CreateEntity()
	world.Components.Position.SetComponent(head, center)
	world.Components.SnakeHead.SetComponent(head, component.SnakeHeadComponent{Direction: dir})
	world.Components.Sprite.SetComponent(head, component.SpriteComponent{
		Asset: core.AssetHead,
		Size:  component.SizeHead,
	})

	res.Snake.Segments = append(res.Snake.Segments[:0], head, createSegment(world, behind))
	res.Snake.HasLastTail = false
	res.Snake.LastTail = core.Point{}
	res.Snake.SetInterval(res.Tuning.BaseInterval)

	res.Game.Round++
	res.Game.RoundID = uuid.NewString()

	status := res.Status
	status.Ints.Get("game.rounds").Store(int64(res.Game.Round))
	status.Ints.Get("snake.length").Store(int64(len(res.Snake.Segments)))
	status.Ints.Get("snake.interval_ms").Store(res.Snake.Interval.Milliseconds())
}

// createSegment creates a trailing body segment at pos
func createSegment(world *engine.World, pos core.Point) core.Entity {
	e := world.CreateEntity()
	world.Components.Position.SetComponent(e, pos)
	world.Components.Segment.SetComponent(e, component.SegmentComponent{})
	world.Components.Sprite.SetComponent(e, component.SpriteComponent{
		Asset: core.AssetSegment,
		Size:  component.SizeSegment,
	})
	return e
}
