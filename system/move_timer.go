package system

import (
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

// MoveTimerSystem advances the snake's move timer by the tick's elapsed time
// Movement and eating consult Finished() later in the same tick
type MoveTimerSystem struct {
	world *engine.World
}

func NewMoveTimerSystem(world *engine.World) engine.System {
	return &MoveTimerSystem{world: world}
}

func (s *MoveTimerSystem) Name() string {
	return "move_timer"
}

func (s *MoveTimerSystem) Priority() int {
	return parameter.PriorityMoveTimer
}

func (s *MoveTimerSystem) Update() {
	s.world.Resources.Snake.MoveTimer.Tick(s.world.Resources.Time.DeltaTime)
}
