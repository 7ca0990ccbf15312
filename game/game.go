package game

import (
	"log"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/system"
)

// Game owns a world with every gameplay system registered and routes its events to sinks
// Tick and Snapshot must be called from the same goroutine
type Game struct {
	world  *engine.World
	router *event.Router
}

// NewRand returns the production random source, seeded from the clock when seed is 0
func NewRand(seed uint64) core.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// New builds a world from cfg and spawns the first snake
// A nil input never steers
func New(cfg *config.Config, rng core.Rand, input engine.InputSource) *Game {
	w := engine.NewWorld()
	res := w.Resources

	res.Arena.Arena = core.Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height}
	res.Arena.Boundary = cfg.Boundary()
	*res.Tuning = engine.TuningResource{
		BaseInterval:    cfg.Snake.BaseInterval.Duration,
		IntervalStep:    cfg.Snake.IntervalStep.Duration,
		MinInterval:     cfg.Snake.MinInterval.Duration,
		FoodCeiling:     cfg.Food.Ceiling,
		FoodLifespan:    cfg.Food.Lifespan.Duration,
		FoodSpawnPeriod: cfg.Food.SpawnPeriod.Duration,
	}
	res.Food.SpawnTimer.Duration = res.Tuning.FoodSpawnPeriod
	res.Rand.Source = rng
	if input != nil {
		res.Input.Source = input
	}

	w.AddSystem(system.NewMoveTimerSystem(w))
	w.AddSystem(system.NewMovementSystem(w))
	w.AddSystem(system.NewEatingSystem(w))
	w.AddSystem(system.NewGrowthSystem(w))
	w.AddSystem(system.NewGameOverSystem(w))
	w.AddSystem(system.NewFoodSpawnSystem(w))
	w.AddSystem(system.NewFoodDespawnSystem(w))
	w.AddSystem(system.NewFoodCountSystem(w))

	system.SpawnSnake(w)

	log.Printf("game: arena %dx%d boundary=%s round %d [%s]",
		res.Arena.Width, res.Arena.Height, res.Arena.Boundary, res.Game.Round, res.Game.RoundID)
	for _, sys := range w.Systems() {
		log.Printf("game: system %s priority=%d", sys.Name(), sys.Priority())
	}

	return &Game{
		world:  w,
		router: event.NewRouter(res.Event.Bus),
	}
}

// RegisterHandler routes events to an external sink after every tick
func (g *Game) RegisterHandler(h event.Handler) {
	g.router.Register(h)
}

// Tick advances the simulation by dt and dispatches the tick's events
func (g *Game) Tick(dt time.Duration) {
	g.world.Update(dt)
	g.router.DispatchAll()
}

// Snapshot returns a detached copy of the visible state
func (g *Game) Snapshot() engine.Snapshot {
	return g.world.Snapshot()
}

// World exposes the underlying world for tests and tooling
func (g *Game) World() *engine.World {
	return g.world
}

// Status returns the telemetry registry
func (g *Game) Status() *status.Registry {
	return g.world.Resources.Status
}
