package event

import "fmt"

// EventType represents the type of game event
type EventType int

const (
	// EventGrowth signals the snake ate food and must grow by one segment
	// Trigger: EatingSystem on head/food overlap (move ticks only)
	// Consumer: GrowthSystem, FoodCountSystem | Payload: *GrowthPayload
	EventGrowth EventType = iota

	// EventGameOver signals a fatal collision, the round restarts
	// Trigger: MovementSystem on self or wall collision
	// Consumer: GameOverSystem, FoodCountSystem | Payload: *GameOverPayload
	EventGameOver

	// EventFoodSpawned signals a new food entity was placed
	// Trigger: FoodSpawnSystem on spawn timer
	// Consumer: FoodCountSystem | Payload: *FoodPayload
	EventFoodSpawned

	// EventFoodRotted signals a food entity expired uneaten
	// Trigger: FoodDespawnSystem on lifespan expiry
	// Consumer: FoodCountSystem | Payload: *FoodPayload
	EventFoodRotted
)

func (t EventType) String() string {
	switch t {
	case EventGrowth:
		return "growth"
	case EventGameOver:
		return "game_over"
	case EventFoodSpawned:
		return "food_spawned"
	case EventFoodRotted:
		return "food_rotted"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// GameEvent represents a single game event with metadata
// Events are immutable once published
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
