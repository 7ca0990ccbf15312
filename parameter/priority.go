package parameter

// System Execution Priorities (lower runs first)
// Order: time-advance, movement, eating, growth, game-over, food spawn, food despawn, food count
const (
	PriorityMoveTimer   = 10
	PriorityMovement    = 20
	PriorityEating      = 30 // Same tick as movement, reads the advanced head
	PriorityGrowth      = 40 // Consumes Growth emitted by eating this tick
	PriorityGameOver    = 50 // After growth so a reset always wins
	PriorityFoodSpawn   = 60 // Sees the post-reset snake
	PriorityFoodDespawn = 70
	PriorityFoodCount   = 80 // Last, observes every event of the tick
)
