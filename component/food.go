package component

// FoodComponent marks an edible entity
type FoodComponent struct{}

// LifespanComponent counts down until the owning entity rots away
type LifespanComponent struct {
	Timer Timer
}
