package event

import "github.com/lixenwraith/vi-snake/core"

// GrowthPayload identifies the food that was eaten
type GrowthPayload struct {
	Food     core.Entity
	Position core.Point
}

// DeathCause distinguishes game over reasons
type DeathCause uint8

const (
	CauseSelf DeathCause = iota
	CauseWall
)

func (c DeathCause) String() string {
	if c == CauseWall {
		return "wall"
	}
	return "self"
}

// GameOverPayload describes the collision that ended the round
type GameOverPayload struct {
	Cause    DeathCause
	Position core.Point // Cell the head tried to enter
	Length   int        // Snake length at the moment of death
}

// FoodPayload identifies a food entity for spawn and rot notifications
type FoodPayload struct {
	Entity   core.Entity
	Position core.Point
}

// MarshalText encodes the cause by name
func (c DeathCause) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
