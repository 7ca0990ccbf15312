package core

import (
	"fmt"
	"strings"
)

// Direction is one of the four grid headings
type Direction uint8

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// directionCount is the number of valid directions, used for uniform sampling
const directionCount = 4

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	default:
		return DirUp
	}
}

// Delta returns the unit cell offset for the direction in screen coordinates (Y grows downward)
func (d Direction) Delta() (dx, dy int32) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection resolves a direction name, case-insensitive
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirLeft, nil
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// RandomDirection samples a heading uniformly
func RandomDirection(rng Rand) Direction {
	return Direction(rng.Intn(directionCount))
}

// Rand is the uniform random source used for headings and food placement
// Intn returns a value in [0, n); golang.org/x/exp/rand.Rand satisfies it
type Rand interface {
	Intn(n int) int
}

// MarshalText encodes the direction by name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
