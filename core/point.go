package core

import "fmt"

// Entity is a unique identifier for an entity, 0 is never allocated
type Entity uint64

// Point represents a grid cell
type Point struct {
	X, Y int32
}

// Add returns the point offset by the given deltas
func (p Point) Add(dx, dy int32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbouring cell in direction d
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// AssetHandle is an opaque material identifier attached to drawable entities
// The game logic passes it through untouched; only renderers interpret it
type AssetHandle string

const (
	AssetHead    AssetHandle = "head"
	AssetSegment AssetHandle = "segment"
	AssetFood    AssetHandle = "food"
)
