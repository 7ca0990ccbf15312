package core

import (
	"fmt"
	"strings"
)

// Boundary selects what happens when the head leaves the arena
type Boundary uint8

const (
	// BoundaryWrap re-enters the head on the opposite edge
	BoundaryWrap Boundary = iota
	// BoundaryWall ends the round when the head leaves the arena
	BoundaryWall
)

func (b Boundary) String() string {
	switch b {
	case BoundaryWrap:
		return "wrap"
	case BoundaryWall:
		return "wall"
	}
	return fmt.Sprintf("Boundary(%d)", uint8(b))
}

// ParseBoundary resolves a policy name ("wrap" or "wall")
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "wrap-around", "":
		return BoundaryWrap, nil
	case "wall", "wall-death":
		return BoundaryWall, nil
	}
	return 0, fmt.Errorf("unknown boundary policy %q", s)
}

// Arena represents the playable grid, origin at top-left
type Arena struct {
	Width, Height int32
}

// Contains reports whether p lies inside [0,Width) x [0,Height)
func (a Arena) Contains(p Point) bool {
	return p.X >= 0 && p.X < a.Width && p.Y >= 0 && p.Y < a.Height
}

// Wrap normalizes out-of-range coordinates modulo the arena dimensions
func (a Arena) Wrap(p Point) Point {
	return Point{X: wrapAxis(p.X, a.Width), Y: wrapAxis(p.Y, a.Height)}
}

func wrapAxis(v, size int32) int32 {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// Center returns the middle cell (rounded down)
func (a Arena) Center() Point {
	return Point{X: a.Width / 2, Y: a.Height / 2}
}

// CellCount returns the number of cells in the arena
func (a Arena) CellCount() int {
	return int(a.Width) * int(a.Height)
}

// FreeCells returns all cells not present in occupied, in row-major order
func (a Arena) FreeCells(occupied map[Point]struct{}) []Point {
	free := make([]Point, 0, max(0, a.CellCount()-len(occupied)))
	for y := int32(0); y < a.Height; y++ {
		for x := int32(0); x < a.Width; x++ {
			p := Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free
}
