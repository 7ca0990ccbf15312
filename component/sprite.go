package component

import "github.com/lixenwraith/vi-snake/core"

// Logical sizes relative to one cell
const (
	SizeHead    = 0.8
	SizeSegment = 0.65
	SizeFood    = 0.8
)

// SpriteComponent attaches a material handle and a logical size for renderers
type SpriteComponent struct {
	Asset core.AssetHandle
	Size  float64 // Fraction of a cell, (0, 1]
}
