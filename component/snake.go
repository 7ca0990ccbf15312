package component

import "github.com/lixenwraith/vi-snake/core"

// SnakeHeadComponent marks the head segment and carries the current heading
type SnakeHeadComponent struct {
	Direction core.Direction
}

// SegmentComponent marks a snake body cell, the head included
// Order lives in SnakeResource.Segments, not here
type SegmentComponent struct{}
