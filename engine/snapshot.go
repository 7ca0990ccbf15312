package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// Drawable is one entity as seen by renderers
type Drawable struct {
	Position core.Point       `json:"pos"`
	Asset    core.AssetHandle `json:"asset"`
	Size     float64          `json:"size"`
}

// FoodView is a live food item and the time left before it rots
type FoodView struct {
	Position  core.Point    `json:"pos"`
	Remaining time.Duration `json:"remaining_ns"`
}

// Snapshot is a detached read-only copy of the visible game state
type Snapshot struct {
	Width     int32          `json:"width"`
	Height    int32          `json:"height"`
	Boundary  string         `json:"boundary"`
	Round     int            `json:"round"`
	RoundID   string         `json:"round_id"`
	Frame     int64          `json:"frame"`
	Heading   core.Direction `json:"heading"`
	Snake     []core.Point   `json:"snake"`
	Food      []FoodView     `json:"food"`
	FoodCount int            `json:"food_count"`
	Interval  time.Duration  `json:"interval_ns"`
	Best      int            `json:"best"`

	// Drawables in paint order: food, then segments tail to head
	Drawables []Drawable `json:"drawables"`
}

// Snapshot copies the current state; safe to hand to other goroutines
func (w *World) Snapshot() Snapshot {
	res := w.Resources
	snap := Snapshot{
		Width:     res.Arena.Width,
		Height:    res.Arena.Height,
		Boundary:  res.Arena.Boundary.String(),
		Round:     res.Game.Round,
		RoundID:   res.Game.RoundID,
		Frame:     w.frame,
		Snake:     w.SegmentPositions(),
		FoodCount: res.Food.Count,
		Interval:  res.Snake.Interval,
		Best:      res.Game.BestLength,
	}

	if len(res.Snake.Segments) > 0 {
		if head, ok := w.Components.SnakeHead.GetComponent(res.Snake.Head()); ok {
			snap.Heading = head.Direction
		}
	}

	foods := w.Components.Food.GetAllEntities()
	snap.Food = make([]FoodView, 0, len(foods))
	snap.Drawables = make([]Drawable, 0, len(foods)+len(res.Snake.Segments))

	for _, e := range foods {
		pos, ok := w.Components.Position.GetComponent(e)
		if !ok {
			continue
		}
		view := FoodView{Position: pos}
		if life, ok := w.Components.Lifespan.GetComponent(e); ok {
			view.Remaining = life.Timer.Remaining()
		}
		snap.Food = append(snap.Food, view)
		if sprite, ok := w.Components.Sprite.GetComponent(e); ok {
			snap.Drawables = append(snap.Drawables, Drawable{Position: pos, Asset: sprite.Asset, Size: sprite.Size})
		}
	}

	for i := len(res.Snake.Segments) - 1; i >= 0; i-- {
		e := res.Snake.Segments[i]
		pos, ok := w.Components.Position.GetComponent(e)
		if !ok {
			continue
		}
		if sprite, ok := w.Components.Sprite.GetComponent(e); ok {
			snap.Drawables = append(snap.Drawables, Drawable{Position: pos, Asset: sprite.Asset, Size: sprite.Size})
		}
	}

	return snap
}
