package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// CellWidth is the number of terminal columns per grid cell, keeps cells roughly square
const CellWidth = 2

// staleFraction is the remaining lifespan fraction below which food is drawn as stale
const staleFraction = 0.25

// Renderer draws snapshots to a terminal canvas
//
// Layout:
//   - Row 0: status bar
//   - Rows 1..: bordered arena, centered horizontally
type Renderer struct {
	canvas   Canvas
	lifespan time.Duration
}

// NewRenderer creates a renderer; lifespan scales the food freshness shading
func NewRenderer(canvas Canvas, lifespan time.Duration) *Renderer {
	return &Renderer{canvas: canvas, lifespan: lifespan}
}

// RenderFrame renders the entire game frame
func (r *Renderer) RenderFrame(snap engine.Snapshot, paused bool) {
	r.canvas.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	screenW, screenH := r.canvas.Size()
	arenaW := int(snap.Width) * CellWidth
	arenaH := int(snap.Height)

	originX := (screenW - arenaW - 2) / 2
	if originX < 0 {
		originX = 0
	}
	originY := 2

	r.fill(screenW, screenH, defaultStyle)
	r.drawStatusBar(snap, paused, screenW, defaultStyle)
	r.drawBorder(originX, originY-1, arenaW, arenaH, defaultStyle)
	r.drawEntities(snap, originX+1, originY, defaultStyle)

	r.canvas.Show()
}

func (r *Renderer) fill(w, h int, style tcell.Style) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.canvas.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawStatusBar draws round, length and speed on the top row
func (r *Renderer) drawStatusBar(snap engine.Snapshot, paused bool, width int, defaultStyle tcell.Style) {
	text := fmt.Sprintf(" round %d  length %d  best %d  food %d  speed %dms  %s",
		snap.Round, len(snap.Snake), snap.Best, snap.FoodCount, snap.Interval.Milliseconds(), snap.Boundary)
	r.drawText(0, 0, width, text, defaultStyle.Foreground(RgbStatusBar))

	if paused {
		label := " PAUSED "
		x := width - len(label)
		if x < 0 {
			x = 0
		}
		r.drawText(x, 0, width, label, defaultStyle.Foreground(tcell.ColorBlack).Background(RgbPaused))
	}
}

func (r *Renderer) drawText(x, y, width int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= width {
			return
		}
		r.canvas.SetContent(x, y, ch, nil, style)
		x++
	}
}

// drawBorder draws a box around the arena interior starting at (x+1, y+1)
func (r *Renderer) drawBorder(x, y, innerW, innerH int, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBorder)
	right := x + innerW + 1
	bottom := y + innerH + 1

	for i := x + 1; i < right; i++ {
		r.canvas.SetContent(i, y, '─', nil, style)
		r.canvas.SetContent(i, bottom, '─', nil, style)
	}
	for j := y + 1; j < bottom; j++ {
		r.canvas.SetContent(x, j, '│', nil, style)
		r.canvas.SetContent(right, j, '│', nil, style)
	}
	r.canvas.SetContent(x, y, '┌', nil, style)
	r.canvas.SetContent(right, y, '┐', nil, style)
	r.canvas.SetContent(x, bottom, '└', nil, style)
	r.canvas.SetContent(right, bottom, '┘', nil, style)
}

// drawEntities paints drawables in snapshot order, later entries on top
func (r *Renderer) drawEntities(snap engine.Snapshot, originX, originY int, defaultStyle tcell.Style) {
	stale := make(map[[2]int32]bool, len(snap.Food))
	if r.lifespan > 0 {
		threshold := time.Duration(float64(r.lifespan) * staleFraction)
		for _, f := range snap.Food {
			if f.Remaining < threshold {
				stale[[2]int32{f.Position.X, f.Position.Y}] = true
			}
		}
	}

	for _, d := range snap.Drawables {
		color := AssetColor(d.Asset)
		if stale[[2]int32{d.Position.X, d.Position.Y}] && color == RgbFoodFresh {
			color = RgbFoodStale
		}
		style := defaultStyle.Foreground(color)
		glyph := Glyph(d.Size)

		sx := originX + int(d.Position.X)*CellWidth
		sy := originY + int(d.Position.Y)
		for i := 0; i < CellWidth; i++ {
			r.canvas.SetContent(sx+i, sy, glyph, nil, style)
		}
	}
}
