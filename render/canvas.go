package render

import "github.com/gdamore/tcell/v2"

// Canvas is the drawing surface the renderer needs, satisfied by tcell.Screen
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}
