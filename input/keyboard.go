package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// Keyboard turns terminal key events into a polled steering source
// HandleKey runs on the terminal event goroutine, Poll on the tick goroutine
type Keyboard struct {
	table *KeyTable

	mu         sync.Mutex
	pending    core.Direction
	hasPending bool
}

// NewKeyboard creates a keyboard over the given bindings, defaults when nil
func NewKeyboard(table *KeyTable) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Keyboard{table: table}
}

// HandleKey resolves a key event and records steering requests
// The action is returned so the caller can act on pause, mute and quit
func (kb *Keyboard) HandleKey(key tcell.Key, r rune) Action {
	action := kb.table.Resolve(key, r)
	if dir, ok := action.Direction(); ok {
		kb.mu.Lock()
		kb.pending = dir
		kb.hasPending = true
		kb.mu.Unlock()
	}
	return action
}

// Poll returns the most recent requested direction since the last poll and clears it
func (kb *Keyboard) Poll() (core.Direction, bool) {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	if !kb.hasPending {
		return 0, false
	}
	kb.hasPending = false
	return kb.pending, true
}
