package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings: arrows, WASD and hjkl steer
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:  ActionLeft,
			tcell.KeyUp:    ActionUp,
			tcell.KeyRight: ActionRight,
			tcell.KeyDown:  ActionDown,
			tcell.KeyEsc:   ActionQuit,
			tcell.KeyCtrlC: ActionQuit,
			tcell.KeyCtrlQ: ActionQuit,
		},
		Runes: map[rune]Action{
			'a': ActionLeft,
			'w': ActionUp,
			'd': ActionRight,
			's': ActionDown,
			'h': ActionLeft,
			'k': ActionUp,
			'l': ActionRight,
			'j': ActionDown,
			'p': ActionPause,
			' ': ActionPause,
			'm': ActionMute,
			'q': ActionQuit,
		},
	}
}

// Resolve returns the action bound to a key event
// Letters fall back to their lowercase binding so Caps Lock does not break steering
func (kt *KeyTable) Resolve(key tcell.Key, r rune) Action {
	if key != tcell.KeyRune {
		return kt.SpecialKeys[key]
	}
	if a, ok := kt.Runes[r]; ok {
		return a
	}
	return kt.Runes[unicode.ToLower(r)]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}
