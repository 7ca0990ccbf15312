package input

import (
	"sort"
	"strings"

	"github.com/lixenwraith/vi-snake/core"
)

// Action is what a key press asks for
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionUp
	ActionRight
	ActionDown
	ActionPause
	ActionMute
	ActionQuit
)

var actionNames = map[string]Action{
	"none":  ActionNone,
	"left":  ActionLeft,
	"up":    ActionUp,
	"right": ActionRight,
	"down":  ActionDown,
	"pause": ActionPause,
	"mute":  ActionMute,
	"quit":  ActionQuit,
}

// ActionByName resolves a config action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	a, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// ActionNames returns all known action names sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionNames))
	for n := range actionNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (a Action) String() string {
	for n, v := range actionNames {
		if v == a {
			return n
		}
	}
	return "unknown"
}

// Direction maps steering actions to a heading
func (a Action) Direction() (core.Direction, bool) {
	switch a {
	case ActionLeft:
		return core.DirLeft, true
	case ActionUp:
		return core.DirUp, true
	case ActionRight:
		return core.DirRight, true
	case ActionDown:
		return core.DirDown, true
	}
	return 0, false
}
