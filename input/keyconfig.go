package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward to write as a bare string
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName indexes tcell's key names, lowercased
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses the [keys] config section into a sparse override KeyTable
// Each entry maps an action name to the key names bound to it; "none" unbinds
func LoadKeyConfig(keys map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}

	for actionName, names := range keys {
		action, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("[keys] unknown action: %q (known: %s)",
				actionName, strings.Join(ActionNames(), ", "))
		}

		for _, name := range names {
			if r, err := resolveRune(name); err == nil {
				kt.Runes[r] = action
				continue
			}
			k, ok := keysByName[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("[keys] %s: unknown key name: %q", actionName, name)
			}
			kt.SpecialKeys[k] = action
		}
	}

	return kt, nil
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// MergeKeyTable returns a new KeyTable with base values overridden
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.SpecialKeys {
		if v == ActionNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}

	return result
}

// KeyTableFromConfig merges the [keys] section over the defaults
func KeyTableFromConfig(keys map[string][]string) (*KeyTable, error) {
	if len(keys) == 0 {
		return DefaultKeyTable(), nil
	}
	override, err := LoadKeyConfig(keys)
	if err != nil {
		return nil, err
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}
