package chord

import (
	"fmt"
	"sort"
	"strings"
)

// Hotkey is a set of modifiers plus one or more base keys, recognized
// process-wide regardless of input focus. Values are immutable once built;
// construct them with Parse or directly and never mutate the slices after.
//
// Two hotkeys are equal when they hold the same modifier set (order and
// duplicates ignored) and the same key list (order significant). Order only
// affects how String renders the value.
type Hotkey struct {
	Mods []Modifier
	Keys []Key
}

// Equal reports whether h and other denote the same hotkey.
func (h Hotkey) Equal(other Hotkey) bool {
	return h.id() == other.id()
}

// id returns the canonical identity used for map lookups: the sorted
// modifier set followed by the ordered key list.
func (h Hotkey) id() string {
	mods := make([]string, 0, len(h.Mods))
	for _, m := range h.Mods {
		name := m.String()
		seen := false
		for _, have := range mods {
			if have == name {
				seen = true
				break
			}
		}
		if !seen {
			mods = append(mods, name)
		}
	}
	sort.Strings(mods)

	var b strings.Builder
	for _, m := range mods {
		b.WriteString(m)
		b.WriteByte('+')
	}
	b.WriteByte('/')
	for _, k := range h.Keys {
		b.WriteString(k.String())
		b.WriteByte('+')
	}
	return b.String()
}

// ModifierFlags folds the modifier set into the platform's bit field.
func (h Hotkey) ModifierFlags() uint32 {
	var flags uint32
	for _, m := range h.Mods {
		flags |= modifierCodes[m]
	}
	return flags
}

// KeyFlags folds the key list into the platform's code encoding.
func (h Hotkey) KeyFlags() uint32 {
	var flags uint32
	for _, k := range h.Keys {
		flags |= keyCodes[k]
	}
	return flags
}

// encode is KeyFlags/ModifierFlags with platform-support checking: a key or
// modifier with no code on this platform fails here, before anything reaches
// the native layer.
func (h Hotkey) encode() (mods, key uint32, err error) {
	for _, m := range h.Mods {
		code, ok := modifierCodes[m]
		if !ok {
			return 0, 0, fmt.Errorf("modifier %s is not supported on this platform", m)
		}
		mods |= code
	}
	for _, k := range h.Keys {
		code, ok := keyCodes[k]
		if !ok {
			return 0, 0, fmt.Errorf("key %s is not supported on this platform", k)
		}
		key |= code
	}
	return mods, key, nil
}

// String renders modifiers then keys joined by "+", in the order they were
// given. The result parses back to an equal Hotkey.
func (h Hotkey) String() string {
	parts := make([]string, 0, len(h.Mods)+len(h.Keys))
	for _, m := range h.Mods {
		parts = append(parts, m.String())
	}
	for _, k := range h.Keys {
		parts = append(parts, k.String())
	}
	return strings.Join(parts, "+")
}
