package chord

import (
	"runtime"
	"strconv"
	"strings"
)

// shiftedKeys maps symbol tokens that require Shift on a US layout to their
// base key. Resolving one of these implies Shift even when the spec never
// spells it out.
var shiftedKeys = map[string]Key{
	")":    Key0,
	"!":    Key1,
	"@":    Key2,
	"#":    Key3,
	"$":    Key4,
	"%":    Key5,
	"^":    Key6,
	"&":    Key7,
	"*":    Key8,
	"(":    Key9,
	":":    KeySemicolon,
	"<":    KeyComma,
	">":    KeyPeriod,
	"_":    KeyMinus,
	"?":    KeySlash,
	"~":    KeyOpenQuote,
	"{":    KeyOpenBracket,
	"|":    KeyBackslash,
	"}":    KeyCloseBracket,
	"PLUS": KeyEqual,
	`"`:    KeySingleQuote,
}

// keyAliases maps plain punctuation and alternate spellings to keys without
// implying Shift.
var keyAliases = map[string]Key{
	"RETURN": KeyEnter,
	"=":      KeyEqual,
	"-":      KeyMinus,
	"'":      KeySingleQuote,
	",":      KeyComma,
	".":      KeyPeriod,
	";":      KeySemicolon,
	"/":      KeySlash,
	"`":      KeyOpenQuote,
	"[":      KeyOpenBracket,
	`\`:      KeyBackslash,
	"]":      KeyCloseBracket,
}

// Parse turns a human-written hotkey spec like "CTRL+SHIFT+P" into a Hotkey.
// Tokens are separated by "+", matched case-insensitively, and surrounding
// whitespace is ignored. Bare digits resolve to the corresponding digit key,
// and shifted symbols ("!", "@", ...) resolve to their base key while adding
// Shift to the modifier set. Failures return a *ParseError.
func Parse(spec string) (Hotkey, error) {
	var (
		mods    []Modifier
		keys    []Key
		shifted bool
	)

	addMod := func(m Modifier) {
		for _, have := range mods {
			if have == m {
				return
			}
		}
		mods = append(mods, m)
	}
	addKey := func(k Key, raw string) *ParseError {
		for _, have := range keys {
			if have == k {
				return &ParseError{Spec: spec, Reason: "duplicated key " + raw}
			}
		}
		keys = append(keys, k)
		return nil
	}

	for _, raw := range strings.Split(strings.ToUpper(spec), "+") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}

		switch token {
		case "COMMAND", "CMD":
			addMod(ModSuper)
			continue
		case "CONTROL":
			addMod(ModCtrl)
			continue
		case "OPTION":
			if runtime.GOOS == "darwin" {
				addMod(ModAlt)
				continue
			}
		case "COMMANDORCONTROL", "COMMANDORCTRL", "CMDORCTRL", "CMDORCONTROL":
			if runtime.GOOS == "darwin" {
				addMod(ModSuper)
			} else {
				addMod(ModCtrl)
			}
			continue
		}
		if m, ok := modifiersByName[token]; ok {
			addMod(m)
			continue
		}

		if _, err := strconv.ParseUint(token, 10, 64); err == nil {
			token = "KEY_" + token
		}

		if k, ok := shiftedKeys[token]; ok {
			shifted = true
			if perr := addKey(k, raw); perr != nil {
				return Hotkey{}, perr
			}
			continue
		}
		if k, ok := keyAliases[token]; ok {
			if perr := addKey(k, raw); perr != nil {
				return Hotkey{}, perr
			}
			continue
		}
		if k, ok := keysByName[token]; ok {
			if perr := addKey(k, raw); perr != nil {
				return Hotkey{}, perr
			}
			continue
		}
		return Hotkey{}, &ParseError{Spec: spec, Reason: "unknown key " + token}
	}

	if shifted {
		addMod(ModShift)
	}
	if len(keys) == 0 {
		return Hotkey{}, &ParseError{Spec: spec, Reason: "hotkey has no key specified"}
	}
	return Hotkey{Mods: mods, Keys: keys}, nil
}
