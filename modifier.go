package chord

// Modifier is an accessory key held together with base keys.
type Modifier int

const (
	ModAlt Modifier = iota
	ModAltGr
	ModCtrl
	ModShift
	ModSuper
)

var modifierNames = map[Modifier]string{
	ModAlt:   "ALT",
	ModAltGr: "ALTGR",
	ModCtrl:  "CTRL",
	ModShift: "SHIFT",
	ModSuper: "SUPER",
}

var modifiersByName = make(map[string]Modifier, len(modifierNames))

func init() {
	for m, name := range modifierNames {
		modifiersByName[name] = m
	}
}

func (m Modifier) String() string {
	if name, ok := modifierNames[m]; ok {
		return name
	}
	return "MOD_UNKNOWN"
}
