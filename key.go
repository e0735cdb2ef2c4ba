package chord

// Key identifies a physical key by its logical meaning, independent of any
// platform virtual-key or scan code. Platform codes live in the build-tagged
// keycodes_*.go tables.
type Key int

const (
	KeyBackspace Key = iota
	KeyTab
	KeyEnter
	KeyCapsLock
	KeyEscape
	KeySpace
	KeyPageUp
	KeyPageDown
	KeyEnd
	KeyHome
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPrintScreen
	KeyInsert
	KeyClear
	KeyDelete
	KeyScrollLock
	KeyHelp
	KeyNumLock

	// Media
	KeyVolumeMute
	KeyVolumeDown
	KeyVolumeUp
	KeyMediaNextTrack
	KeyMediaPrevTrack
	KeyMediaStop
	KeyMediaPlayPause
	KeyLaunchMail

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Numpad
	KeyNumAdd
	KeyNumSub
	KeyNumMult
	KeyNumDiv
	KeyNumDec

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyEqual
	KeyMinus
	KeySingleQuote
	KeyComma
	KeyPeriod
	KeySemicolon
	KeySlash
	KeyOpenQuote
	KeyOpenBracket
	KeyBackslash
	KeyCloseBracket
)

// keyNames holds the canonical spelling of each key. Parse accepts these
// (case-insensitively) plus the punctuation aliases in parse.go, and
// Hotkey.String renders them back, so the two stay round-trippable.
var keyNames = map[Key]string{
	KeyBackspace:      "BACKSPACE",
	KeyTab:            "TAB",
	KeyEnter:          "ENTER",
	KeyCapsLock:       "CAPSLOCK",
	KeyEscape:         "ESCAPE",
	KeySpace:          "SPACE",
	KeyPageUp:         "PAGEUP",
	KeyPageDown:       "PAGEDOWN",
	KeyEnd:            "END",
	KeyHome:           "HOME",
	KeyLeft:           "LEFT",
	KeyRight:          "RIGHT",
	KeyUp:             "UP",
	KeyDown:           "DOWN",
	KeyPrintScreen:    "PRINTSCREEN",
	KeyInsert:         "INSERT",
	KeyClear:          "CLEAR",
	KeyDelete:         "DELETE",
	KeyScrollLock:     "SCROLLLOCK",
	KeyHelp:           "HELP",
	KeyNumLock:        "NUMLOCK",
	KeyVolumeMute:     "VOLUMEMUTE",
	KeyVolumeDown:     "VOLUMEDOWN",
	KeyVolumeUp:       "VOLUMEUP",
	KeyMediaNextTrack: "MEDIANEXTTRACK",
	KeyMediaPrevTrack: "MEDIAPREVIOUSTRACK",
	KeyMediaStop:      "MEDIASTOP",
	KeyMediaPlayPause: "MEDIAPLAYPAUSE",
	KeyLaunchMail:     "LAUNCHMAIL",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyNumAdd:         "NUMADD",
	KeyNumSub:         "NUMSUB",
	KeyNumMult:        "NUMMULT",
	KeyNumDiv:         "NUMDIV",
	KeyNumDec:         "NUMDEC",
	Key0:              "KEY_0",
	Key1:              "KEY_1",
	Key2:              "KEY_2",
	Key3:              "KEY_3",
	Key4:              "KEY_4",
	Key5:              "KEY_5",
	Key6:              "KEY_6",
	Key7:              "KEY_7",
	Key8:              "KEY_8",
	Key9:              "KEY_9",
	KeyA:              "A",
	KeyB:              "B",
	KeyC:              "C",
	KeyD:              "D",
	KeyE:              "E",
	KeyF:              "F",
	KeyG:              "G",
	KeyH:              "H",
	KeyI:              "I",
	KeyJ:              "J",
	KeyK:              "K",
	KeyL:              "L",
	KeyM:              "M",
	KeyN:              "N",
	KeyO:              "O",
	KeyP:              "P",
	KeyQ:              "Q",
	KeyR:              "R",
	KeyS:              "S",
	KeyT:              "T",
	KeyU:              "U",
	KeyV:              "V",
	KeyW:              "W",
	KeyX:              "X",
	KeyY:              "Y",
	KeyZ:              "Z",
	KeyEqual:          "EQUAL",
	KeyMinus:          "MINUS",
	KeySingleQuote:    "SINGLEQUOTE",
	KeyComma:          "COMMA",
	KeyPeriod:         "PERIOD",
	KeySemicolon:      "SEMICOLON",
	KeySlash:          "SLASH",
	KeyOpenQuote:      "OPENQUOTE",
	KeyOpenBracket:    "OPENBRACKET",
	KeyBackslash:      "BACKSLASH",
	KeyCloseBracket:   "CLOSEBRACKET",
}

var keysByName = make(map[string]Key, len(keyNames))

func init() {
	for k, name := range keyNames {
		keysByName[name] = k
	}
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "KEY_UNKNOWN"
}
