//go:build linux

package chord

import "chord/native"

// Kernel input-event codes (linux/input-event-codes.h), consumed by the
// evdev backend. Modifier masks are the backend's own encoding since evdev
// reports modifiers as ordinary keys.
var modifierCodes = map[Modifier]uint32{
	ModAlt:   native.MaskAlt,
	ModAltGr: native.MaskAltGr,
	ModCtrl:  native.MaskCtrl,
	ModShift: native.MaskShift,
	ModSuper: native.MaskSuper,
}

var keyCodes = map[Key]uint32{
	KeyBackspace:      14,
	KeyTab:            15,
	KeyEnter:          28,
	KeyCapsLock:       58,
	KeyEscape:         1,
	KeySpace:          57,
	KeyPageUp:         104,
	KeyPageDown:       109,
	KeyEnd:            107,
	KeyHome:           102,
	KeyLeft:           105,
	KeyRight:          106,
	KeyUp:             103,
	KeyDown:           108,
	KeyPrintScreen:    99, // KEY_SYSRQ
	KeyInsert:         110,
	KeyDelete:         111,
	KeyScrollLock:     70,
	KeyHelp:           138,
	KeyNumLock:        69,
	KeyVolumeMute:     113,
	KeyVolumeDown:     114,
	KeyVolumeUp:       115,
	KeyMediaNextTrack: 163,
	KeyMediaPrevTrack: 165,
	KeyMediaStop:      166,
	KeyMediaPlayPause: 164,
	KeyLaunchMail:     155,
	KeyF1:             59,
	KeyF2:             60,
	KeyF3:             61,
	KeyF4:             62,
	KeyF5:             63,
	KeyF6:             64,
	KeyF7:             65,
	KeyF8:             66,
	KeyF9:             67,
	KeyF10:            68,
	KeyF11:            87,
	KeyF12:            88,
	KeyNumAdd:         78,
	KeyNumSub:         74,
	KeyNumMult:        55,
	KeyNumDiv:         98,
	KeyNumDec:         83,
	Key0:              11,
	Key1:              2,
	Key2:              3,
	Key3:              4,
	Key4:              5,
	Key5:              6,
	Key6:              7,
	Key7:              8,
	Key8:              9,
	Key9:              10,
	KeyA:              30,
	KeyB:              48,
	KeyC:              46,
	KeyD:              32,
	KeyE:              18,
	KeyF:              33,
	KeyG:              34,
	KeyH:              35,
	KeyI:              23,
	KeyJ:              36,
	KeyK:              37,
	KeyL:              38,
	KeyM:              50,
	KeyN:              49,
	KeyO:              24,
	KeyP:              25,
	KeyQ:              16,
	KeyR:              19,
	KeyS:              31,
	KeyT:              20,
	KeyU:              22,
	KeyV:              47,
	KeyW:              17,
	KeyX:              45,
	KeyY:              21,
	KeyZ:              44,
	KeyEqual:          13,
	KeyMinus:          12,
	KeySingleQuote:    40, // KEY_APOSTROPHE
	KeyComma:          51,
	KeyPeriod:         52, // KEY_DOT
	KeySemicolon:      39,
	KeySlash:          53,
	KeyOpenQuote:      41, // KEY_GRAVE
	KeyOpenBracket:    26, // KEY_LEFTBRACE
	KeyBackslash:      43,
	KeyCloseBracket:   27, // KEY_RIGHTBRACE
}
