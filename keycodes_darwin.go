//go:build darwin

package chord

// Carbon encoding: event-modifier masks for modifiers, Carbon virtual key
// codes for keys. Keys with no Carbon code (numlock, media transport, mail)
// are absent and fail encode() with an unsupported-key error.
var modifierCodes = map[Modifier]uint32{
	ModAlt:   2048, // optionKey
	ModAltGr: 16384,
	ModCtrl:  4096, // controlKey
	ModShift: 512,  // shiftKey
	ModSuper: 256,  // cmdKey
}

var keyCodes = map[Key]uint32{
	KeyBackspace:   0x33,
	KeyTab:         0x30,
	KeyEnter:       0x24,
	KeyCapsLock:    0x39,
	KeyEscape:      0x35,
	KeySpace:       0x31,
	KeyPageUp:      0x74,
	KeyPageDown:    0x79,
	KeyEnd:         0x77,
	KeyHome:        0x73,
	KeyLeft:        0x7B,
	KeyRight:       0x7C,
	KeyUp:          0x7E,
	KeyDown:        0x7D,
	KeyClear:       0x47,
	KeyDelete:      0x75,
	KeyScrollLock:  0x6B, // F14
	KeyHelp:        0x72,
	KeyVolumeMute:  0x4A,
	KeyVolumeDown:  0x49,
	KeyVolumeUp:    0x48,
	KeyF1:          122,
	KeyF2:          120,
	KeyF3:          99,
	KeyF4:          118,
	KeyF5:          96,
	KeyF6:          97,
	KeyF7:          98,
	KeyF8:          100,
	KeyF9:          101,
	KeyF10:         109,
	KeyF11:         103,
	KeyF12:         111,
	KeyNumAdd:      0x45,
	KeyNumSub:      0x4E,
	KeyNumMult:     0x43,
	KeyNumDiv:      0x4B,
	KeyNumDec:      0x41,
	Key0:           0x1D,
	Key1:           0x12,
	Key2:           0x13,
	Key3:           0x14,
	Key4:           0x15,
	Key5:           0x17,
	Key6:           0x16,
	Key7:           0x1A,
	Key8:           0x1C,
	Key9:           0x19,
	KeyA:           0x00,
	KeyB:           0x0B,
	KeyC:           0x08,
	KeyD:           0x02,
	KeyE:           0x0E,
	KeyF:           0x03,
	KeyG:           0x05,
	KeyH:           0x04,
	KeyI:           0x22,
	KeyJ:           0x26,
	KeyK:           0x28,
	KeyL:           0x25,
	KeyM:           0x2E,
	KeyN:           0x2D,
	KeyO:           0x1F,
	KeyP:           0x23,
	KeyQ:           0x0C,
	KeyR:           0x0F,
	KeyS:           0x01,
	KeyT:           0x11,
	KeyU:           0x20,
	KeyV:           0x09,
	KeyW:           0x0D,
	KeyX:           0x07,
	KeyY:           0x10,
	KeyZ:           0x06,
	KeyEqual:       0x18,
	KeyMinus:       0x1B,
	KeySingleQuote: 0x27,
	KeyComma:       0x2B,
	KeyPeriod:      0x2F,
	KeySemicolon:   41,
	KeySlash:       44,
	KeyOpenQuote:   50,
	KeyOpenBracket: 33,
	KeyBackslash:   42,
	KeyCloseBracket: 30,
}
