//go:build windows

package chord

// Win32 RegisterHotKey encoding: MOD_* bits for modifiers, virtual-key codes
// for keys. AltGr has no MOD_* bit; the right-Alt virtual key stands in for
// it, which only the native layer can reject if unsupported.
var modifierCodes = map[Modifier]uint32{
	ModAlt:   0x0001, // MOD_ALT
	ModAltGr: 0x00A5, // VK_RMENU
	ModCtrl:  0x0002, // MOD_CONTROL
	ModShift: 0x0004, // MOD_SHIFT
	ModSuper: 0x0008, // MOD_WIN
}

var keyCodes = map[Key]uint32{
	KeyBackspace:      0x08, // VK_BACK
	KeyTab:            0x09,
	KeyEnter:          0x0D, // VK_RETURN
	KeyCapsLock:       0x14,
	KeyEscape:         0x1B,
	KeySpace:          0x20,
	KeyPageUp:         0x21, // VK_PRIOR
	KeyPageDown:       0x22, // VK_NEXT
	KeyEnd:            0x23,
	KeyHome:           0x24,
	KeyLeft:           0x25,
	KeyRight:          0x27,
	KeyUp:             0x26,
	KeyDown:           0x28,
	KeyPrintScreen:    0x2C, // VK_SNAPSHOT
	KeyInsert:         0x2D,
	KeyClear:          0x0C,
	KeyDelete:         0x2E,
	KeyScrollLock:     0x91,
	KeyHelp:           0x2F,
	KeyNumLock:        0x90,
	KeyVolumeMute:     0xAD,
	KeyVolumeDown:     0xAE,
	KeyVolumeUp:       0xAF,
	KeyMediaNextTrack: 0xB0,
	KeyMediaPrevTrack: 0xB1,
	KeyMediaStop:      0xB2,
	KeyMediaPlayPause: 0xB3,
	KeyLaunchMail:     0xB4,
	KeyF1:             0x70,
	KeyF2:             0x71,
	KeyF3:             0x72,
	KeyF4:             0x73,
	KeyF5:             0x74,
	KeyF6:             0x75,
	KeyF7:             0x76,
	KeyF8:             0x77,
	KeyF9:             0x78,
	KeyF10:            0x79,
	KeyF11:            0x7A,
	KeyF12:            0x7B,
	KeyNumAdd:         0x6B,
	KeyNumSub:         0x6D,
	KeyNumMult:        0x6A,
	KeyNumDiv:         0x6F,
	KeyNumDec:         0x6E,
	Key0:              '0',
	Key1:              '1',
	Key2:              '2',
	Key3:              '3',
	Key4:              '4',
	Key5:              '5',
	Key6:              '6',
	Key7:              '7',
	Key8:              '8',
	Key9:              '9',
	KeyA:              'A',
	KeyB:              'B',
	KeyC:              'C',
	KeyD:              'D',
	KeyE:              'E',
	KeyF:              'F',
	KeyG:              'G',
	KeyH:              'H',
	KeyI:              'I',
	KeyJ:              'J',
	KeyK:              'K',
	KeyL:              'L',
	KeyM:              'M',
	KeyN:              'N',
	KeyO:              'O',
	KeyP:              'P',
	KeyQ:              'Q',
	KeyR:              'R',
	KeyS:              'S',
	KeyT:              'T',
	KeyU:              'U',
	KeyV:              'V',
	KeyW:              'W',
	KeyX:              'X',
	KeyY:              'Y',
	KeyZ:              'Z',
	KeyEqual:          0xBB, // VK_OEM_PLUS
	KeyMinus:          0xBD, // VK_OEM_MINUS
	KeySingleQuote:    0xDE, // VK_OEM_7
	KeyComma:          0xBC,
	KeyPeriod:         0xBE,
	KeySemicolon:      0xBA, // VK_OEM_1
	KeySlash:          0xBF, // VK_OEM_2
	KeyOpenQuote:      0xC0, // VK_OEM_3
	KeyOpenBracket:    0xDB, // VK_OEM_4
	KeyBackslash:      0xDC, // VK_OEM_5
	KeyCloseBracket:   0xDD, // VK_OEM_6
}
