//go:build windows

package native

import "golang.design/x/hotkey"

var platformModifiers = []hotkey.Modifier{
	hotkey.ModCtrl,
	hotkey.ModShift,
	hotkey.ModAlt,
	hotkey.ModWin,
}
