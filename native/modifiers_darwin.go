//go:build darwin

package native

import "golang.design/x/hotkey"

var platformModifiers = []hotkey.Modifier{
	hotkey.ModCtrl,
	hotkey.ModShift,
	hotkey.ModOption,
	hotkey.ModCmd,
}
