//go:build !windows && !linux && !darwin

package chord

// No native hotkey facility on this platform; every encode() fails.
var modifierCodes = map[Modifier]uint32{}

var keyCodes = map[Key]uint32{}
