//go:build linux

package native

// Modifier masks for the evdev backend. There is no kernel-level modifier
// bit field; these are our own encoding, shared with the keycode tables in
// the parent package and with the held-modifier tracking in the reader
// goroutines.
const (
	MaskCtrl  uint32 = 1 << 0
	MaskShift uint32 = 1 << 1
	MaskAlt   uint32 = 1 << 2
	MaskSuper uint32 = 1 << 3
	MaskAltGr uint32 = 1 << 4
)
