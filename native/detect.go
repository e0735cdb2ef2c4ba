package native

import (
	"os"
	"runtime"
)

// DisplayServer is the kind of display environment the process runs under.
// It is diagnostic only; backend selection is a build-time decision.
type DisplayServer int

const (
	DisplayServerUnknown DisplayServer = iota
	DisplayServerWindows
	DisplayServerMac
	DisplayServerX11
	DisplayServerWayland
)

func (ds DisplayServer) String() string {
	switch ds {
	case DisplayServerWindows:
		return "Windows"
	case DisplayServerMac:
		return "macOS"
	case DisplayServerX11:
		return "X11"
	case DisplayServerWayland:
		return "Wayland"
	default:
		return "Unknown"
	}
}

// DetectDisplayServer determines the display environment. Safe on any
// platform.
func DetectDisplayServer() DisplayServer {
	switch runtime.GOOS {
	case "windows":
		return DisplayServerWindows
	case "darwin":
		return DisplayServerMac
	}
	// Wayland first: compositors often keep DISPLAY set for XWayland.
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return DisplayServerWayland
	}
	if os.Getenv("DISPLAY") != "" {
		return DisplayServerX11
	}
	return DisplayServerUnknown
}
