//go:build !windows && !linux && !darwin

package native

import "fmt"

type unsupportedBackend struct{}

// NewBackend returns the default backend for this platform.
func NewBackend() Backend {
	return unsupportedBackend{}
}

func (unsupportedBackend) Install(chan<- int) error {
	return fmt.Errorf("global hotkeys are not supported on this platform")
}

func (unsupportedBackend) Uninstall() error { return nil }

func (unsupportedBackend) Register(int, uint32, uint32) (Handle, error) {
	return nil, fmt.Errorf("global hotkeys are not supported on this platform")
}

func (unsupportedBackend) Unregister(Handle) error { return nil }

// Diagnose reports whether a hotkey backend can work in this environment.
func Diagnose() (string, error) {
	return "", fmt.Errorf("global hotkeys are not supported on this platform")
}
