//go:build windows || darwin

package native

import (
	"fmt"

	"golang.design/x/hotkey"
)

// xBackend adapts golang.design/x/hotkey to the Backend contract. The
// library delivers keydown events on its own goroutines (push model); a
// forwarder per registration translates them into native-id events for the
// listener, which does the actual handler dispatch.
type xBackend struct {
	events chan<- int
}

// NewBackend returns the default backend for this platform.
func NewBackend() Backend {
	return &xBackend{}
}

func (b *xBackend) Install(events chan<- int) error {
	b.events = events
	return nil
}

func (b *xBackend) Uninstall() error {
	return nil
}

type xHandle struct {
	hk   *hotkey.Hotkey
	stop chan struct{}
}

func (b *xBackend) Register(id int, mods, key uint32) (Handle, error) {
	xm, err := splitModifiers(mods)
	if err != nil {
		return nil, err
	}
	hk := hotkey.New(xm, hotkey.Key(key))
	if err := hk.Register(); err != nil {
		return nil, err
	}

	h := &xHandle{hk: hk, stop: make(chan struct{})}
	events := b.events
	go func() {
		for {
			select {
			case <-h.stop:
				return
			case <-hk.Keydown():
				select {
				case events <- id:
				case <-h.stop:
					return
				}
			}
		}
	}()
	return h, nil
}

func (b *xBackend) Unregister(h Handle) error {
	xh := h.(*xHandle)
	close(xh.stop)
	return xh.hk.Unregister()
}

// Diagnose reports whether a hotkey backend can work in this environment.
func Diagnose() (string, error) {
	return "hotkey support available via system api", nil
}

func splitModifiers(flags uint32) ([]hotkey.Modifier, error) {
	var xm []hotkey.Modifier
	rest := flags
	for _, m := range platformModifiers {
		if rest&uint32(m) == uint32(m) && uint32(m) != 0 {
			xm = append(xm, m)
			rest &^= uint32(m)
		}
	}
	if rest != 0 {
		return nil, fmt.Errorf("unsupported modifier bits %#x", rest)
	}
	return xm, nil
}
