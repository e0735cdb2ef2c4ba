// Package native serializes all access to the platform hotkey facility
// through one dedicated goroutine. The platform APIs involved are not safe
// to call from arbitrary threads; on macOS the Carbon event handler must be
// installed and serviced from a single loop, and on Windows RegisterHotKey
// binds registrations to the calling thread's message queue. Everything
// above this package talks to a Listener, never to a Backend directly.
package native

import (
	"errors"
	"fmt"
)

// Handle identifies one live native registration inside a Backend.
type Handle any

// Code is the platform encoding of a hotkey: OR-folded modifier bits plus
// OR-folded key codes.
type Code struct {
	Mods uint32
	Key  uint32
}

// Backend is the OS-specific hotkey facility. Implementations are not
// required to be goroutine safe; the Listener guarantees all calls happen on
// its worker goroutine. Install is called once, before any Register, with
// the channel fired native ids must be delivered on.
type Backend interface {
	Install(events chan<- int) error
	Uninstall() error
	Register(id int, mods, key uint32) (Handle, error)
	Unregister(h Handle) error
}

// APIError reports a failed call into the platform hotkey facility. The
// listener wraps every backend register and unregister failure in one, so
// callers can tell which native operation refused and unwrap the cause.
// Failures are surfaced verbatim and never retried.
type APIError struct {
	Op  string
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("native %s failed: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// ErrClosed is returned for any call made after the Listener's worker has
// been told to exit. The Listener cannot be reused once closed.
var ErrClosed = errors.New("hotkey listener closed")

// ErrNotRegistered is returned when an unregister request names a code the
// backend never accepted (or already released).
var ErrNotRegistered = errors.New("hotkey not registered with backend")

// ErrAlreadyRegistered is returned when a register request repeats a code
// that is still live. The registry layer normally prevents this.
var ErrAlreadyRegistered = errors.New("hotkey already registered with backend")
