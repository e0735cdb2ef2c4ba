package chord

import "fmt"

// ParseError reports a hotkey spec that could not be parsed. The caller must
// fix the input; nothing was registered.
type ParseError struct {
	Spec   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse hotkey %q: %s", e.Spec, e.Reason)
}

// AlreadyRegisteredError is returned when a manager registers a hotkey it
// already owns. The existing registration is untouched.
type AlreadyRegisteredError struct {
	Hotkey Hotkey
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("hotkey %s already registered", e.Hotkey)
}

// NotRegisteredError is returned when a manager unregisters a hotkey it does
// not own.
type NotRegisteredError struct {
	Hotkey Hotkey
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("hotkey %s is not registered", e.Hotkey)
}
