package native

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestListener(t *testing.T) (*Listener, *Fake) {
	t.Helper()
	fake := NewFake()
	l := NewListener(fake, zerolog.Nop())
	t.Cleanup(l.Close)
	return l, fake
}

func TestListenerRegisterAndDispatch(t *testing.T) {
	l, fake := newTestListener(t)

	fired := make(chan struct{}, 8)
	if err := l.Register(0x2, 0x50, func() { fired <- struct{}{} }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if !fake.Installed() {
		t.Fatal("event source not installed on first register")
	}

	if !fake.Fire(0x2, 0x50) {
		t.Fatal("no live registration to fire")
	}
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("handler never ran")
	}
}

func TestListenerDuplicateCode(t *testing.T) {
	l, fake := newTestListener(t)

	if err := l.Register(0x2, 0x50, func() {}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := l.Register(0x2, 0x50, func() {}); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("duplicate register error = %v, want ErrAlreadyRegistered", err)
	}
	if fake.RegisterCalls() != 1 {
		t.Fatal("duplicate register reached the backend")
	}
}

func TestListenerUnregister(t *testing.T) {
	l, fake := newTestListener(t)

	if err := l.Register(0x2, 0x50, func() {}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := l.Unregister(0x2, 0x50); err != nil {
		t.Fatalf("unregister: %v", err)
	}
	if fake.Active() != 0 {
		t.Fatal("backend registration not released")
	}
	if err := l.Unregister(0x2, 0x50); !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("second unregister error = %v, want ErrNotRegistered", err)
	}
	// The code is free again after release.
	if err := l.Register(0x2, 0x50, func() {}); err != nil {
		t.Fatalf("re-register: %v", err)
	}
}

func TestListenerFailedUnregisterKeepsEntry(t *testing.T) {
	l, fake := newTestListener(t)

	if err := l.Register(0x2, 0x50, func() {}); err != nil {
		t.Fatalf("register: %v", err)
	}
	cause := errors.New("native release refused")
	fake.UnregisterErr = cause
	err := l.Unregister(0x2, 0x50)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("unregister error = %v, want *APIError", err)
	}
	if apiErr.Op != "unregister" || !errors.Is(err, cause) {
		t.Fatalf("unregister error = %v, want unregister op wrapping the backend failure", err)
	}
	if len(l.Registered()) != 1 {
		t.Fatal("entry dropped even though the backend still holds it")
	}
	fake.UnregisterErr = nil
	if err := l.Unregister(0x2, 0x50); err != nil {
		t.Fatalf("retry unregister: %v", err)
	}
}

func TestListenerRegisterFailure(t *testing.T) {
	l, fake := newTestListener(t)

	cause := errors.New("native register refused")
	fake.RegisterErr = cause
	err := l.Register(0x2, 0x50, func() {})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("register error = %v, want *APIError", err)
	}
	if apiErr.Op != "register" || !errors.Is(err, cause) {
		t.Fatalf("register error = %v, want register op wrapping the backend failure", err)
	}
	if len(l.Registered()) != 0 {
		t.Fatal("entry stored for a failed backend register")
	}
	// The code was never taken, so a retry is a fresh registration.
	fake.RegisterErr = nil
	if err := l.Register(0x2, 0x50, func() {}); err != nil {
		t.Fatalf("retry register: %v", err)
	}
}

func TestListenerClose(t *testing.T) {
	fake := NewFake()
	l := NewListener(fake, zerolog.Nop())

	if err := l.Register(0x2, 0x50, func() {}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := l.Register(0x4, 0x51, func() {}); err != nil {
		t.Fatalf("register: %v", err)
	}

	l.Close()
	if fake.Active() != 0 {
		t.Fatal("close left backend registrations behind")
	}
	if fake.Installed() {
		t.Fatal("close left the event source installed")
	}
	if err := l.Register(0x2, 0x50, func() {}); !errors.Is(err, ErrClosed) {
		t.Fatalf("register after close = %v, want ErrClosed", err)
	}
	if err := l.Unregister(0x2, 0x50); !errors.Is(err, ErrClosed) {
		t.Fatalf("unregister after close = %v, want ErrClosed", err)
	}
	// A second close is a no-op.
	l.Close()
}

func TestListenerInstallFailureRemembered(t *testing.T) {
	l, fake := newTestListener(t)

	installErr := errors.New("no display connection")
	fake.InstallErr = installErr
	if err := l.Register(0x2, 0x50, func() {}); !errors.Is(err, installErr) {
		t.Fatalf("register error = %v, want wrapped install failure", err)
	}

	// Clearing the fault must not help: the outcome was recorded.
	fake.InstallErr = nil
	if err := l.Register(0x2, 0x50, func() {}); !errors.Is(err, installErr) {
		t.Fatalf("second register error = %v, want remembered install failure", err)
	}
	if fake.RegisterCalls() != 0 {
		t.Fatal("backend register reached despite install failure")
	}
}
