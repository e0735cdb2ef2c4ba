package chord

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"chord/native"
)

func newTestRegistry(t *testing.T) (*Registry, *native.Fake) {
	t.Helper()
	fake := native.NewFake()
	r := NewRegistry(native.NewListener(fake, zerolog.Nop()), zerolog.Nop())
	t.Cleanup(r.Close)
	return r, fake
}

func fire(t *testing.T, fake *native.Fake, h Hotkey) {
	t.Helper()
	mods, key, err := h.encode()
	if err != nil {
		t.Fatalf("encode %s: %v", h, err)
	}
	if !fake.Fire(mods, key) {
		t.Fatalf("no live registration for %s", h)
	}
}

func waitFired(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func notFired(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
		t.Fatalf("%s fired unexpectedly", what)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSharedHotkey(t *testing.T) {
	r, fake := newTestRegistry(t)
	h := mustParse(t, "CTRL+P")

	m1 := r.NewManager()
	m2 := r.NewManager()

	fired1 := make(chan struct{}, 8)
	fired2 := make(chan struct{}, 8)
	if err := m1.Register(h, HandlerFunc(func() { fired1 <- struct{}{} })); err != nil {
		t.Fatalf("m1 register: %v", err)
	}
	if err := m2.Register(h, HandlerFunc(func() { fired2 <- struct{}{} })); err != nil {
		t.Fatalf("m2 register: %v", err)
	}

	// One native registration backs both managers.
	if got := fake.RegisterCalls(); got != 1 {
		t.Fatalf("native register calls = %d, want 1", got)
	}

	fire(t, fake, h)
	waitFired(t, fired1, "m1 handler")
	waitFired(t, fired2, "m2 handler")

	// The first unregister only drops one owner; the native registration
	// stays and the other manager keeps receiving triggers.
	if err := m1.Unregister(h); err != nil {
		t.Fatalf("m1 unregister: %v", err)
	}
	if fake.Active() != 1 {
		t.Fatal("native registration released while m2 still owns the hotkey")
	}
	fire(t, fake, h)
	waitFired(t, fired2, "m2 handler after m1 left")
	notFired(t, fired1, "m1 handler after unregister")

	if err := m2.Unregister(h); err != nil {
		t.Fatalf("m2 unregister: %v", err)
	}
	if fake.Active() != 0 {
		t.Fatal("native registration not released after last owner left")
	}
	if r.IsBound(h) {
		t.Fatal("IsBound reports a released hotkey")
	}
}

func TestIsBound(t *testing.T) {
	r, _ := newTestRegistry(t)
	h := mustParse(t, "CTRL+SHIFT+A")

	if r.IsBound(h) {
		t.Fatal("IsBound true before any registration")
	}
	m := r.NewManager()
	if err := m.Register(h, HandlerFunc(func() {})); err != nil {
		t.Fatalf("register: %v", err)
	}
	if !r.IsBound(h) {
		t.Fatal("IsBound false after registration")
	}
	// Equality, not identity: an equivalent spelling matches too.
	if !r.IsBound(mustParse(t, "SHIFT+CTRL+A")) {
		t.Fatal("IsBound must match by value, not spelling")
	}
}

func TestConcurrentRegistration(t *testing.T) {
	r, fake := newTestRegistry(t)
	h := mustParse(t, "CTRL+B")

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = r.NewManager().Register(h, HandlerFunc(func() {}))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("manager %d register: %v", i, err)
		}
	}
	if got := fake.RegisterCalls(); got != 1 {
		t.Fatalf("native register calls = %d, want 1", got)
	}
}

func TestInstallFailure(t *testing.T) {
	r, fake := newTestRegistry(t)
	installErr := errors.New("no display connection")
	fake.InstallErr = installErr
	h := mustParse(t, "CTRL+C")

	m := r.NewManager()
	if err := m.Register(h, HandlerFunc(func() {})); !errors.Is(err, installErr) {
		t.Fatalf("register error = %v, want wrapped install failure", err)
	}
	if m.IsRegistered(h) {
		t.Fatal("manager recorded a failed registration")
	}

	// The failure is remembered; later attempts report it without retrying.
	if err := m.Register(h, HandlerFunc(func() {})); err == nil {
		t.Fatal("second register succeeded despite remembered install failure")
	}
	if fake.RegisterCalls() != 0 {
		t.Fatal("backend register reached despite install failure")
	}
}

func TestFailedNativeUnregisterKeepsState(t *testing.T) {
	r, fake := newTestRegistry(t)
	h := mustParse(t, "ALT+F4")

	m := r.NewManager()
	fired := make(chan struct{}, 8)
	if err := m.Register(h, HandlerFunc(func() { fired <- struct{}{} })); err != nil {
		t.Fatalf("register: %v", err)
	}

	fake.UnregisterErr = errors.New("native release refused")
	err := m.Unregister(h)
	var apiErr *native.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("unregister error = %v, want *native.APIError from the failed native call", err)
	}

	// The hotkey is still live natively, so every layer must still own it.
	if !m.IsRegistered(h) {
		t.Fatal("manager dropped a hotkey that is still bound natively")
	}
	if !r.IsBound(h) {
		t.Fatal("registry dropped a hotkey that is still bound natively")
	}
	fire(t, fake, h)
	waitFired(t, fired, "handler after failed unregister")

	fake.UnregisterErr = nil
	if err := m.Unregister(h); err != nil {
		t.Fatalf("retry unregister: %v", err)
	}
	if fake.Active() != 0 {
		t.Fatal("native registration not released on retry")
	}
}

func TestUnbindWithoutEntryPanics(t *testing.T) {
	r, _ := newTestRegistry(t)
	defer func() {
		if recover() == nil {
			t.Fatal("unbind of an untracked hotkey must panic")
		}
	}()
	r.unbind(mustParse(t, "CTRL+Z"), 0)
}
