package native

import "sync"

// Fake is an in-memory Backend for tests. It counts native calls, can be
// told to fail, and can fire synthetic triggers.
type Fake struct {
	InstallErr    error
	RegisterErr   error
	UnregisterErr error

	mu        sync.Mutex
	events    chan<- int
	installed bool
	registers int
	active    map[int]Code
}

func NewFake() *Fake {
	return &Fake{active: make(map[int]Code)}
}

func (f *Fake) Install(events chan<- int) error {
	if f.InstallErr != nil {
		return f.InstallErr
	}
	f.mu.Lock()
	f.events = events
	f.installed = true
	f.mu.Unlock()
	return nil
}

func (f *Fake) Uninstall() error {
	f.mu.Lock()
	f.installed = false
	f.mu.Unlock()
	return nil
}

func (f *Fake) Register(id int, mods, key uint32) (Handle, error) {
	if f.RegisterErr != nil {
		return nil, f.RegisterErr
	}
	f.mu.Lock()
	f.registers++
	f.active[id] = Code{Mods: mods, Key: key}
	f.mu.Unlock()
	return id, nil
}

func (f *Fake) Unregister(h Handle) error {
	if f.UnregisterErr != nil {
		return f.UnregisterErr
	}
	f.mu.Lock()
	delete(f.active, h.(int))
	f.mu.Unlock()
	return nil
}

// Fire simulates the OS reporting a trigger for the registration matching
// code. It reports whether a live registration matched.
func (f *Fake) Fire(mods, key uint32) bool {
	code := Code{Mods: mods, Key: key}
	f.mu.Lock()
	events := f.events
	found := -1
	for id, c := range f.active {
		if c == code {
			found = id
			break
		}
	}
	f.mu.Unlock()
	if found == -1 || events == nil {
		return false
	}
	events <- found
	return true
}

// RegisterCalls returns how many times Register succeeded.
func (f *Fake) RegisterCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registers
}

// Active returns the number of live registrations.
func (f *Fake) Active() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.active)
}

// Installed reports whether the event source is currently installed.
func (f *Fake) Installed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.installed
}
