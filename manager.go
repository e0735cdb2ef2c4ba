package chord

import "sync"

// Handler receives hotkey triggers. HandleHotkey is called with no
// arguments on the listener's worker goroutine, never on the goroutine that
// registered the hotkey; implementations must not assume any particular
// execution context. Long work, and anything that adds or removes a native
// registration, must be handed off to another goroutine so the worker can
// keep servicing requests.
type Handler interface {
	HandleHotkey()
}

// HandlerFunc adapts a plain function to a Handler.
type HandlerFunc func()

func (f HandlerFunc) HandleHotkey() { f() }

// Manager is one caller's handle on a registry. It tracks the hotkeys this
// caller personally owns so they can be released together; the same hotkey
// may be owned by any number of managers at once.
type Manager struct {
	reg   *Registry
	owner int

	mu    sync.Mutex
	owned []Hotkey
}

// NewManager creates a manager bound to this registry. The owner id comes
// from the registry's monotonically increasing counter and is never reused
// for the registry's lifetime.
func (r *Registry) NewManager() *Manager {
	return &Manager{reg: r, owner: r.newOwnerID()}
}

// IsRegistered reports whether this manager owns the hotkey. Other managers'
// registrations are not visible here; see Registry.IsBound.
func (m *Manager) IsRegistered(h Hotkey) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexOf(h) >= 0
}

// Register binds the hotkey for this manager. Registering a hotkey the
// manager already owns fails with *AlreadyRegisteredError before anything
// reaches the registry or the native layer.
func (m *Manager) Register(h Hotkey, handler Handler) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOf(h) >= 0 {
		return &AlreadyRegisteredError{Hotkey: h}
	}
	if err := m.reg.bind(h, m.owner, handler); err != nil {
		return err
	}
	m.owned = append(m.owned, h)
	return nil
}

// Unregister releases this manager's claim on the hotkey. The local
// ownership record is removed only after the registry confirms the unbind,
// so a failed native release never loses track of a hotkey that is still
// bound.
func (m *Manager) Unregister(h Hotkey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(h)
	if i < 0 {
		return &NotRegisteredError{Hotkey: h}
	}
	if err := m.reg.unbind(h, m.owner); err != nil {
		return err
	}
	m.owned = append(m.owned[:i], m.owned[i+1:]...)
	return nil
}

// UnregisterAll releases every hotkey this manager owns, continuing past
// individual failures. Only the last failure is reported.
func (m *Manager) UnregisterAll() error {
	m.mu.Lock()
	snapshot := make([]Hotkey, len(m.owned))
	copy(snapshot, m.owned)
	m.mu.Unlock()

	var last error
	for _, h := range snapshot {
		if err := m.Unregister(h); err != nil {
			last = err
		}
	}
	return last
}

// Close releases everything the manager owns. Errors are logged, never
// returned; call Unregister directly when failures matter.
func (m *Manager) Close() {
	if err := m.UnregisterAll(); err != nil {
		m.reg.log.Error().Err(err).Msg("manager close: failed to unregister all hotkeys")
	}
}

func (m *Manager) indexOf(h Hotkey) int {
	for i, have := range m.owned {
		if have.Equal(h) {
			return i
		}
	}
	return -1
}
