// Package chord registers global keyboard shortcuts that fire even when the
// application is not focused. Any number of managers may share a hotkey: the
// registry keeps one native registration per distinct hotkey and fans
// triggers out to every owner.
package chord

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"chord/native"
)

// Registry is the single source of truth for which hotkeys are bound at the
// OS level. An entry exists exactly when the hotkey is registered natively,
// and its owner table is non-empty exactly when the entry exists; unbinding
// the last owner releases the native registration.
//
// A Registry and its Listener form an isolated unit; tests construct their
// own instead of sharing process state.
type Registry struct {
	listener *native.Listener
	log      zerolog.Logger

	// mu is held across whole bind/unbind sequences (lookup, native call,
	// mutate), so two callers can never race to register the same hotkey
	// twice. Trigger dispatch deliberately avoids mu, see binding.
	mu        sync.Mutex
	bindings  map[string]*binding
	nextOwner int
}

// binding is one registry entry: the owners sharing a native registration.
// The owner table has its own lock so the listener's dispatch goroutine
// never contends for the registry lock; otherwise a trigger arriving while
// a bind call blocks on the listener would deadlock the worker.
type binding struct {
	hotkey Hotkey

	mu       sync.Mutex
	handlers map[int]Handler
}

// handlerList copies the current owners. Handlers are invoked outside any
// lock so they may re-enter Register or Unregister.
func (b *binding) handlerList() []Handler {
	b.mu.Lock()
	defer b.mu.Unlock()
	hs := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		hs = append(hs, h)
	}
	return hs
}

// NewRegistry builds a registry on top of an existing listener.
func NewRegistry(l *native.Listener, logger zerolog.Logger) *Registry {
	return &Registry{
		listener: l,
		log:      logger,
		bindings: make(map[string]*binding),
	}
}

// New builds a registry with the default platform backend and its own
// listener. Close releases everything.
func New(logger zerolog.Logger) *Registry {
	return NewRegistry(native.NewListener(native.NewBackend(), logger), logger)
}

// IsBound reports whether the hotkey is currently registered natively by
// any manager.
func (r *Registry) IsBound(h Hotkey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.bindings[h.id()]
	return ok
}

// Close releases the listener and with it every native registration.
// Teardown failures are logged, never returned.
func (r *Registry) Close() {
	r.listener.Close()
}

func (r *Registry) bind(h Hotkey, owner int, handler Handler) error {
	mods, key, err := h.encode()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := h.id()
	if b, ok := r.bindings[id]; ok {
		b.mu.Lock()
		b.handlers[owner] = handler
		b.mu.Unlock()
		r.log.Info().Str("hotkey", h.String()).Int("owner", owner).Msg("joined existing registration")
		return nil
	}

	b := &binding{hotkey: h, handlers: map[int]Handler{owner: handler}}
	dispatch := func() {
		for _, fn := range b.handlerList() {
			fn.HandleHotkey()
		}
	}
	if err := r.listener.Register(mods, key, dispatch); err != nil {
		return err
	}
	r.bindings[id] = b
	r.log.Info().Str("hotkey", h.String()).Int("owner", owner).Msg("registered hotkey")
	return nil
}

func (r *Registry) unbind(h Hotkey, owner int) error {
	mods, key, err := h.encode()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := h.id()
	b, ok := r.bindings[id]
	if !ok {
		// The manager's bookkeeping guarantees the entry exists; if it does
		// not, registry and manager state have diverged and native state
		// tracking can no longer be trusted.
		panic(fmt.Sprintf("chord: no registry entry for owned hotkey %s", h))
	}

	b.mu.Lock()
	handler, ok := b.handlers[owner]
	if !ok {
		b.mu.Unlock()
		panic(fmt.Sprintf("chord: owner %d missing from registry entry for %s", owner, h))
	}
	delete(b.handlers, owner)
	empty := len(b.handlers) == 0
	b.mu.Unlock()

	if !empty {
		r.log.Info().Str("hotkey", h.String()).Int("owner", owner).Msg("left shared registration")
		return nil
	}

	if err := r.listener.Unregister(mods, key); err != nil {
		// The hotkey is still live natively; reinstate the owner so the
		// entry keeps matching actual OS state.
		b.mu.Lock()
		b.handlers[owner] = handler
		b.mu.Unlock()
		return err
	}
	delete(r.bindings, id)
	r.log.Info().Str("hotkey", h.String()).Int("owner", owner).Msg("unregistered hotkey")
	return nil
}

func (r *Registry) newOwnerID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextOwner
	r.nextOwner++
	return id
}
