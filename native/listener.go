package native

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

type opKind int

const (
	opRegister opKind = iota
	opUnregister
	opTerminate
)

type request struct {
	op      opKind
	mods    uint32
	key     uint32
	handler func()
	reply   chan error
}

type entry struct {
	code    Code
	handler func()
	handle  Handle
}

// Listener owns the single goroutine allowed to touch the Backend. Register
// and Unregister are synchronous: the request travels over a channel to the
// worker, the caller blocks on a per-request reply channel, and the worker
// answers after the native call returns. That funnel both serializes native
// access and makes each operation look atomic to the caller.
//
// Triggered hotkeys arrive on the event channel and are dispatched from the
// worker goroutine, so handlers always run off the registering thread.
type Listener struct {
	backend  Backend
	log      zerolog.Logger
	requests chan request
	events   chan int

	// sendMu orders request sends against Close: Close flips closed under
	// the write lock, so no request can slip in after terminate.
	sendMu sync.RWMutex
	closed bool

	mu       sync.Mutex
	lastID   int
	handlers map[int]entry

	// Install runs lazily on the first register; its outcome is final.
	installed  bool
	installErr error
}

// NewListener starts the worker goroutine for the given backend. The
// backend's event source is installed lazily on the first registration; an
// install failure is remembered and reported to every later caller.
func NewListener(b Backend, logger zerolog.Logger) *Listener {
	l := &Listener{
		backend:  b,
		log:      logger,
		requests: make(chan request, 16),
		events:   make(chan int, 16),
		handlers: make(map[int]entry),
	}
	go l.run()
	return l
}

// Register binds the encoded hotkey natively and stores handler for trigger
// dispatch. The handler runs on the worker goroutine; it must not block it
// for long, and it must not call Register or Unregister on this listener
// (the worker cannot service a request while it is running a handler).
func (l *Listener) Register(mods, key uint32, handler func()) error {
	return l.call(request{op: opRegister, mods: mods, key: key, handler: handler})
}

// Unregister releases the native registration whose stored code matches.
// The bookkeeping entry is removed only after the native call succeeds.
func (l *Listener) Unregister(mods, key uint32) error {
	return l.call(request{op: opUnregister, mods: mods, key: key})
}

// Registered returns a snapshot of the codes currently bound natively.
func (l *Listener) Registered() []Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	codes := make([]Code, 0, len(l.handlers))
	for _, e := range l.handlers {
		codes = append(codes, e.code)
	}
	return codes
}

// Close tells the worker to release every live registration, uninstall the
// event source, and exit. Teardown failures are logged only; there is no
// caller left to report them to. Close blocks until the worker is done.
func (l *Listener) Close() {
	l.sendMu.Lock()
	if l.closed {
		l.sendMu.Unlock()
		return
	}
	l.closed = true
	req := request{op: opTerminate, reply: make(chan error, 1)}
	l.requests <- req
	l.sendMu.Unlock()
	<-req.reply
}

func (l *Listener) call(req request) error {
	l.sendMu.RLock()
	if l.closed {
		l.sendMu.RUnlock()
		return ErrClosed
	}
	req.reply = make(chan error, 1)
	l.requests <- req
	l.sendMu.RUnlock()
	return <-req.reply
}

func (l *Listener) run() {
	for {
		select {
		case id := <-l.events:
			l.dispatch(id)
		case req := <-l.requests:
			switch req.op {
			case opRegister:
				req.reply <- l.register(req)
			case opUnregister:
				req.reply <- l.unregister(req)
			case opTerminate:
				l.teardown()
				req.reply <- nil
				return
			}
		}
	}
}

func (l *Listener) dispatch(id int) {
	l.mu.Lock()
	e, ok := l.handlers[id]
	l.mu.Unlock()
	if ok && e.handler != nil {
		e.handler()
	}
}

func (l *Listener) register(req request) error {
	if !l.installed {
		l.installed = true
		l.installErr = l.backend.Install(l.events)
		if l.installErr != nil {
			l.log.Error().Err(l.installErr).Msg("native event source install failed")
		}
	}
	if l.installErr != nil {
		return fmt.Errorf("event source install: %w", l.installErr)
	}

	code := Code{Mods: req.mods, Key: req.key}
	l.mu.Lock()
	for _, e := range l.handlers {
		if e.code == code {
			l.mu.Unlock()
			return ErrAlreadyRegistered
		}
	}
	l.lastID++
	id := l.lastID
	l.mu.Unlock()

	handle, err := l.backend.Register(id, req.mods, req.key)
	if err != nil {
		return &APIError{Op: "register", Err: err}
	}

	l.mu.Lock()
	l.handlers[id] = entry{code: code, handler: req.handler, handle: handle}
	l.mu.Unlock()
	return nil
}

func (l *Listener) unregister(req request) error {
	code := Code{Mods: req.mods, Key: req.key}
	found := -1
	var handle Handle
	l.mu.Lock()
	for id, e := range l.handlers {
		if e.code == code {
			found = id
			handle = e.handle
			break
		}
	}
	l.mu.Unlock()
	if found == -1 {
		return ErrNotRegistered
	}

	if err := l.backend.Unregister(handle); err != nil {
		return &APIError{Op: "unregister", Err: err}
	}

	l.mu.Lock()
	delete(l.handlers, found)
	l.mu.Unlock()
	return nil
}

func (l *Listener) teardown() {
	l.mu.Lock()
	live := make(map[int]Handle, len(l.handlers))
	for id, e := range l.handlers {
		live[id] = e.handle
	}
	l.handlers = make(map[int]entry)
	l.mu.Unlock()

	for id, h := range live {
		if err := l.backend.Unregister(h); err != nil {
			l.log.Error().Err(err).Int("id", id).Msg("teardown: unregister failed")
		}
	}
	if l.installed && l.installErr == nil {
		if err := l.backend.Uninstall(); err != nil {
			l.log.Error().Err(err).Msg("teardown: event source uninstall failed")
		}
	}
}
