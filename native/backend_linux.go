//go:build linux

package native

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	evKey      = 1
	keyPress   = 1
	keyRelease = 0
)

const inputEventSize = 24

// Kernel codes of modifier keys, mapped to our modifier masks. Right Alt is
// treated as AltGr.
var modifierKeys = map[uint16]uint32{
	29:  MaskCtrl,  // KEY_LEFTCTRL
	97:  MaskCtrl,  // KEY_RIGHTCTRL
	42:  MaskShift, // KEY_LEFTSHIFT
	54:  MaskShift, // KEY_RIGHTSHIFT
	56:  MaskAlt,   // KEY_LEFTALT
	100: MaskAltGr, // KEY_RIGHTALT
	125: MaskSuper, // KEY_LEFTMETA
	126: MaskSuper, // KEY_RIGHTMETA
}

// evdevBackend reads /dev/input/event* devices directly, so it works on
// both X11 and Wayland as long as the user can open the devices (usually
// membership in the "input" group). Events are matched against the set of
// registered chords: a non-modifier key press whose held-modifier mask
// equals a chord's modifier mask fires that chord's id.
type evdevBackend struct {
	mu         sync.Mutex
	events     chan<- int
	files      []*os.File
	stop       chan struct{}
	registered map[int]Code
}

// NewBackend returns the default backend for this platform.
func NewBackend() Backend {
	return &evdevBackend{registered: make(map[int]Code)}
}

func (b *evdevBackend) Install(events chan<- int) error {
	keyboards, err := findKeyboards()
	if err != nil {
		return fmt.Errorf("finding keyboards: %w", err)
	}
	if len(keyboards) == 0 {
		return fmt.Errorf("no keyboard devices found (is user in 'input' group?)")
	}

	b.events = events
	b.stop = make(chan struct{})

	for _, path := range keyboards {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		b.files = append(b.files, f)
		go b.readEvents(f)
	}

	if len(b.files) == 0 {
		return fmt.Errorf("could not open any keyboard device (run: sudo usermod -aG input $USER, then re-login)")
	}
	return nil
}

func (b *evdevBackend) Uninstall() error {
	if b.stop != nil {
		close(b.stop)
		b.stop = nil
	}
	for _, f := range b.files {
		f.Close()
	}
	b.files = nil
	return nil
}

func (b *evdevBackend) Register(id int, mods, key uint32) (Handle, error) {
	if key == 0 {
		return nil, fmt.Errorf("chord has no key code")
	}
	b.mu.Lock()
	b.registered[id] = Code{Mods: mods, Key: key}
	b.mu.Unlock()
	return id, nil
}

func (b *evdevBackend) Unregister(h Handle) error {
	b.mu.Lock()
	delete(b.registered, h.(int))
	b.mu.Unlock()
	return nil
}

func (b *evdevBackend) readEvents(f *os.File) {
	buf := make([]byte, inputEventSize*16)
	var held uint32

	for {
		select {
		case <-b.stop:
			return
		default:
		}

		n, err := f.Read(buf)
		if err != nil {
			return
		}

		for i := 0; i+inputEventSize <= n; i += inputEventSize {
			evType := binary.LittleEndian.Uint16(buf[i+16:])
			evCode := binary.LittleEndian.Uint16(buf[i+18:])
			evValue := int32(binary.LittleEndian.Uint32(buf[i+20:]))

			if evType != evKey {
				continue
			}

			if mask, ok := modifierKeys[evCode]; ok {
				switch evValue {
				case keyPress:
					held |= mask
				case keyRelease:
					held &^= mask
				}
				continue
			}

			if evValue != keyPress {
				continue
			}
			b.fire(held, uint32(evCode))
		}
	}
}

func (b *evdevBackend) fire(held, key uint32) {
	b.mu.Lock()
	found := -1
	for id, c := range b.registered {
		if c.Key == key && c.Mods == held {
			found = id
			break
		}
	}
	events := b.events
	b.mu.Unlock()
	if found == -1 || events == nil {
		return
	}
	select {
	case events <- found:
	default:
	}
}

func findKeyboards() ([]string, error) {
	entries, err := os.ReadDir("/dev/input")
	if err != nil {
		return nil, err
	}

	var keyboards []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "event") {
			continue
		}
		if isKeyboard(e.Name()) {
			keyboards = append(keyboards, filepath.Join("/dev/input", e.Name()))
		}
	}
	return keyboards, nil
}

func isKeyboard(eventName string) bool {
	capsPath := filepath.Join("/sys/class/input", eventName, "device", "capabilities", "key")
	data, err := os.ReadFile(capsPath)
	if err != nil {
		return false
	}
	caps := strings.TrimSpace(string(data))
	return len(caps) > 10
}

// Diagnose reports whether the evdev backend can work in this environment.
func Diagnose() (string, error) {
	keyboards, err := findKeyboards()
	if err != nil {
		return "", fmt.Errorf("cannot scan input devices: %w", err)
	}
	if len(keyboards) == 0 {
		return "", fmt.Errorf("no keyboard devices found (is user in 'input' group?)")
	}

	var opened string
	for _, path := range keyboards {
		f, err := os.Open(path)
		if err == nil {
			f.Close()
			opened = path
			break
		}
	}
	if opened == "" {
		return "", fmt.Errorf("found %d keyboard(s) but cannot open any (run: sudo usermod -aG input $USER)", len(keyboards))
	}
	return fmt.Sprintf("%d keyboard(s) found, opened %s", len(keyboards), opened), nil
}
