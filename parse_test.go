package chord

import (
	"errors"
	"runtime"
	"strings"
	"testing"
)

func mustParse(t *testing.T, spec string) Hotkey {
	t.Helper()
	h, err := Parse(spec)
	if err != nil {
		t.Fatalf("Parse(%q): %v", spec, err)
	}
	return h
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Hotkey
	}{
		{"CTRL+P", Hotkey{Mods: []Modifier{ModCtrl}, Keys: []Key{KeyP}}},
		{"CTRL+SHIFT+P", Hotkey{Mods: []Modifier{ModCtrl, ModShift}, Keys: []Key{KeyP}}},
		{"S", Hotkey{Keys: []Key{KeyS}}},
		{"ALT+BACKSPACE", Hotkey{Mods: []Modifier{ModAlt}, Keys: []Key{KeyBackspace}}},
		{"SHIFT+SUPER+A", Hotkey{Mods: []Modifier{ModShift, ModSuper}, Keys: []Key{KeyA}}},
		{"SUPER+RIGHT", Hotkey{Mods: []Modifier{ModSuper}, Keys: []Key{KeyRight}}},
		{"SUPER+CTRL+SHIFT+AltGr+9", Hotkey{Mods: []Modifier{ModSuper, ModCtrl, ModShift, ModAltGr}, Keys: []Key{Key9}}},
		{"super+ctrl+SHIFT+alt+Up", Hotkey{Mods: []Modifier{ModSuper, ModCtrl, ModShift, ModAlt}, Keys: []Key{KeyUp}}},
		{"5", Hotkey{Keys: []Key{Key5}}},
		{"KEY_5", Hotkey{Keys: []Key{Key5}}},
		{"CMD+C", Hotkey{Mods: []Modifier{ModSuper}, Keys: []Key{KeyC}}},
		{"CONTROL+RETURN", Hotkey{Mods: []Modifier{ModCtrl}, Keys: []Key{KeyEnter}}},
		{" ctrl + a ", Hotkey{Mods: []Modifier{ModCtrl}, Keys: []Key{KeyA}}},
		{"CTRL+A+B", Hotkey{Mods: []Modifier{ModCtrl}, Keys: []Key{KeyA, KeyB}}},
	}

	for _, tt := range tests {
		got := mustParse(t, tt.spec)
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestParseShiftedSymbols(t *testing.T) {
	got := mustParse(t, "!")
	want := Hotkey{Mods: []Modifier{ModShift}, Keys: []Key{Key1}}
	if !got.Equal(want) {
		t.Fatalf("Parse(%q) = %v, want %v", "!", got, want)
	}

	// Shift is not duplicated when already spelled out.
	got = mustParse(t, "SHIFT+?")
	want = Hotkey{Mods: []Modifier{ModShift}, Keys: []Key{KeySlash}}
	if !got.Equal(want) {
		t.Fatalf("Parse(%q) = %v, want %v", "SHIFT+?", got, want)
	}
	if len(got.Mods) != 1 {
		t.Fatalf("Parse(%q) modifiers = %v, want exactly one", "SHIFT+?", got.Mods)
	}

	got = mustParse(t, "CTRL+{")
	want = Hotkey{Mods: []Modifier{ModCtrl, ModShift}, Keys: []Key{KeyOpenBracket}}
	if !got.Equal(want) {
		t.Fatalf("Parse(%q) = %v, want %v", "CTRL+{", got, want)
	}
}

func TestParsePlainPunctuation(t *testing.T) {
	got := mustParse(t, "CTRL+-")
	want := Hotkey{Mods: []Modifier{ModCtrl}, Keys: []Key{KeyMinus}}
	if !got.Equal(want) {
		t.Fatalf("Parse(%q) = %v, want %v", "CTRL+-", got, want)
	}
	for _, m := range got.Mods {
		if m == ModShift {
			t.Fatal("plain punctuation must not imply Shift")
		}
	}
}

func TestParseCommandOrControl(t *testing.T) {
	got := mustParse(t, "COMMANDORCONTROL+X")
	want := ModCtrl
	if runtime.GOOS == "darwin" {
		want = ModSuper
	}
	if len(got.Mods) != 1 || got.Mods[0] != want {
		t.Fatalf("Parse(COMMANDORCONTROL+X) modifiers = %v, want [%v]", got.Mods, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec   string
		reason string
	}{
		{"5+5", "duplicated key 5"},
		{"CTRL+A+A", "duplicated key A"},
		{"CTRL+", "no key specified"},
		{"", "no key specified"},
		{"SHIFT", "no key specified"},
		{"CTRL+BOGUS", "unknown key BOGUS"},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if err == nil {
			t.Errorf("Parse(%q): expected error", tt.spec)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q): error %v is not a *ParseError", tt.spec, err)
			continue
		}
		if !strings.Contains(err.Error(), tt.reason) {
			t.Errorf("Parse(%q) error = %q, want mention of %q", tt.spec, err, tt.reason)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	specs := []string{
		"CTRL+P",
		"CTRL+SHIFT+P",
		"SUPER+CTRL+SHIFT+ALTGR+9",
		"!",
		"ALT+F4",
		"CTRL+A+B",
		"NUMADD",
		"CTRL+OPENBRACKET",
	}
	for _, spec := range specs {
		h := mustParse(t, spec)
		again := mustParse(t, h.String())
		if !again.Equal(h) {
			t.Errorf("parse(%q).String() = %q, which reparses to %v", spec, h.String(), again)
		}
	}
}
