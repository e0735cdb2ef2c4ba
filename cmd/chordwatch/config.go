package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"chord"
)

type configFile struct {
	Bindings []bindingConfig `toml:"binding"`
}

type bindingConfig struct {
	Chord   string `toml:"chord"`
	Message string `toml:"message"`
	Copy    bool   `toml:"copy"`
}

// watchedBinding is one configured hotkey with its parsed form.
type watchedBinding struct {
	Hotkey  chord.Hotkey
	Spec    string
	Message string
	Copy    bool
}

// defaultBindings is what chordwatch watches when no config file is given.
var defaultBindings = []bindingConfig{
	{Chord: "CTRL+SHIFT+F7", Message: "chordwatch says hi", Copy: true},
	{Chord: "CTRL+SHIFT+F8", Message: "second binding fired"},
}

// loadBindings reads the TOML config and parses every chord. Bindings that
// fail to parse are skipped with a warning; only an unreadable config file
// is fatal.
func loadBindings(path string, logger zerolog.Logger) ([]watchedBinding, error) {
	raw := defaultBindings
	if path != "" {
		var config configFile
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		raw = config.Bindings
	} else if _, err := os.Stat("chordwatch.toml"); err == nil {
		var config configFile
		if _, err := toml.DecodeFile("chordwatch.toml", &config); err != nil {
			return nil, fmt.Errorf("decode chordwatch.toml: %w", err)
		}
		raw = config.Bindings
	}

	var bindings []watchedBinding
	for _, b := range raw {
		hk, err := chord.Parse(b.Chord)
		if err != nil {
			logger.Warn().Err(err).Msg("skipping binding")
			continue
		}
		bindings = append(bindings, watchedBinding{
			Hotkey:  hk,
			Spec:    b.Chord,
			Message: b.Message,
			Copy:    b.Copy,
		})
	}
	if len(bindings) == 0 {
		return nil, fmt.Errorf("no usable bindings configured")
	}
	return bindings, nil
}
