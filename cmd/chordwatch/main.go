// Command chordwatch registers the hotkeys from its config and shows every
// trigger in a terminal UI. It doubles as a live test bed for global hotkey
// support on the current machine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"chord"
	"chord/doctor"
	"chord/internal/logging"
	"chord/internal/shutdown"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "", "TOML config file (default: ./chordwatch.toml if present)")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location)")
	doctorFlag := flag.Bool("doctor", false, "Run hotkey diagnostics and exit")
	verboseFlag := flag.Bool("verbose", false, "Echo diagnostics to stderr as well as the log file")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("chordwatch %s\n", version)
		os.Exit(0)
	}

	logDir, err := logging.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	var echo io.Writer
	if *verboseFlag {
		echo = os.Stderr
	}
	logger, logCloser, err := logging.Open(logDir, echo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logger = zerolog.Nop()
	} else {
		defer logCloser.Close()
	}

	if *doctorFlag {
		os.Exit(doctor.Run(logger))
	}

	bindings, err := loadBindings(*configFlag, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reg := chord.New(logger)
	defer reg.Close()
	mgr := reg.NewManager()
	defer mgr.Close()

	program := newTUIProgram(bindings)

	// Registration runs once the TUI event loop is live; Send blocks until
	// the program is receiving.
	go registerBindings(mgr, bindings, program, logger)

	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	go func() {
		<-sigChan
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		logger.Error().Err(err).Msg("tui error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func registerBindings(mgr *chord.Manager, bindings []watchedBinding, program *tea.Program, logger zerolog.Logger) {
	for i, b := range bindings {
		handler := chord.HandlerFunc(func() {
			copied := false
			if b.Copy && b.Message != "" {
				if err := clipboard.WriteAll(b.Message); err != nil {
					logger.Error().Err(err).Msg("clipboard write failed")
				} else {
					copied = true
				}
			}
			logger.Info().Str("hotkey", b.Hotkey.String()).Msg("hotkey fired")
			program.Send(triggerMsg{Index: i, Copied: copied})
		})
		if err := mgr.Register(b.Hotkey, handler); err != nil {
			logger.Error().Err(err).Str("hotkey", b.Spec).Msg("register failed")
			program.Send(registerFailedMsg{Index: i, Err: err})
		}
	}
}
