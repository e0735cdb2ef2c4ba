// Package doctor runs interactive diagnostics for global hotkey support:
// backend availability, a real key press from the user, and a synthetic
// press injected through the OS input layer.
package doctor

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"chord"
	"chord/native"
)

// Run executes the diagnostic checks and returns an exit code (0=all pass, 1=any fail).
func Run(logger zerolog.Logger) int {
	resetTerminal()
	setupInterruptHandler()

	fmt.Println("chord doctor - interactive hotkey diagnostics")
	fmt.Println("=============================================")

	allPass := true

	if !checkEnvironment() {
		allPass = false
	}
	if allPass && !checkManualPress(logger) {
		allPass = false
	}
	if allPass && !checkSyntheticPress(logger) {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkEnvironment() bool {
	fmt.Println()
	fmt.Println("[1/3] Hotkey backend availability")

	fmt.Printf("  Display server: %s\n", native.DetectDisplayServer())

	msg, err := native.Diagnose()
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}
	fmt.Printf("  PASS: %s\n", msg)
	return true
}

func checkManualPress(logger zerolog.Logger) bool {
	fmt.Println()
	fmt.Println("[2/3] Hotkey detection")
	fmt.Println("Press Ctrl+Shift+P within 10 seconds...")

	hk, err := chord.Parse("CTRL+SHIFT+P")
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}

	reg := chord.New(logger)
	defer reg.Close()
	mgr := reg.NewManager()
	defer mgr.Close()

	pressed := make(chan struct{}, 1)
	handler := chord.HandlerFunc(func() {
		select {
		case pressed <- struct{}{}:
		default:
		}
	})
	if err := mgr.Register(hk, handler); err != nil {
		fmt.Printf("  FAIL: could not register hotkey: %v\n", err)
		return false
	}

	select {
	case <-pressed:
		fmt.Println("  PASS: hotkey detected")
		// The press may leave the terminal in raw mode.
		resetTerminal()
		return true
	case <-time.After(10 * time.Second):
		fmt.Println("  FAIL: timeout waiting for hotkey")
		return false
	}
}
