//go:build windows || darwin || linux

package doctor

import (
	"fmt"
	"runtime"
	"time"

	"github.com/micmonay/keybd_event"
	"github.com/rs/zerolog"

	"chord"
)

// checkSyntheticPress registers a hotkey and injects the matching key
// combination through the OS input layer, proving the whole path without
// user interaction.
func checkSyntheticPress(logger zerolog.Logger) bool {
	fmt.Println()
	fmt.Println("[3/3] Synthetic key injection")

	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		fmt.Printf("  FAIL: key injection unavailable: %v\n", err)
		if runtime.GOOS == "linux" {
			fmt.Println("  Fix with: sudo chmod 660 /dev/uinput && sudo chgrp input /dev/uinput")
		}
		return false
	}
	if runtime.GOOS == "linux" {
		// uinput devices need a moment before they accept events.
		time.Sleep(2 * time.Second)
	}

	hk, err := chord.Parse("CTRL+SHIFT+F9")
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

	kb.SetKeys(keybd_event.VK_F9)
	kb.HasCTRL(true)
	kb.HasSHIFT(true)
	if err := kb.Launching(); err != nil {
		fmt.Printf("  FAIL: could not inject key press: %v\n", err)
		return false
	}

	select {
	case <-pressed:
		fmt.Println("  PASS: synthetic press detected")
		return true
	case <-time.After(5 * time.Second):
		fmt.Println("  FAIL: injected press never arrived")
		return false
	}
}
