//go:build windows

package doctor

import (
	"os"
	"os/signal"
)

func resetTerminal() {
	// The console does not need resetting on Windows.
}

func setupInterruptHandler() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		println("\ndoctor interrupted")
		os.Exit(1)
	}()
}
