//go:build !windows && !darwin && !linux

package doctor

import (
	"fmt"

	"github.com/rs/zerolog"
)

func checkSyntheticPress(zerolog.Logger) bool {
	fmt.Println()
	fmt.Println("[3/3] Synthetic key injection")
	fmt.Println("  FAIL: key injection is not supported on this platform")
	return false
}
