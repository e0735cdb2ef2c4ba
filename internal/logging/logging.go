// Package logging resolves the log directory and builds the zerolog logger
// used by the chordwatch binary.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// ResolveDir picks the log directory: the -logpath flag wins, then the
// CHORD_LOG_PATH environment variable, then an OS-specific default.
// Relative paths are anchored at the working directory.
func ResolveDir(flagPath string) (string, error) {
	if flagPath != "" {
		return absolute(flagPath)
	}
	if envPath := os.Getenv("CHORD_LOG_PATH"); envPath != "" {
		return absolute(envPath)
	}
	return getDefaultDir()
}

func absolute(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, path), nil
}

// Open creates the log directory if needed and returns a logger writing
// human-readable lines to diagnostics_log.txt inside it. When echo is
// non-nil (typically os.Stderr), every line is mirrored there with color.
// The returned closer flushes and closes the log file.
func Open(dir string, echo io.Writer) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, "diagnostics_log.txt")
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	var out io.Writer = zerolog.ConsoleWriter{
		Out:        file,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	if echo != nil {
		out = zerolog.MultiLevelWriter(out, zerolog.ConsoleWriter{
			Out:        echo,
			TimeFormat: "15:04:05",
		})
	}

	logger := zerolog.New(out).With().Timestamp().Int("pid", os.Getpid()).Logger()
	return logger, file, nil
}
