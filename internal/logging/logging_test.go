package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/mylog")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/mylog" {
		t.Errorf("got %q, want /tmp/mylog", got)
	}
}

func TestResolveDirFlagRelative(t *testing.T) {
	got, err := ResolveDir("logs")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(wd, "logs")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv("CHORD_LOG_PATH", "/tmp/chord-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/chord-env-log" {
		t.Errorf("got %q, want /tmp/chord-env-log", got)
	}
}

func TestResolveDirDefault(t *testing.T) {
	t.Setenv("CHORD_LOG_PATH", "")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("expected non-empty default directory")
	}
}

func TestOpenCreatesFile(t *testing.T) {
	tmp := t.TempDir()

	logger, closer, err := Open(tmp, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	logger.Info().Msg("hotkey registered")

	data, err := os.ReadFile(filepath.Join(tmp, "diagnostics_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hotkey registered") {
		t.Errorf("diagnostics_log.txt missing message, got: %q", data)
	}
}

func TestOpenEchoes(t *testing.T) {
	tmp := t.TempDir()
	var buf bytes.Buffer

	logger, closer, err := Open(tmp, &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	logger.Info().Msg("mirrored line")

	if !strings.Contains(buf.String(), "mirrored line") {
		t.Errorf("echo writer missing message, got: %q", buf.String())
	}
	data, err := os.ReadFile(filepath.Join(tmp, "diagnostics_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "mirrored line") {
		t.Errorf("log file missing message, got: %q", data)
	}
}

func TestOpenCreatesMissingDir(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "nested", "logs")

	_, closer, err := Open(tmp, nil)
	if err != nil {
		t.Fatal(err)
	}
	closer.Close()

	if _, err := os.Stat(tmp); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
}
