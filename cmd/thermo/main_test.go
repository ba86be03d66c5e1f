package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/thermo/internal/config"
)

func TestRun_HelpExitsCleanly(t *testing.T) {
	if code := run([]string{"--help"}); code != 0 {
		t.Fatalf("run(--help) = %d, want 0", code)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	if code := run([]string{"--bogus"}); code != 2 {
		t.Fatalf("run(--bogus) = %d, want 2", code)
	}
}

func TestRun_ConflictingWindowReportsUsage(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	logPath := filepath.Join(dir, "log.txt")
	if err := os.WriteFile(logPath, []byte("2024-01-01 10:00:00,x,40.0,30.0,31.0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var code int
	stderr := captureStderr(t, func() {
		code = run([]string{"-f", logPath, "-H", "1", "-s", "09:00:00"})
	})
	if code != 1 {
		t.Fatalf("run = %d, want 1", code)
	}
	if !strings.Contains(stderr, config.ErrConflictingWindow.Error()) {
		t.Fatalf("stderr = %q, want the window conflict", stderr)
	}
	if !strings.Contains(stderr, "thermo --help") {
		t.Fatalf("stderr = %q, want a usage hint", stderr)
	}
}

func TestRun_ExportsPNG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	logPath := filepath.Join(dir, "log.txt")
	content := "2024-01-01 10:00:00,x,40.0,30.0,31.0\n2024-01-01 10:05:00,x,41.0,30.5,31.5\n"
	if err := os.WriteFile(logPath, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	pngPath := filepath.Join(dir, "out.png")

	if code := run([]string{"--logfile", logPath, "--png", pngPath}); code != 0 {
		t.Fatalf("run = %d, want 0", code)
	}
	if _, err := os.Stat(pngPath); err != nil {
		t.Fatalf("png not written: %v", err)
	}
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return string(out)
}
