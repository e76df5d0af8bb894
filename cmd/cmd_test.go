package cmd

import (
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/theme"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(os.Stderr)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	log.Println("Test log message")

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestRenderSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "field.png")
	cfg := config.DefaultConfig()

	if err := renderSnapshot(cfg, theme.Light, 10, 320, 200, 7, out); err != nil {
		t.Fatalf("renderSnapshot: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("expected 320x200, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderSnapshotRejectsEmptyRuns(t *testing.T) {
	cfg := config.DefaultConfig()
	dir := t.TempDir()
	if err := renderSnapshot(cfg, theme.Dark, 0, 320, 200, 1, filepath.Join(dir, "a.png")); err == nil {
		t.Error("expected error for zero frames")
	}
	if err := renderSnapshot(cfg, theme.Dark, 5, 0, 200, 1, filepath.Join(dir, "b.png")); err == nil {
		t.Error("expected error for a zero-width surface")
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "particle-field.yml")
	if err := writeDefaultConfig(path, false); err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}
	if err := writeDefaultConfig(path, false); err == nil {
		t.Error("expected refusal to overwrite without --force")
	}
	if err := writeDefaultConfig(path, true); err != nil {
		t.Errorf("expected overwrite with --force: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("written config should validate: %v", err)
	}
}
