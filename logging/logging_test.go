package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs each test with logs/ created under a scratch directory
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}

func TestSetup_Discards(t *testing.T) {
	inTempDir(t)

	if f := Setup(false); f != nil {
		f.Close()
		t.Fatal("expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log writer = %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(Dir); !os.IsNotExist(err) {
		t.Error("logs directory should not be created without debug")
	}
}

func TestSetup_WritesFile(t *testing.T) {
	inTempDir(t)

	f := Setup(true)
	if f == nil {
		t.Fatal("expected log file with debug")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("debug log must not write to the terminal")
	}

	log.Printf("Called N-42 via entry")

	data, err := os.ReadFile(filepath.Join(Dir, FileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "N-42") {
		t.Errorf("log file missing message, got %q", data)
	}
}

func TestSetup_RotatesOversized(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(Dir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(Dir, FileName)
	if err := os.WriteFile(logPath, make([]byte, MaxSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := Setup(true)
	if f == nil {
		t.Fatal("expected log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(Dir)
	if err != nil {
		t.Fatal(err)
	}
	var rotated int
	for _, e := range entries {
		if e.Name() != FileName && strings.HasPrefix(e.Name(), "bingo-") {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("rotated files = %d, want 1", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > MaxSize {
		t.Errorf("fresh log size = %d, want below %d", info.Size(), MaxSize)
	}
}
