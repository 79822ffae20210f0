package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStageWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stage.yaml")
	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(path, []byte("id: a\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := WatchStages(path)
	if err != nil {
		t.Fatalf("WatchStages() failed: %v", err)
	}
	defer w.Close()

	// Files that are not watched are ignored.
	if err := os.WriteFile(other, []byte("id: b\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("id: c\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	want, _ := filepath.Abs(path)
	select {
	case got := <-w.Events:
		if got != want {
			t.Errorf("event for %q, expected %q", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for stage change event")
	}
}

func TestStageWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stage.yaml")
	if err := os.WriteFile(path, []byte("id: a\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := WatchStages(path)
	if err != nil {
		t.Fatalf("WatchStages() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() should be a no-op, got %v", err)
	}
}
