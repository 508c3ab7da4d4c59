package client

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("new file storage: %v", err)
	}

	if _, err := storage.Load(); err != ErrNoSnapshot {
		t.Fatalf("expected ErrNoSnapshot before first save, got %v", err)
	}

	if err := storage.Save([]byte(`{"token":"abc"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := storage.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `{"token":"abc"}` {
		t.Fatalf("unexpected snapshot: %s", data)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dir, sessionFileName))
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Fatalf("snapshot must be owner-only, got %v", perm)
		}
	}
}

func TestFileStorage_ClearIdempotent(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("new file storage: %v", err)
	}

	if err := storage.Save([]byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := storage.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := storage.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if _, err := storage.Load(); err != ErrNoSnapshot {
		t.Fatalf("expected ErrNoSnapshot after clear, got %v", err)
	}
}
