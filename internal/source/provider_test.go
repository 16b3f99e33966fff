package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReadAll(t *testing.T) {
	text, err := ReadAll(strings.NewReader("+a\n-b\n"))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if text != "+a\n-b\n" {
		t.Errorf("text = %q", text)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changes.diff")
	if err := os.WriteFile(path, []byte("@@ -1 +1 @@\n+x"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if text != "@@ -1 +1 @@\n+x" {
		t.Errorf("text = %q", text)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.diff")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWatch_EmitsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "changes.diff")
	if err := os.WriteFile(path, []byte("+a"), 0o644); err != nil {
		t.Fatal(err)
	}

	events, err := Watch(path, 0)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(path, []byte("+b"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-events:
		if ev.Path != path {
			t.Errorf("event path = %q, want %q", ev.Path, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after write")
	}
}

func TestWatch_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "changes.diff")
	if err := os.WriteFile(path, []byte("+a"), 0o644); err != nil {
		t.Fatal(err)
	}

	events, err := Watch(path, 0)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// A rapid write burst collapses into a single reload event.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("+b"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-events:
	case <-time.After(2 * time.Second):
		t.Fatal("no event after write burst")
	}

	select {
	case ev := <-events:
		t.Errorf("burst produced a second event: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "changes.diff")
	if err := os.WriteFile(path, []byte("+a"), 0o644); err != nil {
		t.Fatal(err)
	}

	events, err := Watch(path, 0)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-events:
		t.Errorf("unexpected event for sibling file: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}
