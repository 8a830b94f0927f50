package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStore(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskStore(dir)

	ref, err := s.Store("photo.png", strings.NewReader("fake-png-bytes"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !strings.HasPrefix(ref, "uploads/") {
		t.Errorf("ref %q should be relative to the uploads mount", ref)
	}
	if !strings.HasSuffix(ref, ".png") {
		t.Errorf("ref %q should keep the extension", ref)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(ref)))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "fake-png-bytes" {
		t.Errorf("stored content = %q", data)
	}

	// two uploads of the same filename must not collide
	ref2, err := s.Store("photo.png", strings.NewReader("other"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if ref2 == ref {
		t.Errorf("second ref %q collides with first", ref2)
	}
}

func TestDiskStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s := NewDiskStore(dir)
	if _, err := s.Store("x.jpg", strings.NewReader("x")); err != nil {
		t.Fatalf("Store into missing dir: %v", err)
	}
}
