package storage

import (
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore writes assets under Dir and hands out references of the
// form "uploads/<uuid><ext>", matching the static mount in cmd/main.go.
type DiskStore struct {
	Dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{Dir: dir}
}

func (s *DiskStore) Store(filename string, r io.Reader) (string, error) {
	// only the extension of the client filename is trusted
	name := uuid.NewString() + filepath.Ext(filename)

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return path.Join("uploads", name), nil
}
