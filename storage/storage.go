package storage

import "io"

// AssetStore keeps profile images out-of-band. Store writes the binary
// and returns the relative reference that goes into the employee record.
type AssetStore interface {
	Store(filename string, r io.Reader) (string, error)
}
