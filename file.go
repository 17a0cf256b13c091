package sha256

import (
	"io"
	"os"
)

// HashFile reads the whole file at path and returns its hex digest. Read
// failures are returned as *IOError.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	return Hash(data), nil
}

// HashReader returns the hex digest of everything read from r, streaming it
// through a Hasher instead of reading it fully into memory.
func HashReader(r io.Reader) (string, error) {
	h := New()
	if _, err := io.Copy(h, r); err != nil {
		return "", &IOError{Op: "read", Err: err}
	}
	return h.Digest().String(), nil
}
