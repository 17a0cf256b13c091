// Package sha256 implements the SHA-256 message digest.
package sha256

import (
	"github.com/hashkit/sha256/internal/alg"
	"github.com/hashkit/sha256/internal/consts"
	"github.com/hashkit/sha256/internal/padding"
	"github.com/pkg/errors"
)

// Size is the length of a digest in bytes.
const Size = consts.Size

// BlockSize is the length of a message block in bytes.
const BlockSize = consts.BlockLen

// Hasher is a hash.Hash for SHA-256.
type Hasher struct {
	h hasher
}

// New returns a new Hasher.
func New() *Hasher {
	h := new(Hasher)
	h.h.reset()
	return h
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.h.update(p)
	return len(p), nil
}

// WriteString is like Write but specialized to strings to avoid allocations.
func (h *Hasher) WriteString(p string) (int, error) {
	h.h.updateString(p)
	return len(p), nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Clone returns a new Hasher with the same internal state.
//
// Modifying the resulting Hasher will not modify the original Hasher, and vice versa.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{h: h.h}
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface. It returns the most
// natural size to write to the Hasher.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it. The Hasher can keep
// accepting writes afterwards.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.h.finalize()
	return append(b, d[:]...)
}

// Digest returns the digest of everything written so far.
func (h *Hasher) Digest() Digest {
	return h.h.finalize()
}

// Sum256 returns the SHA-256 digest of the data.
func Sum256(data []byte) Digest {
	state := consts.IV

	blocks := padding.Pad(data)
	for i := range blocks {
		alg.Compress(&state, &blocks[i])
	}

	return digestOf(&state)
}

// Hash returns the lowercase hex SHA-256 digest of the data.
func Hash(data []byte) string {
	return Sum256(data).String()
}

// HashString returns the lowercase hex SHA-256 digest of s.
func HashString(s string) string {
	h := New()
	_, _ = h.WriteString(s)
	return h.Digest().String()
}

// HashN returns the lowercase hex SHA-256 digest of the first n bytes of
// buf. It fails with ErrInvalidInput if buf does not hold n bytes.
func HashN(buf []byte, n int) (string, error) {
	if n < 0 || n > len(buf) {
		return "", errors.Wrapf(ErrInvalidInput,
			"declared length %d with a buffer of %d bytes", n, len(buf))
	}
	return Hash(buf[:n]), nil
}
