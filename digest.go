package sha256

import (
	"encoding/hex"

	"github.com/hashkit/sha256/internal/consts"
	"github.com/hashkit/sha256/internal/utils"
	"github.com/pkg/errors"
)

// Digest is a finished SHA-256 hash.
type Digest [consts.Size]byte

// String returns the digest as 64 lowercase hex characters: each state word
// as 8 zero-padded digits, in state order.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest parses the 64 character hex form produced by String. Upper
// case digits are accepted.
func ParseDigest(s string) (d Digest, err error) {
	if len(s) != 2*consts.Size {
		return d, errors.Wrapf(ErrInvalidInput, "digest has %d characters, want %d", len(s), 2*consts.Size)
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return Digest{}, errors.Wrapf(ErrInvalidInput, "digest %q: %v", s, err)
	}
	return d, nil
}

func digestOf(state *[8]uint32) (d Digest) {
	utils.StateToBytes(state, (*[consts.Size]uint8)(&d))
	return d
}
