package alg

import (
	"github.com/hashkit/sha256/internal/alg/compress"
	"github.com/hashkit/sha256/internal/alg/hash"
)

// HashBlocks folds every whole block of input into state and returns the
// number of bytes consumed. Trailing bytes short of a block are left alone.
func HashBlocks(state *[8]uint32, input []byte) int {
	return hash.HashBlocks(state, input)
}

func Compress(state *[8]uint32, block *[16]uint32) {
	compress.Compress(state, block)
}
