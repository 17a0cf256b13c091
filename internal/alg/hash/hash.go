package hash

import (
	"unsafe"

	"github.com/hashkit/sha256/internal/alg/compress"
	"github.com/hashkit/sha256/internal/consts"
	"github.com/hashkit/sha256/internal/utils"
)

// HashBlocks folds every whole block of input into state and returns the
// number of bytes consumed.
func HashBlocks(state *[8]uint32, input []byte) int {
	var block [16]uint32

	n := len(input) &^ (consts.BlockLen - 1)
	for i := 0; i < n; i += consts.BlockLen {
		utils.BytesToWords((*[64]uint8)(unsafe.Pointer(&input[i])), &block)
		compress.Compress(state, &block)
	}

	return n
}
