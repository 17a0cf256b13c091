package compress

import (
	"github.com/hashkit/sha256/internal/alg/compress/compress_pure"
	"github.com/hashkit/sha256/internal/alg/compress/compress_unrolled"
	"github.com/hashkit/sha256/internal/consts"
)

// Compress folds one block into state. The purego build tag swaps in the
// straight-line reference form.
func Compress(state *[8]uint32, block *[16]uint32) {
	if consts.Pure {
		compress_pure.Compress(state, block)
	} else {
		compress_unrolled.Compress(state, block)
	}
}
