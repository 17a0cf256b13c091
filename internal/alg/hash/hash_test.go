package hash_test

import (
	"testing"

	"github.com/hashkit/sha256/internal/alg/compress/compress_pure"
	"github.com/hashkit/sha256/internal/alg/hash"
	"github.com/hashkit/sha256/internal/consts"
	"github.com/hashkit/sha256/internal/utils"
	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestHashBlocks(t *testing.T) {
	var input [1024]byte

	for n := 0; n <= len(input); n++ {
		for i := 0; i < n; i++ {
			input[i] = byte(i+1) % 251
		}

		var s1 [8]uint32
		for i := range &s1 {
			s1[i] = pcg.Uint32()
		}
		s2 := s1

		consumed := hash.HashBlocks(&s1, input[:n])
		assert.Equal(t, consumed, n/consts.BlockLen*consts.BlockLen)

		for i := 0; i+consts.BlockLen <= n; i += consts.BlockLen {
			var buf [64]byte
			var block [16]uint32
			copy(buf[:], input[i:])
			utils.BytesToWords(&buf, &block)
			compress_pure.Compress(&s2, &block)
		}

		assert.Equal(t, s1, s2)
	}
}

func TestHashBlocks_Empty(t *testing.T) {
	state := consts.IV
	assert.Equal(t, hash.HashBlocks(&state, nil), 0)
	assert.Equal(t, state, consts.IV)
}
