package utils

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestBytesToWords(t *testing.T) {
	var bytes [64]uint8
	for i := range bytes {
		bytes[i] = byte(i)
	}

	var words [16]uint32
	BytesToWords(&bytes, &words)

	assert.Equal(t, words[0], uint32(0x00010203))
	assert.Equal(t, words[1], uint32(0x04050607))
	assert.Equal(t, words[15], uint32(0x3c3d3e3f))
}

func TestStateToBytes(t *testing.T) {
	state := [8]uint32{
		0x00010203, 0x04050607, 0x08090a0b, 0x0c0d0e0f,
		0x10111213, 0x14151617, 0x18191a1b, 0x1c1d1e1f,
	}

	var out [32]uint8
	StateToBytes(&state, &out)

	for i := range out {
		assert.Equal(t, out[i], uint8(i))
	}
}
