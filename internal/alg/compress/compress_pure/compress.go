package compress_pure

import (
	"math/bits"

	"github.com/hashkit/sha256/internal/consts"
)

func ch(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

func bsig0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bsig1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func ssig0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func ssig1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

// Schedule expands a block into the 64 word message schedule.
func Schedule(block *[16]uint32, w *[64]uint32) {
	copy(w[:16], block[:])
	for t := 16; t < 64; t++ {
		w[t] = w[t-16] + ssig0(w[t-15]) + w[t-7] + ssig1(w[t-2])
	}
}

// Compress folds one block into state.
func Compress(state *[8]uint32, block *[16]uint32) {
	var w [64]uint32
	Schedule(block, &w)

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for t := 0; t < 64; t++ {
		t1 := h + bsig1(e) + ch(e, f, g) + consts.K[t] + w[t]
		t2 := bsig0(a) + maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}
