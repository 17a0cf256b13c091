package compress_unrolled

import (
	"math/bits"

	"github.com/hashkit/sha256/internal/consts"
)

func round(a, b, c, d, e, f, g, h, kw uint32) (uint32, uint32) {
	t1 := h + (bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
		((e & f) ^ (^e & g)) + kw
	t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
		((a & b) ^ (a & c) ^ (b & c))
	return d + t1, t1 + t2
}

// word returns schedule word t, keeping only the last 16 words in w.
func word(w *[16]uint32, t int) uint32 {
	if t < 16 {
		return w[t]
	}
	x, y := w[(t+1)&15], w[(t+14)&15]
	w[t&15] += (bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)) +
		w[(t+9)&15] +
		(bits.RotateLeft32(y, -17) ^ bits.RotateLeft32(y, -19) ^ (y >> 10))
	return w[t&15]
}

// Compress folds one block into state.
func Compress(state *[8]uint32, block *[16]uint32) {
	w := *block
	k := &consts.K

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < 64; i += 8 {
		d, h = round(a, b, c, d, e, f, g, h, k[i+0]+word(&w, i+0))
		c, g = round(h, a, b, c, d, e, f, g, k[i+1]+word(&w, i+1))
		b, f = round(g, h, a, b, c, d, e, f, k[i+2]+word(&w, i+2))
		a, e = round(f, g, h, a, b, c, d, e, k[i+3]+word(&w, i+3))
		h, d = round(e, f, g, h, a, b, c, d, k[i+4]+word(&w, i+4))
		g, c = round(d, e, f, g, h, a, b, c, k[i+5]+word(&w, i+5))
		f, b = round(c, d, e, f, g, h, a, b, k[i+6]+word(&w, i+6))
		e, a = round(b, c, d, e, f, g, h, a, k[i+7]+word(&w, i+7))
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
