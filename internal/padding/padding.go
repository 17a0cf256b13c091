// Package padding implements the Merkle–Damgård message padding: a single
// set bit, zero bits up to 56 bytes mod 64, then the message length in bits
// as a 64-bit big-endian integer.
package padding

import (
	"encoding/binary"
	"unsafe"

	"github.com/hashkit/sha256/internal/consts"
	"github.com/hashkit/sha256/internal/utils"
)

// Block is one 512-bit block as sixteen big-endian words.
type Block = [16]uint32

// BlockCount returns the number of padded blocks for an n byte message,
// ceil((8n + 1 + 64) / 512), without overflowing for large n.
func BlockCount(n uint64) uint64 {
	return (n+consts.LenFieldLen)/consts.BlockLen + 1
}

// Lengths returns the two words of the length field for a total byte count.
// The bit length wraps modulo 2^64 once total reaches 2^61.
func Lengths(total uint64) (hi, lo uint32) {
	bits := total << 3
	return uint32(bits >> 32), uint32(bits)
}

// Pad returns every block of the padded message.
func Pad(msg []byte) []Block {
	total := uint64(len(msg))
	out := make([]Block, BlockCount(total))

	full := len(msg) &^ (consts.BlockLen - 1)
	for i := 0; i < full; i += consts.BlockLen {
		utils.BytesToWords((*[64]uint8)(unsafe.Pointer(&msg[i])), &out[i/consts.BlockLen])
	}

	copy(out[full/consts.BlockLen:], Tail(msg[full:], total))
	return out
}

// Tail pads the final partial block of a message of total bytes. rem must
// hold the last total mod 64 bytes of the message. It returns one block, or
// two when rem leaves no room for the marker byte and length field.
func Tail(rem []byte, total uint64) []Block {
	if uint64(len(rem)) != total%consts.BlockLen {
		panic("padding: remainder does not match total length")
	}

	var buf [2 * consts.BlockLen]byte
	n := copy(buf[:], rem)
	buf[n] = 0x80

	blocks := 1
	if n >= consts.BlockLen-consts.LenFieldLen {
		blocks = 2
	}

	end := blocks * consts.BlockLen
	binary.BigEndian.PutUint64(buf[end-consts.LenFieldLen:end], total<<3)

	out := make([]Block, blocks)
	for i := range out {
		utils.BytesToWords((*[64]uint8)(unsafe.Pointer(&buf[i*consts.BlockLen])), &out[i])
	}
	return out
}
