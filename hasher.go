package sha256

import (
	"github.com/hashkit/sha256/internal/alg"
	"github.com/hashkit/sha256/internal/consts"
	"github.com/hashkit/sha256/internal/padding"
)

//
// hasher contains state for a sha256 hash
//

type hasher struct {
	state [8]uint32
	len   uint64 // total bytes written
	bufn  int    // bytes pending in buf
	buf   [consts.BlockLen]byte
}

func (a *hasher) reset() {
	a.state = consts.IV
	a.len = 0
	a.bufn = 0
}

func (a *hasher) update(buf []byte) {
	a.len += uint64(len(buf))

	if a.bufn > 0 {
		n := copy(a.buf[a.bufn:], buf)
		a.bufn += n
		buf = buf[n:]

		if a.bufn < consts.BlockLen {
			return
		}

		alg.HashBlocks(&a.state, a.buf[:])
		a.bufn = 0
	}

	n := alg.HashBlocks(&a.state, buf)
	a.bufn = copy(a.buf[:], buf[n:])
}

func (a *hasher) updateString(buf string) {
	var input [consts.BlockLen * 16]byte

	for len(buf) > 0 {
		n := copy(input[:], buf)
		a.update(input[:n])
		buf = buf[n:]
	}
}

// finalize pads a copy of the state so that the hasher stays usable.
func (a *hasher) finalize() Digest {
	state := a.state

	tail := padding.Tail(a.buf[:a.bufn], a.len)
	for i := range tail {
		alg.Compress(&state, &tail[i])
	}

	return digestOf(&state)
}
