package sha256

import (
	"strings"
)

type vector struct {
	name string
	data func() []byte
	hash string
}

func str(s string) func() []byte { return func() []byte { return []byte(s) } }

// vectors are the published FIPS 180 examples plus a few well known strings.
var vectors = []vector{
	{
		name: "Empty",
		data: str(""),
		hash: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	},
	{
		name: "ABC",
		data: str("abc"),
		hash: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	},
	{
		name: "448Bits",
		data: str("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
		hash: "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
	},
	{
		name: "896Bits",
		data: str("abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmn" +
			"hijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu"),
		hash: "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1",
	},
	{
		name: "QuickBrownFox",
		data: str("The quick brown fox jumps over the lazy dog"),
		hash: "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592",
	},
	{
		name: "HelloWorld",
		data: str("hello world"),
		hash: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
	},
	{
		name: "MillionA",
		data: str(strings.Repeat("a", 1000000)),
		hash: "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
	},
}

// patterned returns n bytes of the usual 251-cycle test pattern.
func patterned(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i) % 251
	}
	return buf
}
