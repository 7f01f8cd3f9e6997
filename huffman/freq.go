package huffman

import (
	"io"

	"github.com/bytepress/huff/bitstream"
	"github.com/bytepress/huff/shared"
)

// Frequencies holds the occurrence count of each chunk value. The EOF
// symbol is never counted from data; the tree builder accounts for it
// separately.
type Frequencies [shared.AlphabetSize]uint64

// Count drains src with 8-bit reads until the end of the stream and
// returns the per-chunk counts. It does not rewind src; rewinding is the
// caller's responsibility.
func Count(src *bitstream.Reader) (*Frequencies, error) {
	freq := new(Frequencies)

	for {
		val, err := src.ReadBits(shared.BitsPerChunk)
		if err == io.EOF {
			return freq, nil
		}
		if err != nil {
			return nil, err
		}
		freq[val]++
	}
}
