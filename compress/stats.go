package compress

// Stats describes one compression or decompression run.
type Stats struct {
	// Chunks is the number of 8-bit chunks consumed from the source
	// (compression) or emitted to the sink (decompression).
	Chunks uint64

	// HeaderBits counts the magic number plus the serialized tree.
	HeaderBits uint64

	// BodyBits counts the concatenated codewords including the EOF
	// codeword, excluding the final byte padding.
	BodyBits uint64
}

// CompressedBytes returns the total size of the compressed stream,
// including the zero padding of the final byte.
func (s *Stats) CompressedBytes() uint64 {
	return (s.HeaderBits + s.BodyBits + 7) / 8
}

// Ratio returns the compressed size relative to the input size.
// It returns 0 for an empty input.
func (s *Stats) Ratio() float64 {
	if s.Chunks == 0 {
		return 0
	}
	return float64(s.CompressedBytes()) / float64(s.Chunks)
}
