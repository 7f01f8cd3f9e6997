package shared

const (
	// BitsPerChunk is the width of one input chunk.
	BitsPerChunk = 8

	// BitsPerInt is the widest read/write the bit streams support.
	BitsPerInt = 32

	// AlphabetSize is the number of distinct chunk values.
	AlphabetSize = 1 << BitsPerChunk

	// EOF is the reserved symbol written once per stream, after the last
	// encoded chunk, to mark the end of decodable data.
	EOF = AlphabetSize

	// NumSymbols counts the data chunks plus the EOF symbol.
	NumSymbols = AlphabetSize + 1

	// SymbolBits is the width in which a symbol value is stored in the
	// serialized tree. 9 bits cover 0-256.
	SymbolBits = BitsPerChunk + 1

	// MaxTreeDepth bounds the depth of any well-formed coding tree. A full
	// binary tree over NumSymbols leaves cannot nest deeper.
	MaxTreeDepth = NumSymbols
)

const (
	// MagicNumber identifies the compressed stream format family.
	MagicNumber uint32 = 0xface8200

	// MagicTree marks a stream whose header carries a serialized coding tree.
	// This is the variant the encoder writes and the decoder accepts.
	MagicTree = MagicNumber | 1
)

// OwnerReadWriteExec is a standard owner read / write / exec file permission.
const OwnerReadWriteExec = 0700

// OwnerReadWrite is a standard owner read / write file permission.
const OwnerReadWrite = 0600
