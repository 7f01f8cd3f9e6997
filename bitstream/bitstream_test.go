package bitstream_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytepress/huff/bitstream"
	"github.com/bytepress/huff/shared"
)

const (
	Zero = bitstream.Zero
	One  = bitstream.One
)

var (
	NewWriter = bitstream.NewWriter
	NewReader = bitstream.NewReader
	NumBits   = shared.NumBits
)

func TestUint32(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	w := NewWriter(buf)
	r := NewReader(buf)
	from := uint32(1)
	to := uint32(1 << 15)

	// Write.
	for i := from; i < to; i++ {
		err := w.WriteBits(i, uint(NumBits(uint64(i))))
		req.NoError(err)
		err = w.WriteBits(i, 32)
		req.NoError(err)
	}
	err := w.Flush(Zero)
	req.NoError(err)

	// Read.
	for i := from; i < to; i++ {
		num, err := r.ReadBits(uint(NumBits(uint64(i))))
		req.NoError(err)
		req.Equal(i, num)
		num, err = r.ReadBits(32)
		req.NoError(err)
		req.Equal(i, num)
	}
}

func TestMixed(t *testing.T) {
	req := require.New(t)

	from := uint32(1)
	to := uint32(1 << 15)

	for i := from; i < to; i++ {
		buf := bytes.NewBuffer(nil)
		w := NewWriter(buf)
		r := NewReader(buf)

		// Write 3 arbitrary bits.
		err := w.WriteBit(One)
		req.NoError(err)
		err = w.WriteBit(Zero)
		req.NoError(err)
		err = w.WriteBit(One)
		req.NoError(err)

		// Write i.
		numBits := uint(NumBits(uint64(i)))
		err = w.WriteBits(i, numBits)
		req.NoError(err)

		// Write i again.
		err = w.WriteBits(i, numBits)
		req.NoError(err)

		err = w.Flush(Zero)
		req.NoError(err)

		// Read.

		bit, err := r.ReadBit()
		req.NoError(err)
		req.Equal(One, bit)

		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(Zero, bit)

		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(One, bit)

		num, err := r.ReadBits(numBits)
		req.NoError(err)
		req.Equal(i, num)

		num, err = r.ReadBits(numBits)
		req.NoError(err)
		req.Equal(i, num)
	}
}

// Byte layout follows the MSB pattern: the first bit written lands in the
// most significant position of the first byte.
func TestByteLayout(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	w := NewWriter(buf)

	req.NoError(w.WriteBits(0x08, 4))
	req.NoError(w.WriteBits(0x07, 3))
	req.NoError(w.WriteBits(0x05, 3))
	req.NoError(w.WriteBits(0x15, 6))
	req.NoError(w.Flush(Zero))

	req.Equal([]byte{0x8f, 0x55}, buf.Bytes())
}

func TestReaderBoundary(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	w := NewWriter(buf)
	err := w.WriteBits(0xdeadbeef, 32)
	req.NoError(err)
	err = w.Flush(Zero)
	req.NoError(err)

	// Consume exactly the final 32 bits of the stream.
	r := NewReader(buf)
	num, err := r.ReadBits(32)
	req.NoError(err)
	req.Equal(uint32(0xdeadbeef), num)

	// One further read hits the end of the stream.
	_, err = r.ReadBit()
	req.Equal(io.EOF, err)
}

func TestReaderNoPhantomBits(t *testing.T) {
	req := require.New(t)

	// 16 bits total.
	r := NewReader(bytes.NewReader([]byte{0xff, 0xff}))

	_, err := r.ReadBits(12)
	req.NoError(err)

	// 4 bits remain; a wider request must fail rather than zero-pad.
	_, err = r.ReadBits(8)
	req.Equal(io.EOF, err)
}

func TestBitCountRange(t *testing.T) {
	req := require.New(t)

	r := NewReader(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff, 0xff}))
	w := NewWriter(bytes.NewBuffer(nil))

	for _, count := range []uint{0, 33, 64} {
		_, err := r.ReadBits(count)
		req.ErrorIs(err, bitstream.ErrBitCount)

		err = w.WriteBits(0, count)
		req.ErrorIs(err, bitstream.ErrBitCount)
	}
}

func TestReset(t *testing.T) {
	req := require.New(t)

	r := NewReader(bytes.NewReader([]byte{0xca, 0xfe, 0xba, 0xbe}))

	num, err := r.ReadBits(24)
	req.NoError(err)
	req.Equal(uint32(0xcafeba), num)

	err = r.Reset()
	req.NoError(err)

	num, err = r.ReadBits(32)
	req.NoError(err)
	req.Equal(uint32(0xcafebabe), num)
}

func TestResetUnsupported(t *testing.T) {
	req := require.New(t)

	// bytes.Buffer is a pure io.Reader with no way back.
	r := NewReader(bytes.NewBuffer([]byte{0x01}))
	err := r.Reset()
	req.Error(err)
}

func TestFlushPadding(t *testing.T) {
	req := require.New(t)

	for _, tc := range []struct {
		pad      bitstream.Bit
		expected byte
	}{
		{Zero, 0xa0},
		{One, 0xbf},
	} {
		buf := bytes.NewBuffer(nil)
		w := NewWriter(buf)

		req.NoError(w.WriteBits(0x5, 3))
		req.NoError(w.Flush(tc.pad))
		req.Equal([]byte{tc.expected}, buf.Bytes())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken source")
}

func TestReaderSourceFailure(t *testing.T) {
	req := require.New(t)

	r := NewReader(failingReader{})
	_, err := r.ReadBits(8)
	req.Error(err)
	req.NotEqual(io.EOF, err)
}

// eagerFailReader delivers its payload and the error in one Read call.
type eagerFailReader struct {
	data []byte
	err  error
	done bool
}

func (e *eagerFailReader) Read(p []byte) (int, error) {
	if e.done {
		return 0, io.EOF
	}
	e.done = true
	return copy(p, e.data), e.err
}

func TestReaderDeferredSourceError(t *testing.T) {
	req := require.New(t)

	srcErr := errors.New("disk gone")
	r := NewReader(&eagerFailReader{data: []byte{0xab}, err: srcErr})

	// The byte handed over alongside the error must still be readable.
	val, err := r.ReadBits(8)
	req.NoError(err)
	req.Equal(uint32(0xab), val)

	// The error surfaces once the delivered bytes run out.
	_, err = r.ReadBits(8)
	req.ErrorIs(err, srcErr)
}
