package bitstream

import (
	"fmt"
	"io"
)

// Writer writes bits to an io.Writer.
//
// Bits accumulate into whole bytes, which are batched through an internal
// buffer before reaching the underlying sink.
type Writer struct {
	dst io.Writer
	out []byte

	// The low `bits` bits of acc are pending; bits is always < 8 between
	// calls.
	acc  uint64
	bits uint
}

// NewWriter returns a new instance of Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		dst: w,
		out: make([]byte, 0, defaultBufSize),
	}
}

// WriteBits appends the low count bits of val to the stream, count in
// [1,32], most-significant bit first.
func (bw *Writer) WriteBits(val uint32, count uint) error {
	if count < 1 || count > 32 {
		return fmt.Errorf("%w: %d", ErrBitCount, count)
	}

	if count < 32 {
		val &= 1<<count - 1
	}
	bw.acc = bw.acc<<count | uint64(val)
	bw.bits += count

	for bw.bits >= 8 {
		bw.bits -= 8
		if err := bw.push(byte(bw.acc >> bw.bits)); err != nil {
			return err
		}
	}
	bw.acc &= 1<<bw.bits - 1

	return nil
}

// WriteBit appends a single bit to the stream, MSB first.
func (bw *Writer) WriteBit(bit Bit) error {
	bw.acc <<= 1
	if bit {
		bw.acc |= 1
	}
	bw.bits++

	if bw.bits == 8 {
		bw.bits = 0
		byt := byte(bw.acc)
		bw.acc = 0
		return bw.push(byt)
	}

	return nil
}

// Flush completes the currently pending byte by padding it with bit, then
// drains the internal buffer to the sink.
func (bw *Writer) Flush(bit Bit) error {
	for bw.bits != 0 {
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}

	return bw.flushBuffer()
}

// Close zero-pads the final partial byte, flushes, and closes the
// underlying sink if it implements io.Closer.
func (bw *Writer) Close() error {
	if err := bw.Flush(Zero); err != nil {
		return err
	}

	if c, ok := bw.dst.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (bw *Writer) push(byt byte) error {
	bw.out = append(bw.out, byt)
	if len(bw.out) == cap(bw.out) {
		return bw.flushBuffer()
	}
	return nil
}

func (bw *Writer) flushBuffer() error {
	if len(bw.out) == 0 {
		return nil
	}

	if _, err := bw.dst.Write(bw.out); err != nil {
		return err
	}
	bw.out = bw.out[:0]

	return nil
}
