package bitstream

import (
	"errors"
	"fmt"
	"io"
)

// Reader reads bits from an io.Reader.
//
// Bytes are batched into an internal buffer and shifted through a wide
// accumulator, so only occasional refills touch the underlying source.
type Reader struct {
	src io.Reader
	buf []byte
	r   int // next unread position in buf
	w   int // end of valid data in buf

	// The low `bits` bits of acc are valid; the next bit to be delivered
	// is the most significant of them.
	acc  uint64
	bits uint

	// Source error delivered alongside data, held until the buffered
	// bytes are consumed.
	err error
}

// NewReader returns a new instance of Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		src: r,
		buf: make([]byte, defaultBufSize),
	}
}

// ReadBits reads the next count bits from the stream, count in [1,32], and
// returns them in the low bits of the result, in stream order.
//
// If fewer than count bits remain it returns io.EOF, even when some bits
// were still available; no partial values are produced.
func (br *Reader) ReadBits(count uint) (uint32, error) {
	if count < 1 || count > 32 {
		return 0, fmt.Errorf("%w: %d", ErrBitCount, count)
	}

	for br.bits < count {
		byt, err := br.readByte()
		if err != nil {
			return 0, err
		}
		br.acc = br.acc<<8 | uint64(byt)
		br.bits += 8
	}

	br.bits -= count
	val := uint32(br.acc >> br.bits)
	br.acc &= 1<<br.bits - 1

	return val, nil
}

// ReadBit reads the next single bit from the stream, MSB first.
func (br *Reader) ReadBit() (Bit, error) {
	if br.bits == 0 {
		byt, err := br.readByte()
		if err != nil {
			return Zero, err
		}
		br.acc = uint64(byt)
		br.bits = 8
	}

	br.bits--
	bit := Bit(br.acc>>br.bits&1 == 1)
	br.acc &= 1<<br.bits - 1

	return bit, nil
}

// Reset rewinds the reader to the start of the stream, enabling a second
// full pass without reopening the underlying source. The source must
// implement either Resetter or io.Seeker.
func (br *Reader) Reset() error {
	switch src := br.src.(type) {
	case Resetter:
		if err := src.Reset(); err != nil {
			return err
		}
	case io.Seeker:
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return err
		}
	default:
		return errors.New("source does not support rewinding")
	}

	br.r = 0
	br.w = 0
	br.acc = 0
	br.bits = 0
	br.err = nil

	return nil
}

// Close closes the underlying source if it implements io.Closer.
func (br *Reader) Close() error {
	if c, ok := br.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (br *Reader) readByte() (byte, error) {
	for br.r == br.w {
		if br.err != nil {
			err := br.err
			br.err = nil
			return 0, err
		}
		n, err := br.src.Read(br.buf)
		if n == 0 {
			if err == nil || err == io.EOF {
				return 0, io.EOF
			}
			return 0, err
		}
		if err != nil && err != io.EOF {
			br.err = err
		}
		br.r = 0
		br.w = n
	}

	byt := br.buf[br.r]
	br.r++
	return byt, nil
}
