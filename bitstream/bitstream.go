// Package bitstream provides wrappers for io.Writer and io.Reader to allow
// bit-granularity access to the stream, following the MSB pattern, where
// the most-significant bits of each byte are written/read first.
package bitstream

import "errors"

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// ErrBitCount is returned when a requested bit count is outside of [1,32].
var ErrBitCount = errors.New("bit count is out of range")

const defaultBufSize = 4096

// Resetter is the interface implemented by byte sources which can rewind
// to their start without being reopened.
type Resetter interface {
	Reset() error
}
