package shared

import (
	"errors"
	"fmt"
)

var (
	ErrBadMagic    = errors.New("bad magic number")
	ErrTruncated   = errors.New("unexpected end of compressed stream")
	ErrTreeTooDeep = errors.New("tree header nests deeper than the maximum depth")
	ErrLeafRoot    = errors.New("tree header encodes a single leaf")
)

// FormatError reports a malformed compressed stream, preserving which
// section of the stream failed to parse.
type FormatError struct {
	Section string
	Err     error
}

func (e FormatError) Error() string {
	return fmt.Sprintf("invalid stream %v: %v", e.Section, e.Err)
}

func (e FormatError) Unwrap() error {
	return e.Err
}
