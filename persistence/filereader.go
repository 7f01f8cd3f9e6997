// Package persistence binds real files to the byte-stream source and sink
// contracts expected by the compressor: buffered sequential access, plus a
// rewind-to-start capability on the read side for the encoder's second pass.
package persistence

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bytepress/huff/bitstream"
	"github.com/bytepress/huff/shared"
)

type FileReader struct {
	file *os.File
	buf  *bufio.Reader
}

// Compile time checks to ensure that FileReader fully implements the
// interfaces the bit stream relies on.
var (
	_ io.ReadCloser      = (*FileReader)(nil)
	_ bitstream.Resetter = (*FileReader)(nil)
)

func NewFileReader(name string, bufSize uint) (*FileReader, error) {
	file, err := os.OpenFile(name, os.O_RDONLY, shared.OwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open file for reading: %w", err)
	}

	return &FileReader{
		file: file,
		buf:  bufio.NewReaderSize(file, int(bufSize)),
	}, nil
}

func (r *FileReader) Read(p []byte) (int, error) {
	return r.buf.Read(p)
}

// Reset rewinds the reader to the beginning of the file, discarding any
// buffered data.
func (r *FileReader) Reset() error {
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	r.buf.Reset(r.file)
	return nil
}

// Width returns the file size in bytes.
func (r *FileReader) Width() (uint64, error) {
	info, err := r.file.Stat()
	if err != nil {
		return 0, err
	}
	return uint64(info.Size()), nil
}

func (r *FileReader) Close() error {
	r.buf = nil
	return r.file.Close()
}
