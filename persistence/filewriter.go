package persistence

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bytepress/huff/shared"
)

type FileWriter struct {
	file *os.File
	buf  *bufio.Writer
}

// A compile time check to ensure that FileWriter fully implements the sink
// contract.
var _ io.WriteCloser = (*FileWriter)(nil)

func NewFileWriter(name string, bufSize uint) (*FileWriter, error) {
	file, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, shared.OwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open file for writing: %w", err)
	}

	return &FileWriter{
		file: file,
		buf:  bufio.NewWriterSize(file, int(bufSize)),
	}, nil
}

func (w *FileWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *FileWriter) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush disk writer: %w", err)
	}
	return nil
}

// Width returns the number of bytes written to disk so far, not counting
// data still sitting in the buffer.
func (w *FileWriter) Width() (uint64, error) {
	info, err := w.file.Stat()
	if err != nil {
		return 0, err
	}
	return uint64(info.Size()), nil
}

func (w *FileWriter) Close() error {
	if err := w.buf.Flush(); err != nil {
		return err
	}
	w.buf = nil

	if err := w.file.Close(); err != nil {
		return err
	}
	w.file = nil

	return nil
}
