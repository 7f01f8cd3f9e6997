package persistence

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileReaderAndWriter(t *testing.T) {
	req := require.New(t)
	name := filepath.Join(t.TempDir(), "data")
	payload := []byte("sequential bytes on disk")

	writer, err := NewFileWriter(name, 1<<12)
	req.NoError(err)

	n, err := writer.Write(payload)
	req.NoError(err)
	req.Equal(len(payload), n)

	// Still buffered, nothing has reached the disk.
	width, err := writer.Width()
	req.NoError(err)
	req.Zero(width)

	err = writer.Flush()
	req.NoError(err)
	width, err = writer.Width()
	req.NoError(err)
	req.Equal(uint64(len(payload)), width)

	err = writer.Close()
	req.NoError(err)

	reader, err := NewFileReader(name, 1<<12)
	req.NoError(err)

	width, err = reader.Width()
	req.NoError(err)
	req.Equal(uint64(len(payload)), width)

	read, err := io.ReadAll(reader)
	req.NoError(err)
	req.Equal(payload, read)

	// A second full pass after rewinding.
	err = reader.Reset()
	req.NoError(err)
	read, err = io.ReadAll(reader)
	req.NoError(err)
	req.Equal(payload, read)

	err = reader.Close()
	req.NoError(err)
}

func TestFileReaderMissing(t *testing.T) {
	req := require.New(t)

	_, err := NewFileReader(filepath.Join(t.TempDir(), "no-such-file"), 1<<12)
	req.Error(err)
	req.ErrorIs(err, os.ErrNotExist)
}
