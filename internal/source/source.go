package source

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// File is a flat in-memory view of a binary file, loaded once at open and
// never mutated while viewing.
type File struct {
	path string
	data []byte
}

// Open reads the whole file into memory.
func Open(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, errors.Wrap(err, "opening input file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", abs)
	}

	return &File{path: abs, data: data}, nil
}

func (f *File) Path() string { return f.path }

func (f *File) Size() int64 {
	return int64(len(f.data))
}

// Bytes returns up to count bytes starting at offset, fewer only at end of
// file, and nothing for an out-of-range offset.
func (f *File) Bytes(offset int64, count int) ([]byte, error) {
	if offset < 0 || offset >= int64(len(f.data)) || count <= 0 {
		return nil, nil
	}
	end := offset + int64(count)
	if end > int64(len(f.data)) {
		end = int64(len(f.data))
	}
	out := make([]byte, end-offset)
	copy(out, f.data[offset:end])
	return out, nil
}

func (f *File) ByteAt(offset int64) (byte, bool) {
	if offset < 0 || offset >= int64(len(f.data)) {
		return 0, false
	}
	return f.data[offset], true
}
