package backend

import (
	"fmt"
	"io"
	"os"
)

// FileBackend is a ByteBackend over an *os.File. When constructed from a
// path via NewFileBackend, it holds an advisory exclusive lock on the
// file for its lifetime so that a Stream is the sole logical owner of
// the underlying file while it is open. The lock is taken only on
// non-Windows platforms; on Windows no lock is held.
type FileBackend struct {
	f      *os.File
	locked bool
	pos    int64
	size   int64
}

// NewFileBackend opens path for reading and writing, creating it if it
// does not exist, and takes an exclusive lock on it (except on Windows,
// where no lock is taken).
func NewFileBackend(path string) (*FileBackend, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("backend: open %s: %w", path, err)
	}
	if err := flockExclusive(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("backend: lock %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		funlock(f)
		f.Close()
		return nil, fmt.Errorf("backend: stat %s: %w", path, err)
	}
	return &FileBackend{f: f, locked: true, size: info.Size()}, nil
}

// NewFileBackendFromHandle wraps an already-open file without taking a
// lock; the caller retains ownership of the handle's lifecycle.
func NewFileBackendFromHandle(f *os.File) (*FileBackend, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("backend: stat: %w", err)
	}
	return &FileBackend{f: f, size: info.Size()}, nil
}

func (b *FileBackend) ReadExact(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("backend: negative read length %d", n)
	}
	out := make([]byte, n)
	got, err := io.ReadFull(io.NewSectionReader(b.f, b.pos, int64(n)), out)
	b.pos += int64(got)
	if err != nil {
		return out[:got], fmt.Errorf("%w: requested %d, got %d", ErrShortRead, n, got)
	}
	return out, nil
}

func (b *FileBackend) Write(p []byte) error {
	n, err := b.f.WriteAt(p, b.pos)
	b.pos += int64(n)
	if b.pos > b.size {
		b.size = b.pos
	}
	if err != nil {
		return fmt.Errorf("backend: write: %w", err)
	}
	return nil
}

func (b *FileBackend) Seek(absolute int64) error {
	if absolute < 0 {
		return fmt.Errorf("backend: negative seek target %d", absolute)
	}
	b.pos = absolute
	return nil
}

func (b *FileBackend) Position() int64 { return b.pos }
func (b *FileBackend) Length() int64   { return b.size }

// Close releases the exclusive lock (if held) and closes the file.
func (b *FileBackend) Close() error {
	if b.locked {
		funlock(b.f)
		b.locked = false
	}
	return b.f.Close()
}

// FileBackend deliberately does not implement BufferExposer: its
// contents live in the OS page cache, not a Go-managed buffer, so
// Stream.ToByteArray must fall back to seek-and-read-full for it.
var _ ByteBackend = (*FileBackend)(nil)
