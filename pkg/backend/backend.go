// Package backend provides the seekable, random-access byte containers
// that a Stream reads from and writes to.
package backend

import "errors"

// ErrShortRead is wrapped into the caller's UnexpectedEof when a backend
// cannot satisfy a requested read length.
var ErrShortRead = errors.New("backend: short read")

// ByteBackend is a seekable, random-access byte container. Every
// operation is byte-atomic; backends have no notion of bit-level state.
type ByteBackend interface {
	// ReadExact reads exactly n bytes starting at the current position
	// and advances the position by n. It returns ErrShortRead-wrapping
	// error if fewer than n bytes remain.
	ReadExact(n int) ([]byte, error)

	// Write writes p at the current position, growing the backend if
	// necessary, and advances the position by len(p).
	Write(p []byte) error

	// Seek moves the position to the given absolute offset.
	Seek(absolute int64) error

	// Position returns the current absolute byte offset.
	Position() int64

	// Length returns the total number of bytes currently stored.
	Length() int64

	// Close releases any resource held by the backend (file handles,
	// locks). It is safe to call more than once.
	Close() error
}

// BufferExposer is an optional capability: a backend that can hand back
// its underlying buffer directly enables Stream.ToByteArray to avoid a
// copy. Backends that cannot support this (e.g. file-backed ones) simply
// don't implement it.
type BufferExposer interface {
	// Bytes returns the backend's full contents without copying. The
	// returned slice is only valid until the next mutating call on the
	// backend.
	Bytes() []byte
}
