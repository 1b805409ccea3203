package backend

import "fmt"

// MemoryBackend is a ByteBackend over a growable in-memory buffer. It is
// the backend generated code uses for parsing an already-loaded blob or
// for building one up from scratch during serialization.
type MemoryBackend struct {
	buf []byte
	pos int64
}

// NewMemoryBackend wraps an existing buffer for reading or writing in
// place. The backend takes ownership of buf; callers must not mutate it
// afterward except through the backend.
func NewMemoryBackend(buf []byte) *MemoryBackend {
	return &MemoryBackend{buf: buf}
}

// NewZeroFilledBackend allocates a zero-filled backend of the given
// size, for serializers that write a fixed-size structure in place.
func NewZeroFilledBackend(size int) *MemoryBackend {
	return &MemoryBackend{buf: make([]byte, size)}
}

// NewEmptyBackend returns a backend with no bytes, growing as data is
// written to it — the common case when building output from scratch.
func NewEmptyBackend() *MemoryBackend {
	return &MemoryBackend{buf: make([]byte, 0, 64)}
}

func (m *MemoryBackend) ReadExact(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("backend: negative read length %d", n)
	}
	avail := int64(len(m.buf)) - m.pos
	if int64(n) > avail {
		return nil, fmt.Errorf("%w: requested %d, got %d", ErrShortRead, n, avail)
	}
	out := m.buf[m.pos : m.pos+int64(n)]
	m.pos += int64(n)
	return out, nil
}

func (m *MemoryBackend) Write(p []byte) error {
	end := m.pos + int64(len(p))
	if end > int64(len(m.buf)) {
		grown := make([]byte, end)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[m.pos:end], p)
	m.pos = end
	return nil
}

func (m *MemoryBackend) Seek(absolute int64) error {
	if absolute < 0 {
		return fmt.Errorf("backend: negative seek target %d", absolute)
	}
	m.pos = absolute
	return nil
}

func (m *MemoryBackend) Position() int64 { return m.pos }
func (m *MemoryBackend) Length() int64   { return int64(len(m.buf)) }
func (m *MemoryBackend) Close() error    { return nil }

// Bytes implements BufferExposer: the whole logical buffer, no copy.
func (m *MemoryBackend) Bytes() []byte { return m.buf }
