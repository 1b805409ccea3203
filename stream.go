package binstream

import (
	"github.com/rawbytedev/binstream/pkg/backend"
	"github.com/sirupsen/logrus"
)

// Stream is a bidirectional bit/byte cursor over a ByteBackend. It is
// not safe for concurrent use: exactly one logical parser or serializer
// owns a Stream at a time.
type Stream struct {
	backend     backend.ByteBackend
	ownsBackend bool

	bitsLeft      uint8  // 0..7 residual bits buffered outside the backend
	bits          uint64 // low bitsLeft bits are the only meaningful ones
	bitsLe        bool   // direction of the last bit-level operation
	bitsWriteMode bool   // true once a bit-level write has run

	writeBack *WriteBackHandler
	children  []*Stream

	log *logrus.Entry
}

// Option configures a Stream at construction time.
type Option func(*Stream)

// WithLogger attaches a structured logger used for debug-level tracing
// of stream construction and of each anchor patched during write-back.
// The functions in pkg/processors take no Stream and do not log. A nil
// entry (the default) disables all logging.
func WithLogger(entry *logrus.Entry) Option {
	return func(s *Stream) { s.log = entry }
}

func newStream(b backend.ByteBackend, owns bool, opts ...Option) *Stream {
	s := &Stream{backend: b, ownsBackend: owns}
	for _, opt := range opts {
		opt(s)
	}
	s.debugf("stream constructed")
	return s
}

// NewStream wraps an existing ByteBackend. The Stream does not take
// ownership of it: Close will not close the backend.
func NewStream(b backend.ByteBackend, opts ...Option) *Stream {
	return newStream(b, false, opts...)
}

// NewStreamFromBytes wraps buf in a MemoryBackend, taking ownership of
// it (Close is then a no-op release, since MemoryBackend holds no
// external resource).
func NewStreamFromBytes(buf []byte, opts ...Option) *Stream {
	return newStream(backend.NewMemoryBackend(buf), true, opts...)
}

// NewStreamOfSize allocates a zero-filled backend of the given size,
// for serializers that write a fixed-size structure in place.
func NewStreamOfSize(size int, opts ...Option) *Stream {
	return newStream(backend.NewZeroFilledBackend(size), true, opts...)
}

// NewStreamForWriting returns a Stream over an empty, growable backend,
// the common case for building serialized output from scratch.
func NewStreamForWriting(opts ...Option) *Stream {
	return newStream(backend.NewEmptyBackend(), true, opts...)
}

// NewStreamFromFile opens path (creating it if absent) under an
// exclusive lock and returns a Stream that owns the resulting backend.
func NewStreamFromFile(path string, opts ...Option) (*Stream, error) {
	fb, err := backend.NewFileBackend(path)
	if err != nil {
		return nil, err
	}
	return newStream(fb, true, opts...), nil
}

func (s *Stream) debugf(format string, args ...any) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}

// Pos returns the stream's logical position: the backend cursor, plus
// one more byte if a partial byte is currently buffered in write mode
// (that byte is not yet committed to the backend but already occupies
// space that a following anchor computation must account for).
func (s *Stream) Pos() int64 {
	pos := s.backend.Position()
	if s.bitsWriteMode && s.bitsLeft > 0 {
		pos++
	}
	return pos
}

// Size returns the backend's total byte length.
func (s *Stream) Size() int64 {
	return s.backend.Length()
}

// IsEof reports whether the stream has been fully consumed: the
// backend cursor is at or past the end, and there's no residual read
// state pending (write mode is always "at the end" once the cursor
// reaches it, since a write extends the backend rather than being
// bounded by it).
func (s *Stream) IsEof() bool {
	atEnd := s.backend.Position() >= s.backend.Length()
	return atEnd && (s.bitsWriteMode || s.bitsLeft == 0)
}

// Seek moves the stream to an absolute byte position. Any residual bit
// state is flushed (write mode) or discarded (read mode) first, per
// the alignment discipline in AlignToByte/WriteAlignToByte.
func (s *Stream) Seek(absolute int64) error {
	if s.bitsWriteMode {
		if err := s.WriteAlignToByte(); err != nil {
			return err
		}
	} else {
		s.AlignToByte()
	}
	return s.backend.Seek(absolute)
}

// Backend exposes the underlying ByteBackend for advanced callers (e.g.
// to check the BufferExposer capability before calling ToByteArray).
func (s *Stream) Backend() backend.ByteBackend {
	return s.backend
}

// Close flushes any pending partial write byte and releases the
// backend if this Stream owns it.
func (s *Stream) Close() error {
	if s.bitsWriteMode && s.bitsLeft > 0 {
		if err := s.WriteAlignToByte(); err != nil {
			return err
		}
	}
	if s.ownsBackend {
		return s.backend.Close()
	}
	return nil
}

// ToByteArray returns the stream's full contents. When the backend
// exposes its buffer directly (MemoryBackend) and that buffer's extent
// matches the logical length, the slice is returned without copying;
// otherwise the current position is saved, the stream is read from
// position 0 to its end, and the position is restored.
func (s *Stream) ToByteArray() ([]byte, error) {
	if exposer, ok := s.backend.(backend.BufferExposer); ok {
		buf := exposer.Bytes()
		if int64(len(buf)) == s.backend.Length() {
			return buf, nil
		}
	}
	saved := s.backend.Position()
	if err := s.backend.Seek(0); err != nil {
		return nil, err
	}
	out, err := s.backend.ReadExact(int(s.backend.Length()))
	if seekErr := s.backend.Seek(saved); seekErr != nil && err == nil {
		err = seekErr
	}
	return out, err
}
