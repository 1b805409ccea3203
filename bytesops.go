package binstream

import "github.com/rawbytedev/binstream/internal/common"

const maxByteRequest = 1<<31 - 1

// ReadBytes reads exactly count bytes, aligning to a byte boundary
// first. count must be in [0, 2^31-1].
func (s *Stream) ReadBytes(count int) ([]byte, error) {
	if count < 0 || count > maxByteRequest {
		return nil, &OutOfRangeError{Value: int64(count)}
	}
	return s.readN(count)
}

// ReadBytesFull reads every remaining byte in the stream.
func (s *Stream) ReadBytesFull() ([]byte, error) {
	remaining := s.backend.Length() - s.backend.Position()
	if remaining < 0 {
		remaining = 0
	}
	return s.readN(int(remaining))
}

// ReadBytesTerm reads bytes up to a terminator byte. includeTerm keeps
// the terminator in the returned slice; consumeTerm advances the
// stream past it regardless. If the terminator is never found and
// eosError is true, ReadBytesTerm returns ErrUnexpectedEof; otherwise
// it returns everything read up to end of stream.
func (s *Stream) ReadBytesTerm(term byte, includeTerm, consumeTerm, eosError bool) ([]byte, error) {
	s.AlignToByte()
	var out []byte
	for {
		b, err := s.readByte()
		if err != nil {
			if eosError {
				return nil, newUnexpectedEof(len(out)+1, len(out))
			}
			return out, nil
		}
		if b == term {
			if includeTerm {
				out = append(out, b)
			}
			if !consumeTerm {
				if err := s.backend.Seek(s.backend.Position() - 1); err != nil {
					return nil, err
				}
			}
			return out, nil
		}
		out = append(out, b)
	}
}

// EnsureFixedContents reads len(expected) bytes and returns a
// ValidationError if they don't match expected exactly. It is the
// runtime half of a schema's "contents" fixed-byte-sequence check.
func (s *Stream) EnsureFixedContents(expected []byte) error {
	actual, err := s.ReadBytes(len(expected))
	if err != nil {
		return err
	}
	if common.ByteArrayCompare(actual, expected) != 0 {
		return &ValidationError{Kind: ValidationNotEqual, Expected: expected, Actual: actual, Pos: s.Pos()}
	}
	return nil
}

// BytesStripRight returns src with every trailing occurrence of padByte
// removed.
func BytesStripRight(src []byte, padByte byte) []byte {
	end := len(src)
	for end > 0 && src[end-1] == padByte {
		end--
	}
	out := make([]byte, end)
	copy(out, src[:end])
	return out
}

// BytesTerminate returns the prefix of src up to the first occurrence
// of term, optionally including the terminator itself. If term does
// not occur, the whole of src is returned.
func BytesTerminate(src []byte, term byte, includeTerm bool) []byte {
	for i, b := range src {
		if b == term {
			end := i
			if includeTerm {
				end++
			}
			out := make([]byte, end)
			copy(out, src[:end])
			return out
		}
	}
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

// WriteBytes writes p verbatim, aligning to a byte boundary first.
func (s *Stream) WriteBytes(p []byte) error {
	return s.writeN(p)
}

// WriteBytesLimit writes p into a fixed-size field of size bytes. If
// len(p) < size, a single term byte is written right after p, and the
// rest of the field is filled with padByte. It is an
// InvalidArgumentError for p to be longer than size.
func (s *Stream) WriteBytesLimit(p []byte, size int, term, padByte byte) error {
	if len(p) > size {
		return &InvalidArgumentError{Reason: "content longer than the fixed field size"}
	}
	buf := make([]byte, size)
	copy(buf, p)
	for i := len(p); i < size; i++ {
		buf[i] = padByte
	}
	if len(p) < size {
		buf[len(p)] = term
	}
	return s.writeN(buf)
}
