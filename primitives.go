package binstream

import (
	"encoding/binary"
	"math"
)

func (s *Stream) readN(n int) ([]byte, error) {
	s.AlignToByte()
	before := s.backend.Position()
	buf, err := s.backend.ReadExact(n)
	if err != nil {
		avail := s.backend.Length() - before
		if avail < 0 {
			avail = 0
		}
		return nil, newUnexpectedEof(n, int(avail))
	}
	return buf, nil
}

func (s *Stream) writeN(p []byte) error {
	if err := s.WriteAlignToByte(); err != nil {
		return err
	}
	return s.backend.Write(p)
}

// ReadS1 reads a signed 8-bit integer.
func (s *Stream) ReadS1() (int8, error) {
	b, err := s.readN(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// ReadU1 reads an unsigned 8-bit integer.
func (s *Stream) ReadU1() (uint8, error) {
	b, err := s.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteS1 writes a signed 8-bit integer.
func (s *Stream) WriteS1(v int8) error { return s.writeN([]byte{byte(v)}) }

// WriteU1 writes an unsigned 8-bit integer.
func (s *Stream) WriteU1(v uint8) error { return s.writeN([]byte{v}) }

// ReadS2BE reads a big-endian signed 16-bit integer.
func (s *Stream) ReadS2BE() (int16, error) {
	v, err := s.readU2BE()
	return int16(v), err
}

// ReadU2BE reads a big-endian unsigned 16-bit integer.
func (s *Stream) ReadU2BE() (uint16, error) { return s.readU2BE() }

func (s *Stream) readU2BE() (uint16, error) {
	b, err := s.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadS2LE reads a little-endian signed 16-bit integer.
func (s *Stream) ReadS2LE() (int16, error) {
	v, err := s.readU2LE()
	return int16(v), err
}

// ReadU2LE reads a little-endian unsigned 16-bit integer.
func (s *Stream) ReadU2LE() (uint16, error) { return s.readU2LE() }

func (s *Stream) readU2LE() (uint16, error) {
	b, err := s.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// WriteS2BE writes a big-endian signed 16-bit integer.
func (s *Stream) WriteS2BE(v int16) error { return s.WriteU2BE(uint16(v)) }

// WriteU2BE writes a big-endian unsigned 16-bit integer.
func (s *Stream) WriteU2BE(v uint16) error {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, v)
	return s.writeN(buf)
}

// WriteS2LE writes a little-endian signed 16-bit integer.
func (s *Stream) WriteS2LE(v int16) error { return s.WriteU2LE(uint16(v)) }

// WriteU2LE writes a little-endian unsigned 16-bit integer.
func (s *Stream) WriteU2LE(v uint16) error {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, v)
	return s.writeN(buf)
}

// ReadS4BE reads a big-endian signed 32-bit integer.
func (s *Stream) ReadS4BE() (int32, error) {
	v, err := s.readU4BE()
	return int32(v), err
}

// ReadU4BE reads a big-endian unsigned 32-bit integer.
func (s *Stream) ReadU4BE() (uint32, error) { return s.readU4BE() }

func (s *Stream) readU4BE() (uint32, error) {
	b, err := s.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadS4LE reads a little-endian signed 32-bit integer.
func (s *Stream) ReadS4LE() (int32, error) {
	v, err := s.readU4LE()
	return int32(v), err
}

// ReadU4LE reads a little-endian unsigned 32-bit integer.
func (s *Stream) ReadU4LE() (uint32, error) { return s.readU4LE() }

func (s *Stream) readU4LE() (uint32, error) {
	b, err := s.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// WriteS4BE writes a big-endian signed 32-bit integer.
func (s *Stream) WriteS4BE(v int32) error { return s.WriteU4BE(uint32(v)) }

// WriteU4BE writes a big-endian unsigned 32-bit integer.
func (s *Stream) WriteU4BE(v uint32) error {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return s.writeN(buf)
}

// WriteS4LE writes a little-endian signed 32-bit integer.
func (s *Stream) WriteS4LE(v int32) error { return s.WriteU4LE(uint32(v)) }

// WriteU4LE writes a little-endian unsigned 32-bit integer.
func (s *Stream) WriteU4LE(v uint32) error {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return s.writeN(buf)
}

// ReadS8BE reads a big-endian signed 64-bit integer.
func (s *Stream) ReadS8BE() (int64, error) {
	v, err := s.readU8BE()
	return int64(v), err
}

// ReadU8BE reads a big-endian unsigned 64-bit integer.
func (s *Stream) ReadU8BE() (uint64, error) { return s.readU8BE() }

func (s *Stream) readU8BE() (uint64, error) {
	b, err := s.readN(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadS8LE reads a little-endian signed 64-bit integer.
func (s *Stream) ReadS8LE() (int64, error) {
	v, err := s.readU8LE()
	return int64(v), err
}

// ReadU8LE reads a little-endian unsigned 64-bit integer.
func (s *Stream) ReadU8LE() (uint64, error) { return s.readU8LE() }

func (s *Stream) readU8LE() (uint64, error) {
	b, err := s.readN(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// WriteS8BE writes a big-endian signed 64-bit integer.
func (s *Stream) WriteS8BE(v int64) error { return s.WriteU8BE(uint64(v)) }

// WriteU8BE writes a big-endian unsigned 64-bit integer.
func (s *Stream) WriteU8BE(v uint64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return s.writeN(buf)
}

// WriteS8LE writes a little-endian signed 64-bit integer.
func (s *Stream) WriteS8LE(v int64) error { return s.WriteU8LE(uint64(v)) }

// WriteU8LE writes a little-endian unsigned 64-bit integer.
func (s *Stream) WriteU8LE(v uint64) error {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return s.writeN(buf)
}

// ReadF4BE reads a big-endian IEEE-754 single-precision float.
func (s *Stream) ReadF4BE() (float32, error) {
	v, err := s.readU4BE()
	return math.Float32frombits(v), err
}

// ReadF4LE reads a little-endian IEEE-754 single-precision float.
func (s *Stream) ReadF4LE() (float32, error) {
	v, err := s.readU4LE()
	return math.Float32frombits(v), err
}

// WriteF4BE writes a big-endian IEEE-754 single-precision float.
func (s *Stream) WriteF4BE(v float32) error { return s.WriteU4BE(math.Float32bits(v)) }

// WriteF4LE writes a little-endian IEEE-754 single-precision float.
func (s *Stream) WriteF4LE(v float32) error { return s.WriteU4LE(math.Float32bits(v)) }

// ReadF8BE reads a big-endian IEEE-754 double-precision float.
func (s *Stream) ReadF8BE() (float64, error) {
	v, err := s.readU8BE()
	return math.Float64frombits(v), err
}

// ReadF8LE reads a little-endian IEEE-754 double-precision float.
func (s *Stream) ReadF8LE() (float64, error) {
	v, err := s.readU8LE()
	return math.Float64frombits(v), err
}

// WriteF8BE writes a big-endian IEEE-754 double-precision float.
func (s *Stream) WriteF8BE(v float64) error { return s.WriteU8BE(math.Float64bits(v)) }

// WriteF8LE writes a little-endian IEEE-754 double-precision float.
func (s *Stream) WriteF8LE(v float64) error { return s.WriteU8LE(math.Float64bits(v)) }
