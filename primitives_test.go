package binstream

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestReadWriteIntegerRoundTrips(t *testing.T) {
	cases := []struct {
		name  string
		write func(s *Stream) error
		read  func(s *Stream) (any, error)
		want  any
	}{
		{"u1", func(s *Stream) error { return s.WriteU1(0xAB) }, func(s *Stream) (any, error) { return s.ReadU1() }, uint8(0xAB)},
		{"s1", func(s *Stream) error { return s.WriteS1(-5) }, func(s *Stream) (any, error) { return s.ReadS1() }, int8(-5)},
		{"u2be", func(s *Stream) error { return s.WriteU2BE(0x1234) }, func(s *Stream) (any, error) { return s.ReadU2BE() }, uint16(0x1234)},
		{"u2le", func(s *Stream) error { return s.WriteU2LE(0x1234) }, func(s *Stream) (any, error) { return s.ReadU2LE() }, uint16(0x1234)},
		{"u4be", func(s *Stream) error { return s.WriteU4BE(0xDEADBEEF) }, func(s *Stream) (any, error) { return s.ReadU4BE() }, uint32(0xDEADBEEF)},
		{"u4le", func(s *Stream) error { return s.WriteU4LE(0xDEADBEEF) }, func(s *Stream) (any, error) { return s.ReadU4LE() }, uint32(0xDEADBEEF)},
		{"u8be", func(s *Stream) error { return s.WriteU8BE(0x0102030405060708) }, func(s *Stream) (any, error) { return s.ReadU8BE() }, uint64(0x0102030405060708)},
		{"u8le", func(s *Stream) error { return s.WriteU8LE(0x0102030405060708) }, func(s *Stream) (any, error) { return s.ReadU8LE() }, uint64(0x0102030405060708)},
		{"f4be", func(s *Stream) error { return s.WriteF4BE(3.5) }, func(s *Stream) (any, error) { return s.ReadF4BE() }, float32(3.5)},
		{"f8le", func(s *Stream) error { return s.WriteF8LE(-2.25) }, func(s *Stream) (any, error) { return s.ReadF8LE() }, float64(-2.25)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewStreamForWriting()
			require.NoError(t, c.write(s))
			out, err := s.ToByteArray()
			require.NoError(t, err)
			r := NewStreamFromBytes(out)
			got, err := c.read(r)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestU2EndiannessDiffersFromU2Swapped(t *testing.T) {
	s := NewStreamForWriting()
	require.NoError(t, s.WriteU2BE(0x0102))
	out, err := s.ToByteArray()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, out)

	s2 := NewStreamForWriting()
	require.NoError(t, s2.WriteU2LE(0x0102))
	out2, err := s2.ToByteArray()
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x01}, out2)
}

func TestFloatRoundTripPreservesBits(t *testing.T) {
	f := func(v float64) bool {
		s := NewStreamForWriting()
		if err := s.WriteF8BE(v); err != nil {
			return false
		}
		out, err := s.ToByteArray()
		if err != nil {
			return false
		}
		r := NewStreamFromBytes(out)
		got, err := r.ReadF8BE()
		if err != nil {
			return false
		}
		return math.Float64bits(got) == math.Float64bits(v) || (math.IsNaN(got) && math.IsNaN(v))
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestReadU1ShortReadReturnsUnexpectedEof(t *testing.T) {
	s := NewStreamFromBytes(nil)
	_, err := s.ReadU1()
	var target *UnexpectedEofError
	require.ErrorAs(t, err, &target)
}

func TestPrimitiveReadsAlignAfterBitRead(t *testing.T) {
	s := NewStreamFromBytes([]byte{0xFF, 0x42})
	_, err := s.ReadBitsBE(3)
	require.NoError(t, err)
	b, err := s.ReadU1()
	require.NoError(t, err)
	require.EqualValues(t, 0x42, b)
}
