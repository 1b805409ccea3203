package binstream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadBytesExact(t *testing.T) {
	s := NewStreamFromBytes([]byte{1, 2, 3, 4})
	got, err := s.ReadBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got)
}

func TestReadBytesRejectsNegativeCount(t *testing.T) {
	s := NewStreamFromBytes([]byte{1})
	_, err := s.ReadBytes(-1)
	var target *OutOfRangeError
	require.ErrorAs(t, err, &target)
}

func TestReadBytesFullConsumesRemainder(t *testing.T) {
	s := NewStreamFromBytes([]byte{1, 2, 3, 4})
	_, err := s.ReadBytes(1)
	require.NoError(t, err)
	rest, err := s.ReadBytesFull()
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3, 4}, rest)
	require.True(t, s.IsEof())
}

func TestReadBytesTermExcludeAndConsume(t *testing.T) {
	s := NewStreamFromBytes([]byte("abc\x00def"))
	got, err := s.ReadBytesTerm(0, false, true, true)
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))
	rest, err := s.ReadBytesFull()
	require.NoError(t, err)
	require.Equal(t, "def", string(rest))
}

func TestReadBytesTermWithoutConsumeLeavesTerminator(t *testing.T) {
	s := NewStreamFromBytes([]byte("abc\x00def"))
	_, err := s.ReadBytesTerm(0, false, false, true)
	require.NoError(t, err)
	rest, err := s.ReadBytesFull()
	require.NoError(t, err)
	require.Equal(t, "\x00def", string(rest))
}

func TestReadBytesTermMissingTerminatorEosError(t *testing.T) {
	s := NewStreamFromBytes([]byte("abc"))
	_, err := s.ReadBytesTerm(0, false, true, true)
	var target *UnexpectedEofError
	require.ErrorAs(t, err, &target)
}

func TestReadBytesTermMissingTerminatorNoError(t *testing.T) {
	s := NewStreamFromBytes([]byte("abc"))
	got, err := s.ReadBytesTerm(0, false, true, false)
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))
}

func TestEnsureFixedContentsMismatch(t *testing.T) {
	s := NewStreamFromBytes([]byte("XYZ"))
	err := s.EnsureFixedContents([]byte("ABC"))
	var target *ValidationError
	require.ErrorAs(t, err, &target)
}

func TestEnsureFixedContentsMatch(t *testing.T) {
	s := NewStreamFromBytes([]byte("ABC"))
	require.NoError(t, s.EnsureFixedContents([]byte("ABC")))
}

func TestBytesStripRight(t *testing.T) {
	require.Equal(t, []byte("hi"), BytesStripRight([]byte("hi\x00\x00"), 0))
	require.Equal(t, []byte{}, BytesStripRight([]byte{0, 0}, 0))
}

func TestBytesTerminate(t *testing.T) {
	require.Equal(t, []byte("hi"), BytesTerminate([]byte("hi\x00rest"), 0, false))
	require.Equal(t, []byte("hi\x00"), BytesTerminate([]byte("hi\x00rest"), 0, true))
	require.Equal(t, []byte("nohit"), BytesTerminate([]byte("nohit"), 0, true))
}

func TestWriteBytesLimitPadsAndTerminates(t *testing.T) {
	s := NewStreamForWriting()
	require.NoError(t, s.WriteBytesLimit([]byte("hi"), 5, 0, 0x20))
	out, err := s.ToByteArray()
	require.NoError(t, err)
	require.Equal(t, []byte{'h', 'i', 0x00, 0x20, 0x20}, out)
}

func TestWriteBytesLimitExactFitOmitsTerminator(t *testing.T) {
	s := NewStreamForWriting()
	require.NoError(t, s.WriteBytesLimit([]byte("hello"), 5, 0, 0x20))
	out, err := s.ToByteArray()
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), out)
}

func TestWriteBytesLimitRejectsOversizedContent(t *testing.T) {
	s := NewStreamForWriting()
	err := s.WriteBytesLimit([]byte("toolong"), 3, 0, 0x20)
	var target *InvalidArgumentError
	require.ErrorAs(t, err, &target)
}
