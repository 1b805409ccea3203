// Package binstream is the runtime support library for generated
// binary-format parsers and serializers: a bidirectional bit/byte
// stream engine that mixes byte-aligned and unaligned bit-level access,
// endianness-normalized integer and float I/O, terminator-bounded byte
// reads, and a deferred write-back protocol for child streams whose
// final size is only known once they themselves have been flushed.
//
// # Quick start
//
//	s := binstream.NewStreamFromBytes([]byte{0xB2, 0x01})
//	hi, _ := s.ReadBitsBE(3)  // 5
//	lo, _ := s.ReadBitsBE(5)  // 18
//
// A Stream owns a pkg/backend.ByteBackend (an in-memory buffer or a
// locked file) plus the residual-bit state described in the package's
// design notes. Byte-level processing that doesn't need a Stream at
// all — XOR masking, circular rotation, zlib framing — lives in
// pkg/processors and operates directly on byte slices.
package binstream
