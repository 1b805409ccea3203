package processors

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/adler32"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/rawbytedev/binstream"
)

const (
	zlibCM     = 0x08 // DEFLATE compression method, the only one this library accepts
	zlibCMF    = 0x78 // CM=8, CINFO=7 (32 KiB window)
	zlibFLG    = 0xDA // FDICT=0, FLEVEL=3 (best compression), FCHECK makes header % 31 == 0
	fdictMask  = 0x20
	footerSize = 4
)

// ProcessZlib parses an RFC 1950 zlib container: a 2- or 6-byte header
// (6 when FDICT is set) followed by a DEFLATE payload and a 4-byte
// Adler-32 footer, and returns the inflated payload. The footer is not
// verified — the reference behaviour this library preserves trusts it.
func ProcessZlib(data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, newUnexpectedEof(2, len(data))
	}
	cmf, flg := data[0], data[1]
	if cmf&0x0F != zlibCM {
		return nil, &binstream.NotSupportedError{Reason: fmt.Sprintf("zlib compression method %d", cmf&0x0F)}
	}
	headerLen := 2
	if flg&fdictMask != 0 {
		headerLen = 6
	}
	if len(data) < headerLen+footerSize {
		return nil, newUnexpectedEof(headerLen+footerSize, len(data))
	}
	body := data[headerLen : len(data)-footerSize]

	r := flate.NewReader(bytes.NewReader(body))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("binstream: zlib inflate: %w", err)
	}
	return out, nil
}

// UnprocessZlib synthesizes a zlib container wrapping DEFLATE-compressed
// data: a fixed 2-byte header (CMF=0x78, FLG=0xDA), the compressed
// payload, and a big-endian Adler-32 footer computed over the original
// uncompressed bytes.
func UnprocessZlib(data []byte) ([]byte, error) {
	var body bytes.Buffer
	w, err := flate.NewWriter(&body, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("binstream: zlib deflate: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("binstream: zlib deflate: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("binstream: zlib deflate: %w", err)
	}

	out := make([]byte, 0, 2+body.Len()+footerSize)
	out = append(out, zlibCMF, zlibFLG)
	out = append(out, body.Bytes()...)

	sum := adler32.Checksum(data)
	var footer [footerSize]byte
	binary.BigEndian.PutUint32(footer[:], sum)
	out = append(out, footer[:]...)
	return out, nil
}

func newUnexpectedEof(requested, obtained int) error {
	return &binstream.UnexpectedEofError{Requested: requested, Obtained: obtained}
}
