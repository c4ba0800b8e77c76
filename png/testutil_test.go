package png

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"testing"
)

// pngBuilder assembles well-formed PNG streams for tests.
type pngBuilder struct {
	buf bytes.Buffer
}

func newPNGBuilder() *pngBuilder {
	b := &pngBuilder{}
	b.buf.WriteString(pngSignature)
	return b
}

// chunk appends one chunk with a correct CRC.
func (b *pngBuilder) chunk(typ string, payload []byte) *pngBuilder {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(payload)))
	b.buf.Write(length[:])

	h := crc32.NewIEEE()
	h.Write([]byte(typ))
	h.Write(payload)
	b.buf.WriteString(typ)
	b.buf.Write(payload)

	var crc [4]byte
	binary.BigEndian.PutUint32(crc[:], h.Sum32())
	b.buf.Write(crc[:])
	return b
}

func (b *pngBuilder) bytes() []byte {
	return b.buf.Bytes()
}

// ihdrPayload builds the 13-byte IHDR payload.
func ihdrPayload(w, h uint32, depth uint8, ct ColorType, interlace InterlaceMethod) []byte {
	p := make([]byte, 13)
	binary.BigEndian.PutUint32(p[0:4], w)
	binary.BigEndian.PutUint32(p[4:8], h)
	p[8] = depth
	p[9] = uint8(ct)
	p[10] = 0 // compression method
	p[11] = 0 // filter method
	p[12] = uint8(interlace)
	return p
}

// deflate zlib-compresses a raw scanline stream.
func deflate(t *testing.T, raw []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("compress: %v", err)
	}
	return buf.Bytes()
}

// scanlines prefixes each row with a filter-type byte.
func scanlines(filter byte, rows ...[]byte) []byte {
	var out []byte
	for _, row := range rows {
		out = append(out, filter)
		out = append(out, row...)
	}
	return out
}

// grayPNG builds a complete non-interlaced 8-bit grayscale image with
// unfiltered rows.
func grayPNG(t *testing.T, rows ...[]byte) []byte {
	t.Helper()
	return newPNGBuilder().
		chunk("IHDR", ihdrPayload(uint32(len(rows[0])), uint32(len(rows)), 8, ColorGrayscale, InterlaceNone)).
		chunk("IDAT", deflate(t, scanlines(ftNone, rows...))).
		chunk("IEND", nil).
		bytes()
}
