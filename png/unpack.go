package png

import "encoding/binary"

// bitReader is an explicit cursor over MSB-first packed samples. It
// tracks the byte position and the bits already consumed within the
// current byte, and is advanced iteratively.
type bitReader struct {
	data    []byte
	byteOff int
	bitOff  uint
}

// readBits consumes n bits (1..8), most significant first, and returns
// them right-aligned.
func (r *bitReader) readBits(n uint) uint16 {
	var v uint16
	for i := uint(0); i < n; i++ {
		bit := (r.data[r.byteOff] >> (7 - r.bitOff)) & 1
		v = v<<1 | uint16(bit)
		r.bitOff++
		if r.bitOff == 8 {
			r.bitOff = 0
			r.byteOff++
		}
	}
	return v
}

// unpackRow converts one unfiltered scanline into per-sample integers
// in the range [0, 2^bitDepth - 1]. Samples of 8 or 16 bits occupy
// whole bytes, big-endian; sub-byte samples pack MSB-first. Low-order
// padding bits in the final byte of a row are discarded, never
// interpreted as pixel data.
func unpackRow(row []byte, bitDepth uint8, samples int) []uint16 {
	out := make([]uint16, samples)
	switch bitDepth {
	case 16:
		for i := range out {
			out[i] = binary.BigEndian.Uint16(row[2*i:])
		}
	case 8:
		for i := range out {
			out[i] = uint16(row[i])
		}
	default:
		r := bitReader{data: row}
		for i := range out {
			out[i] = r.readBits(uint(bitDepth))
		}
	}
	return out
}
