package png

import (
	"encoding/binary"
	"fmt"
)

// ColorType identifies the PNG color model. ISO/IEC 15948 §6.1.
type ColorType uint8

const (
	ColorGrayscale      ColorType = 0
	ColorTrueColor      ColorType = 2
	ColorIndexed        ColorType = 3
	ColorGrayscaleAlpha ColorType = 4
	ColorTrueColorAlpha ColorType = 6
)

// InterlaceMethod identifies the pixel transmission order.
type InterlaceMethod uint8

const (
	InterlaceNone  InterlaceMethod = 0
	InterlaceAdam7 InterlaceMethod = 1
)

// colorTypeInfo describes a color model: samples per pixel and the bit
// depths the standard permits for it. Fixed table, never mutated.
type colorTypeInfo struct {
	channels      int
	allowedDepths []uint8
}

var colorTypes = map[ColorType]colorTypeInfo{
	ColorGrayscale:      {channels: 1, allowedDepths: []uint8{1, 2, 4, 8, 16}},
	ColorTrueColor:      {channels: 3, allowedDepths: []uint8{8, 16}},
	ColorIndexed:        {channels: 1, allowedDepths: []uint8{1, 2, 4, 8}},
	ColorGrayscaleAlpha: {channels: 2, allowedDepths: []uint8{8, 16}},
	ColorTrueColorAlpha: {channels: 4, allowedDepths: []uint8{8, 16}},
}

func (t ColorType) String() string {
	switch t {
	case ColorGrayscale:
		return "grayscale"
	case ColorTrueColor:
		return "truecolor"
	case ColorIndexed:
		return "indexed"
	case ColorGrayscaleAlpha:
		return "grayscale+alpha"
	case ColorTrueColorAlpha:
		return "truecolor+alpha"
	}
	return fmt.Sprintf("colortype(%d)", uint8(t))
}

// Header holds the decoded IHDR fields. Compression and filter method
// are validated to be zero and not retained; the standard defines no
// other values.
type Header struct {
	Width     uint32
	Height    uint32
	BitDepth  uint8
	ColorType ColorType
	Interlace InterlaceMethod
}

// Channels returns the number of samples per pixel for the color type.
func (h *Header) Channels() int {
	return colorTypes[h.ColorType].channels
}

// bytesPerPixel is the filter offset: the number of whole bytes one
// pixel occupies, at least 1 for sub-byte depths. ISO/IEC 15948 §9.2.
func (h *Header) bytesPerPixel() int {
	bpp := h.Channels() * int(h.BitDepth) / 8
	if bpp < 1 {
		bpp = 1
	}
	return bpp
}

// rowBytes is the byte length of one unfiltered scanline holding width
// pixels, rounded up to whole bytes.
func (h *Header) rowBytes(width int) int {
	return (h.Channels()*int(h.BitDepth)*width + 7) / 8
}

// parseHeader decodes and validates the 13-byte IHDR payload.
func parseHeader(data []byte) (*Header, error) {
	if len(data) != 13 {
		return nil, fmt.Errorf("%w: IHDR payload is %d bytes, want 13", ErrTruncatedChunk, len(data))
	}

	h := &Header{
		Width:     binary.BigEndian.Uint32(data[0:4]),
		Height:    binary.BigEndian.Uint32(data[4:8]),
		BitDepth:  data[8],
		ColorType: ColorType(data[9]),
	}
	compression := data[10]
	filter := data[11]
	interlace := data[12]

	if h.Width == 0 || h.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, h.Width, h.Height)
	}
	info, ok := colorTypes[h.ColorType]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedColorType, data[9])
	}
	if !depthAllowed(info.allowedDepths, h.BitDepth) {
		return nil, fmt.Errorf("%w: depth %d not valid for %s", ErrInvalidBitDepth, h.BitDepth, h.ColorType)
	}
	if compression != 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCompressionMethod, compression)
	}
	if filter != 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFilterMethod, filter)
	}
	if interlace != uint8(InterlaceNone) && interlace != uint8(InterlaceAdam7) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedInterlaceMethod, interlace)
	}
	h.Interlace = InterlaceMethod(interlace)
	return h, nil
}

func depthAllowed(allowed []uint8, depth uint8) bool {
	for _, d := range allowed {
		if d == depth {
			return true
		}
	}
	return false
}
