// Package png implements a PNG container decoder: chunk
// demultiplexing, IHDR/PLTE interpretation, IDAT assembly, scanline
// unfiltering, sample unpacking and Adam7 reassembly, per
// ISO/IEC 15948. Encoding and ancillary chunks (tEXt, gAMA, tRNS, ...)
// are out of scope.
package png

import "fmt"

// DecodeOptions tunes a single decode. The zero value is the standard
// behavior.
type DecodeOptions struct {
	// Inflate substitutes the decompression backend. nil selects
	// compress/zlib.
	Inflate InflateFunc

	// SkipCRC disables per-chunk CRC-32 verification. Some real-world
	// writers emit nonstandard checksums.
	SkipCRC bool
}

// Image is the fully reconstructed raster: a dense sample buffer plus
// the metadata needed to interpret it. It is the only artifact that
// outlives the decode.
type Image struct {
	Header  Header
	Palette []PaletteEntry // non-nil only for indexed images

	// Pix holds Width*Height*Channels samples in row-major order, one
	// uint16 per sample regardless of bit depth. Indexed images store
	// palette indices, resolved against Palette by the caller.
	Pix []uint16
}

// SampleAt returns channel c of the pixel at (x, y).
func (im *Image) SampleAt(x, y, c int) uint16 {
	ch := im.Header.Channels()
	return im.Pix[(y*int(im.Header.Width)+x)*ch+c]
}

// Decode decodes a complete PNG byte stream into an Image.
func Decode(data []byte) (*Image, error) {
	return DecodeWithOptions(data, DecodeOptions{})
}

// DecodeHeader decodes only the IHDR metadata, without touching pixel
// data. The stream's leading chunk is still CRC-checked.
func DecodeHeader(data []byte) (*Header, error) {
	if len(data) < len(pngSignature) || string(data[:len(pngSignature)]) != pngSignature {
		return nil, ErrSignatureMismatch
	}
	r := &chunkReader{data: data, offset: len(pngSignature)}
	c, err := r.next(true)
	if err != nil {
		return nil, err
	}
	if c.Type != "IHDR" {
		return nil, fmt.Errorf("%w: first chunk is %q, want IHDR", ErrMalformedChunkOrder, c.Type)
	}
	return parseHeader(c.Data)
}

// DecodeWithOptions decodes a complete PNG byte stream into an Image.
// One decode is synchronous and owns all of its buffers; independent
// images may be decoded concurrently.
func DecodeWithOptions(data []byte, opts DecodeOptions) (*Image, error) {
	chunks, err := splitChunks(data, !opts.SkipCRC)
	if err != nil {
		return nil, err
	}
	dm, err := demux(chunks)
	if err != nil {
		return nil, err
	}

	hdr, err := parseHeader(dm.header.Data)
	if err != nil {
		return nil, err
	}

	var palette []PaletteEntry
	if dm.palette != nil {
		if palette, err = parsePalette(dm.palette.Data); err != nil {
			return nil, err
		}
	}
	if hdr.ColorType == ColorIndexed && palette == nil {
		return nil, fmt.Errorf("%w: indexed image without PLTE", ErrMissingRequiredChunk)
	}

	inflate := opts.Inflate
	if inflate == nil {
		inflate = inflateZlib
	}
	stream, err := assemblePayload(dm.idat, inflate)
	if err != nil {
		return nil, err
	}

	im := &Image{
		Header:  *hdr,
		Palette: palette,
		Pix:     make([]uint16, int(hdr.Width)*int(hdr.Height)*hdr.Channels()),
	}

	if hdr.Interlace == InterlaceAdam7 {
		// Each pass consumes a contiguous, non-overlapping slice of the
		// single inflated stream, in strict pass order.
		off := 0
		for _, pass := range adam7 {
			n, err := im.reconstructPass(stream[off:], pass)
			if err != nil {
				return nil, err
			}
			off += n
		}
	} else {
		if _, err := im.reconstructPass(stream, progressive); err != nil {
			return nil, err
		}
	}
	return im, nil
}

// reconstructPass unfilters and unpacks the scanlines of one pass and
// scatters the samples into the raster. It returns the number of
// stream bytes the pass consumed.
func (im *Image) reconstructPass(stream []byte, pass interlacePass) (int, error) {
	width := int(im.Header.Width)
	channels := im.Header.Channels()

	pw, ph := pass.size(width, int(im.Header.Height))
	if pw == 0 || ph == 0 {
		return 0, nil
	}

	rowSize := im.Header.rowBytes(pw)
	rows, err := unfilterPass(stream, rowSize, ph, im.Header.bytesPerPixel())
	if err != nil {
		return 0, err
	}

	for py, row := range rows {
		samples := unpackRow(row, im.Header.BitDepth, pw*channels)
		if im.Header.ColorType == ColorIndexed {
			for _, s := range samples {
				if int(s) >= len(im.Palette) {
					return 0, fmt.Errorf("%w: index %d, palette has %d entries", ErrPaletteIndexOutOfRange, s, len(im.Palette))
				}
			}
		}

		y := pass.yOffset + py*pass.yStride
		for px := 0; px < pw; px++ {
			x := pass.xOffset + px*pass.xStride
			base := (y*width + x) * channels
			copy(im.Pix[base:base+channels], samples[px*channels:(px+1)*channels])
		}
	}
	return ph * (1 + rowSize), nil
}
