package png

import "github.com/cocosip/go-png-codec/codec"

// Codec adapts the decoder to the codec.Codec interface.
type Codec struct {
	opts DecodeOptions
}

// NewCodec creates a PNG codec with default options.
func NewCodec() *Codec {
	return &Codec{}
}

// NewCodecWithOptions creates a PNG codec that decodes with opts.
func NewCodecWithOptions(opts DecodeOptions) *Codec {
	return &Codec{opts: opts}
}

// Encode is not supported; PNG encoding is out of scope for this codec.
func (c *Codec) Encode(params codec.EncodeParams) ([]byte, error) {
	return nil, codec.ErrEncodeNotSupported
}

// Decode decodes a PNG byte stream into a DecodeResult. Samples of 8
// bits or fewer occupy one byte each; 16-bit samples occupy two bytes,
// big-endian. Indexed images keep their indices in PixelData and carry
// the color table in Palette.
func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	im, err := DecodeWithOptions(data, c.opts)
	if err != nil {
		return nil, err
	}

	res := &codec.DecodeResult{
		Width:      int(im.Header.Width),
		Height:     int(im.Header.Height),
		Components: im.Header.Channels(),
		BitDepth:   int(im.Header.BitDepth),
	}
	if im.Palette != nil {
		res.Palette = make([][3]uint8, len(im.Palette))
		for i, e := range im.Palette {
			res.Palette[i] = [3]uint8{e.R, e.G, e.B}
		}
	}

	if im.Header.BitDepth == 16 {
		res.PixelData = make([]byte, 2*len(im.Pix))
		for i, s := range im.Pix {
			res.PixelData[2*i] = byte(s >> 8)
			res.PixelData[2*i+1] = byte(s)
		}
	} else {
		res.PixelData = make([]byte, len(im.Pix))
		for i, s := range im.Pix {
			res.PixelData[i] = byte(s)
		}
	}
	return res, nil
}

// MediaType returns the IANA media type for PNG.
func (c *Codec) MediaType() string {
	return "image/png"
}

// Name returns a human-readable name for this codec.
func (c *Codec) Name() string {
	return "png"
}

// Sniff reports whether data begins with the PNG signature.
func (c *Codec) Sniff(data []byte) bool {
	return len(data) >= len(pngSignature) && string(data[:len(pngSignature)]) == pngSignature
}

// init automatically registers the codec
func init() {
	codec.Register(NewCodec())
}
