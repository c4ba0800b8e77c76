package codec

// Codec is the universal interface for all image codecs
type Codec interface {
	// Encode encodes pixel data
	Encode(params EncodeParams) ([]byte, error)

	// Decode decodes a complete container byte stream
	Decode(data []byte) (*DecodeResult, error)

	// MediaType returns the IANA media type (e.g. "image/png")
	MediaType() string

	// Name returns a human-readable name
	Name() string
}

// Sniffer is implemented by codecs that can recognize their own
// container format from a byte prefix.
type Sniffer interface {
	// Sniff reports whether data begins with this codec's magic bytes
	Sniff(data []byte) bool
}

// EncodeParams contains parameters for encoding
type EncodeParams struct {
	PixelData  []byte  // Raw pixel data
	Width      int     // Image width
	Height     int     // Image height
	Components int     // Number of color components (1=grayscale, 3=RGB)
	BitDepth   int     // Bits per sample (1, 2, 4, 8 or 16)
	Options    Options // Codec-specific options
}

// Options is an interface for codec-specific encoding options
type Options interface {
	// Validate checks if the options are valid
	Validate() error
}

// DecodeResult contains the result of decoding
type DecodeResult struct {
	PixelData  []byte     // Decoded samples, one byte each (two big-endian bytes for BitDepth 16)
	Width      int        // Image width
	Height     int        // Image height
	Components int        // Number of color components
	BitDepth   int        // Bits per sample
	Palette    [][3]uint8 // Color table for indexed images, nil otherwise
}

// Indexed reports whether the pixel data holds palette indices
// rather than direct color samples.
func (r *DecodeResult) Indexed() bool {
	return r.Palette != nil
}
