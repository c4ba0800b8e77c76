package png

import "errors"

// Decode errors. Every failure is fatal to the decode in progress; no
// partial image is ever returned.
var (
	ErrSignatureMismatch            = errors.New("png: signature mismatch")
	ErrMalformedChunkOrder          = errors.New("png: malformed chunk order")
	ErrTruncatedChunk               = errors.New("png: truncated chunk")
	ErrUnknownCriticalChunk         = errors.New("png: unknown critical chunk")
	ErrCRCMismatch                  = errors.New("png: chunk CRC mismatch")
	ErrUnsupportedColorType         = errors.New("png: unsupported color type")
	ErrInvalidBitDepth              = errors.New("png: invalid bit depth")
	ErrInvalidDimensions            = errors.New("png: invalid image dimensions")
	ErrUnsupportedCompressionMethod = errors.New("png: unsupported compression method")
	ErrUnsupportedFilterMethod      = errors.New("png: unsupported filter method")
	ErrUnsupportedInterlaceMethod   = errors.New("png: unsupported interlace method")
	ErrMalformedPalette             = errors.New("png: malformed palette")
	ErrMissingRequiredChunk         = errors.New("png: missing required chunk")
	ErrCorruptStream                = errors.New("png: corrupt compressed stream")
	ErrUnsupportedFilterType        = errors.New("png: unsupported scanline filter type")
	ErrPaletteIndexOutOfRange       = errors.New("png: palette index out of range")
)
