package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrUnknownFormat is returned when no registered codec recognizes the data
	ErrUnknownFormat = errors.New("unknown image format")

	// ErrInvalidParameter is returned when encoding/decoding parameters are invalid
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEncodeNotSupported is returned by decode-only codecs
	ErrEncodeNotSupported = errors.New("encoding not supported")
)
