package png

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// InflateFunc turns one zlib-compressed byte sequence into raw bytes.
// The entropy-coding backend is a collaborator of the decoder, not part
// of it; callers and tests may substitute their own implementation
// through DecodeOptions.
type InflateFunc func(compressed []byte) ([]byte, error)

// inflateZlib is the default backend, backed by compress/zlib.
func inflateZlib(compressed []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, zr); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// assemblePayload concatenates every IDAT payload in file order and
// runs the backend once. PNG defines a single compressed stream that
// encoders may split across IDAT chunks at arbitrary byte boundaries,
// so the pieces must never be inflated independently.
func assemblePayload(idat [][]byte, inflate InflateFunc) ([]byte, error) {
	var size int
	for _, part := range idat {
		size += len(part)
	}
	compressed := make([]byte, 0, size)
	for _, part := range idat {
		compressed = append(compressed, part...)
	}

	raw, err := inflate(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	return raw, nil
}
