package png

import (
	"errors"
	"testing"
)

func TestParsePalette(t *testing.T) {
	entries, err := parsePalette([]byte{1, 2, 3, 4, 5, 6, 255, 0, 128})
	if err != nil {
		t.Fatalf("parsePalette failed: %v", err)
	}
	want := []PaletteEntry{{1, 2, 3}, {4, 5, 6}, {255, 0, 128}}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestParsePaletteMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"one stray byte", []byte{1}},
		{"length 3n+2", []byte{1, 2, 3, 4, 5}},
		{"too many entries", make([]byte, 3*257)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parsePalette(tt.data); !errors.Is(err, ErrMalformedPalette) {
				t.Errorf("err = %v, want ErrMalformedPalette", err)
			}
		})
	}
}

func TestIndexedWithoutPalette(t *testing.T) {
	stream := newPNGBuilder().
		chunk("IHDR", ihdrPayload(1, 1, 8, ColorIndexed, InterlaceNone)).
		chunk("IDAT", deflate(t, scanlines(ftNone, []byte{0}))).
		chunk("IEND", nil).
		bytes()

	if _, err := Decode(stream); !errors.Is(err, ErrMissingRequiredChunk) {
		t.Errorf("err = %v, want ErrMissingRequiredChunk", err)
	}
}

// A PLTE on a non-indexed image is structurally decodable and harmless.
func TestPaletteOnGrayscaleIgnored(t *testing.T) {
	stream := newPNGBuilder().
		chunk("IHDR", ihdrPayload(1, 1, 8, ColorGrayscale, InterlaceNone)).
		chunk("PLTE", []byte{9, 9, 9}).
		chunk("IDAT", deflate(t, scanlines(ftNone, []byte{42}))).
		chunk("IEND", nil).
		bytes()

	im, err := Decode(stream)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if im.SampleAt(0, 0, 0) != 42 {
		t.Errorf("sample = %d, want 42", im.SampleAt(0, 0, 0))
	}
}
