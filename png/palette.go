package png

import "fmt"

// PaletteEntry is one PLTE color table entry.
type PaletteEntry struct {
	R, G, B uint8
}

// maxPaletteEntries is the PLTE entry limit; indices are single samples
// of at most 8 bits.
const maxPaletteEntries = 256

// parsePalette decodes the PLTE payload: consecutive 3-byte RGB groups
// in file order, index = position.
func parsePalette(data []byte) ([]PaletteEntry, error) {
	if len(data) == 0 || len(data)%3 != 0 {
		return nil, fmt.Errorf("%w: length %d not a positive multiple of 3", ErrMalformedPalette, len(data))
	}
	n := len(data) / 3
	if n > maxPaletteEntries {
		return nil, fmt.Errorf("%w: %d entries, max %d", ErrMalformedPalette, n, maxPaletteEntries)
	}

	entries := make([]PaletteEntry, n)
	for i := range entries {
		entries[i] = PaletteEntry{R: data[3*i], G: data[3*i+1], B: data[3*i+2]}
	}
	return entries, nil
}
