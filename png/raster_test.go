package png

import (
	"image"
	"image/color"
	"testing"
)

func TestStdImageGray1Bit(t *testing.T) {
	// Two pixels at depth 1: 0 and 1 rescale to 0 and 255.
	stream := newPNGBuilder().
		chunk("IHDR", ihdrPayload(2, 1, 1, ColorGrayscale, InterlaceNone)).
		chunk("IDAT", deflate(t, scanlines(ftNone, []byte{0b01000000}))).
		chunk("IEND", nil).
		bytes()

	im, err := Decode(stream)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	std, err := im.StdImage()
	if err != nil {
		t.Fatalf("StdImage failed: %v", err)
	}
	gray, ok := std.(*image.Gray)
	if !ok {
		t.Fatalf("StdImage returned %T, want *image.Gray", std)
	}
	if gray.GrayAt(0, 0).Y != 0 || gray.GrayAt(1, 0).Y != 255 {
		t.Errorf("pixels = %d,%d, want 0,255", gray.GrayAt(0, 0).Y, gray.GrayAt(1, 0).Y)
	}
}

func TestStdImageIndexed(t *testing.T) {
	stream := newPNGBuilder().
		chunk("IHDR", ihdrPayload(2, 1, 8, ColorIndexed, InterlaceNone)).
		chunk("PLTE", []byte{255, 0, 0, 0, 0, 255}).
		chunk("IDAT", deflate(t, scanlines(ftNone, []byte{1, 0}))).
		chunk("IEND", nil).
		bytes()

	im, err := Decode(stream)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	std, err := im.StdImage()
	if err != nil {
		t.Fatalf("StdImage failed: %v", err)
	}
	nrgba := std.(*image.NRGBA)
	if got := nrgba.NRGBAAt(0, 0); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("pixel (0,0) = %+v, want blue", got)
	}
	if got := nrgba.NRGBAAt(1, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("pixel (1,0) = %+v, want red", got)
	}
}

func TestStdImageTrueColorAlpha(t *testing.T) {
	row := []byte{10, 20, 30, 128}
	stream := newPNGBuilder().
		chunk("IHDR", ihdrPayload(1, 1, 8, ColorTrueColorAlpha, InterlaceNone)).
		chunk("IDAT", deflate(t, scanlines(ftNone, row))).
		chunk("IEND", nil).
		bytes()

	im, err := Decode(stream)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	std, err := im.StdImage()
	if err != nil {
		t.Fatalf("StdImage failed: %v", err)
	}
	if got := std.(*image.NRGBA).NRGBAAt(0, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 128}) {
		t.Errorf("pixel = %+v", got)
	}
}
