package png

import (
	"fmt"
	"image"
	"image/color"
)

// StdImage converts the decoded raster into a standard library image
// for callers that hand pixels to encoders or drawing code. Sub-byte
// grayscale samples are rescaled to the full 8-bit range; indexed
// samples are resolved through the palette.
func (im *Image) StdImage() (image.Image, error) {
	w := int(im.Header.Width)
	h := int(im.Header.Height)
	rect := image.Rect(0, 0, w, h)

	switch im.Header.ColorType {
	case ColorGrayscale:
		if im.Header.BitDepth == 16 {
			out := image.NewGray16(rect)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					out.SetGray16(x, y, color.Gray16{Y: im.SampleAt(x, y, 0)})
				}
			}
			return out, nil
		}
		maxVal := uint32(1)<<im.Header.BitDepth - 1
		out := image.NewGray(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := uint32(im.SampleAt(x, y, 0))
				out.SetGray(x, y, color.Gray{Y: uint8(v * 255 / maxVal)})
			}
		}
		return out, nil

	case ColorGrayscaleAlpha:
		if im.Header.BitDepth == 16 {
			out := image.NewNRGBA64(rect)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					v := im.SampleAt(x, y, 0)
					a := im.SampleAt(x, y, 1)
					out.SetNRGBA64(x, y, color.NRGBA64{R: v, G: v, B: v, A: a})
				}
			}
			return out, nil
		}
		out := image.NewNRGBA(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := uint8(im.SampleAt(x, y, 0))
				a := uint8(im.SampleAt(x, y, 1))
				out.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: a})
			}
		}
		return out, nil

	case ColorTrueColor, ColorTrueColorAlpha:
		hasAlpha := im.Header.ColorType == ColorTrueColorAlpha
		if im.Header.BitDepth == 16 {
			out := image.NewNRGBA64(rect)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					px := color.NRGBA64{
						R: im.SampleAt(x, y, 0),
						G: im.SampleAt(x, y, 1),
						B: im.SampleAt(x, y, 2),
						A: 0xffff,
					}
					if hasAlpha {
						px.A = im.SampleAt(x, y, 3)
					}
					out.SetNRGBA64(x, y, px)
				}
			}
			return out, nil
		}
		out := image.NewNRGBA(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				px := color.NRGBA{
					R: uint8(im.SampleAt(x, y, 0)),
					G: uint8(im.SampleAt(x, y, 1)),
					B: uint8(im.SampleAt(x, y, 2)),
					A: 0xff,
				}
				if hasAlpha {
					px.A = uint8(im.SampleAt(x, y, 3))
				}
				out.SetNRGBA(x, y, px)
			}
		}
		return out, nil

	case ColorIndexed:
		out := image.NewNRGBA(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				e := im.Palette[im.SampleAt(x, y, 0)]
				out.SetNRGBA(x, y, color.NRGBA{R: e.R, G: e.G, B: e.B, A: 0xff})
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedColorType, im.Header.ColorType)
}
