package png

import "fmt"

// Scanline filter types, as per ISO/IEC 15948 §9.2.
const (
	ftNone    = 0
	ftSub     = 1
	ftUp      = 2
	ftAverage = 3
	ftPaeth   = 4
	nFilter   = 5
)

// unfilterPass reverses the per-scanline filters for one interlace
// pass. src must begin with rows scanlines of 1+rowSize bytes each: a
// filter-type byte followed by rowSize filtered bytes. bpp is the
// filter offset from Header.bytesPerPixel. The previous row starts as
// all zeros for the first scanline of every pass. All arithmetic is
// unsigned 8-bit wraparound.
func unfilterPass(src []byte, rowSize, rows, bpp int) ([][]byte, error) {
	need := rows * (1 + rowSize)
	if len(src) < need {
		return nil, fmt.Errorf("%w: scanline data exhausted (%d bytes, need %d)", ErrCorruptStream, len(src), need)
	}

	prev := make([]byte, rowSize)
	out := make([][]byte, rows)
	off := 0
	for y := 0; y < rows; y++ {
		ft := src[off]
		off++
		row := make([]byte, rowSize)
		copy(row, src[off:off+rowSize])
		off += rowSize

		switch ft {
		case ftNone:
			// Raw bytes as transmitted.
		case ftSub:
			for x := bpp; x < rowSize; x++ {
				row[x] += row[x-bpp]
			}
		case ftUp:
			for x := 0; x < rowSize; x++ {
				row[x] += prev[x]
			}
		case ftAverage:
			for x := 0; x < rowSize; x++ {
				var left byte
				if x >= bpp {
					left = row[x-bpp]
				}
				row[x] += byte((int(left) + int(prev[x])) / 2)
			}
		case ftPaeth:
			for x := 0; x < rowSize; x++ {
				var left, upperLeft byte
				if x >= bpp {
					left = row[x-bpp]
					upperLeft = prev[x-bpp]
				}
				row[x] += paethPredictor(left, prev[x], upperLeft)
			}
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedFilterType, ft)
		}

		out[y] = row
		prev = row
	}
	return out, nil
}

// paethPredictor returns whichever of a (left), b (above) and
// c (upper-left) is closest to p = a+b-c, preferring a, then b, on
// ties. ISO/IEC 15948 §9.4.
func paethPredictor(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))

	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
