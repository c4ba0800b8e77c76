package png

// interlacePass holds the geometry of one Adam7 pass: the origin of the
// pass within the full raster and the spacing between its pixels.
type interlacePass struct {
	xOffset, yOffset int
	xStride, yStride int
}

// adam7 lists the seven passes in transmission order.
// ISO/IEC 15948 §8.2.
var adam7 = [7]interlacePass{
	{0, 0, 8, 8},
	{4, 0, 8, 8},
	{0, 4, 4, 8},
	{2, 0, 4, 4},
	{0, 2, 2, 4},
	{1, 0, 2, 2},
	{0, 1, 1, 2},
}

// progressive is the degenerate single pass used for non-interlaced
// images, so both transmission orders share one reconstruction path.
var progressive = interlacePass{0, 0, 1, 1}

// size returns the pass-local dimensions for a width x height image.
// Either may be zero for small images; such a pass contributes no
// pixels and no scanline bytes at all.
func (p interlacePass) size(width, height int) (pw, ph int) {
	if width > p.xOffset {
		pw = (width - p.xOffset + p.xStride - 1) / p.xStride
	}
	if height > p.yOffset {
		ph = (height - p.yOffset + p.yStride - 1) / p.yStride
	}
	return pw, ph
}
