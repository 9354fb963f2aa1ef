package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatGrayAlpha8 is 8-bit grayscale with 8-bit alpha (2 bytes per pixel).
	// Monochrome theme skins are usually shipped this way.
	FormatGrayAlpha8

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit RGBA with straight alpha (4 bytes per pixel).
	// Every texture is normalized to this format.
	FormatRGBA8

	// FormatBGRA8 is 32-bit BGRA with straight alpha (4 bytes per pixel).
	FormatBGRA8

	// formatCount is the number of formats (for internal use).
	formatCount
)

var bytesPerPixel = [formatCount]int{
	FormatGray8:      1,
	FormatGrayAlpha8: 2,
	FormatRGB8:       3,
	FormatRGBA8:      4,
	FormatBGRA8:      4,
}

// BytesPerPixel returns the number of bytes per pixel, 0 for an unknown
// format.
func (f Format) BytesPerPixel() int {
	if f >= formatCount {
		return 0
	}
	return bytesPerPixel[f]
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatGrayAlpha8:
		return "GrayAlpha8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// ToRGBA8 returns the buffer in FormatRGBA8 with tightly packed rows.
// A buffer that already qualifies is returned as is; anything else is
// converted into a new buffer.
func (b *ImageBuf) ToRGBA8() *ImageBuf {
	if b.format == FormatRGBA8 && b.stride == FormatRGBA8.RowBytes(b.width) {
		return b
	}

	out, _ := NewImageBuf(b.width, b.height, FormatRGBA8)
	for y := range b.height {
		dst := out.RowBytes(y)
		if b.format == FormatRGBA8 {
			copy(dst, b.RowBytes(y))
			continue
		}
		for x := range b.width {
			r, g, bl, a := b.GetRGBA(x, y)
			i := x * 4
			dst[i] = r
			dst[i+1] = g
			dst[i+2] = bl
			dst[i+3] = a
		}
	}
	return out
}
