// Package image provides the pixel buffers behind theme textures.
//
// Every source asset ends up as an RGBA8 (straight alpha) ImageBuf before it
// is wrapped into a texture. The package covers decoding, format
// normalization, resampling to a display scale and mirroring.
package image

import "errors"

// Buffer errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// ImageBuf is a contiguous pixel buffer with an optional row stride.
//
// ImageBuf is safe for concurrent reads. Writes require external
// synchronization; theme builds never share a writable buffer.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewImageBuf allocates a zeroed, tightly packed buffer.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	stride := format.RowBytes(width)
	return FromRaw(make([]byte, stride*height), width, height, format, stride)
}

// FromRaw wraps data without copying. Rows start every stride bytes; a
// stride above format.RowBytes(width) leaves padding at the end of each row.
func FromRaw(data []byte, width, height int, format Format, stride int) (*ImageBuf, error) {
	switch {
	case width <= 0 || height <= 0:
		return nil, ErrInvalidDimensions
	case !format.IsValid():
		return nil, ErrInvalidFormat
	case stride < format.RowBytes(width):
		return nil, ErrInvalidStride
	case len(data) < stride*height:
		return nil, ErrDataTooSmall
	}
	return &ImageBuf{
		data:   data[:stride*height],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Clone returns a deep copy, padding included.
func (b *ImageBuf) Clone() *ImageBuf {
	c := *b
	c.data = append([]byte(nil), b.data...)
	return &c
}

func (b *ImageBuf) Width() int     { return b.width }
func (b *ImageBuf) Height() int    { return b.height }
func (b *ImageBuf) Stride() int    { return b.stride }
func (b *ImageBuf) Format() Format { return b.format }

// Data returns the backing slice, padding included.
func (b *ImageBuf) Data() []byte { return b.data }

// RowBytes returns the pixels of row y without padding, nil outside the
// buffer.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the index of the first byte of pixel (x, y), or -1
// outside the buffer.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// GetRGBA returns pixel (x, y) as straight-alpha RGBA. Gray formats
// replicate the gray level, formats without alpha are opaque. Outside the
// buffer the result is transparent black.
func (b *ImageBuf) GetRGBA(x, y int) (r, g, bl, a uint8) {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return 0, 0, 0, 0
	}
	p := b.data[i : i+b.format.BytesPerPixel()]
	switch b.format {
	case FormatGray8:
		return p[0], p[0], p[0], 0xff
	case FormatGrayAlpha8:
		return p[0], p[0], p[0], p[1]
	case FormatRGB8:
		return p[0], p[1], p[2], 0xff
	case FormatRGBA8:
		return p[0], p[1], p[2], p[3]
	case FormatBGRA8:
		return p[2], p[1], p[0], p[3]
	}
	return 0, 0, 0, 0
}

// SetRGBA stores a straight-alpha color at (x, y). Gray formats keep the
// luminance, formats without alpha drop it.
func (b *ImageBuf) SetRGBA(x, y int, r, g, bl, a uint8) error {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return ErrOutOfBounds
	}
	p := b.data[i : i+b.format.BytesPerPixel()]
	switch b.format {
	case FormatGray8:
		p[0] = luminance(r, g, bl)
	case FormatGrayAlpha8:
		p[0], p[1] = luminance(r, g, bl), a
	case FormatRGB8:
		p[0], p[1], p[2] = r, g, bl
	case FormatRGBA8:
		p[0], p[1], p[2], p[3] = r, g, bl, a
	case FormatBGRA8:
		p[0], p[1], p[2], p[3] = bl, g, r, a
	}
	return nil
}

// luminance uses the Rec. 601 weights.
func luminance(r, g, b uint8) byte {
	return byte((int(r)*299 + int(g)*587 + int(b)*114) / 1000)
}

// Fill sets every pixel to one color.
func (b *ImageBuf) Fill(r, g, bl, a uint8) {
	for y := range b.height {
		for x := range b.width {
			_ = b.SetRGBA(x, y, r, g, bl, a)
		}
	}
}

// Equal reports whether two buffers have the same size, format and pixels.
// Row padding is ignored.
func (b *ImageBuf) Equal(o *ImageBuf) bool {
	switch {
	case b == o:
		return true
	case b == nil || o == nil:
		return false
	case b.width != o.width || b.height != o.height || b.format != o.format:
		return false
	}
	for y := range b.height {
		if string(b.RowBytes(y)) != string(o.RowBytes(y)) {
			return false
		}
	}
	return true
}
