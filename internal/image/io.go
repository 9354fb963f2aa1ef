package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // register JPEG for Decode
	"image/png"
	"io"
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DecodeBytes decodes an encoded image (PNG or JPEG) held in memory.
func DecodeBytes(data []byte) (*ImageBuf, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
// The result is always FormatRGBA8.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// FromStdImage creates an ImageBuf from a standard library image.Image.
// The resulting ImageBuf is FormatRGBA8 with straight alpha; premultiplied
// sources such as *image.RGBA are unpremultiplied on the way in.
func FromStdImage(img image.Image) *ImageBuf {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf, err := NewImageBuf(width, height, FormatRGBA8)
	if err != nil {
		// Zero-sized images have no pixels to carry over.
		return &ImageBuf{format: FormatRGBA8}
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		// image/draw converts from any color model (including premultiplied
		// RGBA) into straight alpha.
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	for y := range height {
		srcStart := nrgba.PixOffset(nrgba.Rect.Min.X, nrgba.Rect.Min.Y+y)
		copy(buf.RowBytes(y), nrgba.Pix[srcStart:srcStart+width*4])
	}
	return buf
}

// ToStdImage converts the ImageBuf to a *image.NRGBA copy.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	rgba := b.ToRGBA8()
	nrgba := image.NewNRGBA(image.Rect(0, 0, rgba.width, rgba.height))
	copy(nrgba.Pix, rgba.data)
	return nrgba
}
