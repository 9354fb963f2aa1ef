// Package asset defines the image sources a theme is generated from.
//
// Sources are identified by pointer: the texture cache keys on the *Raster
// value itself, so two sources with byte-identical content are still two
// cache entries. Sources are immutable once declared.
package asset

import "fmt"

// PixelFormat describes how the bytes of a Raster are laid out.
type PixelFormat uint8

const (
	// FormatEncoded means Data holds an encoded image stream (PNG or JPEG).
	// Width and Height are taken from the stream.
	FormatEncoded PixelFormat = iota

	// FormatGray8 is one luminance byte per pixel.
	FormatGray8

	// FormatGrayAlpha8 is a luminance byte followed by an alpha byte.
	FormatGrayAlpha8

	// FormatRGB8 is three bytes per pixel, opaque.
	FormatRGB8

	// FormatRGBA8 is four bytes per pixel with straight alpha.
	FormatRGBA8
)

// String returns the format name.
func (f PixelFormat) String() string {
	switch f {
	case FormatEncoded:
		return "Encoded"
	case FormatGray8:
		return "Gray8"
	case FormatGrayAlpha8:
		return "GrayAlpha8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return fmt.Sprintf("PixelFormat(%d)", uint8(f))
	}
}

// Raster is a fixed-size raster image source.
type Raster struct {
	// Name identifies the source in logs and errors.
	Name string

	// Width and Height are the native size in pixels.
	// They are ignored for FormatEncoded.
	Width, Height int

	// Format is the layout of Data.
	Format PixelFormat

	// Data holds the pixel bytes or the encoded stream.
	Data []byte
}

// NewRaster declares a raw pixel source.
func NewRaster(name string, width, height int, format PixelFormat, data []byte) *Raster {
	return &Raster{Name: name, Width: width, Height: height, Format: format, Data: data}
}

// NewEncoded declares a source held as an encoded PNG or JPEG stream.
func NewEncoded(name string, data []byte) *Raster {
	return &Raster{Name: name, Format: FormatEncoded, Data: data}
}

func (r *Raster) String() string {
	if r.Format == FormatEncoded {
		return fmt.Sprintf("raster %q (encoded, %d bytes)", r.Name, len(r.Data))
	}
	return fmt.Sprintf("raster %q (%dx%d %s)", r.Name, r.Width, r.Height, r.Format)
}

// Vector is an SVG path program with a declared base size.
type Vector struct {
	// Name identifies the icon; icon slots refer to it by this name.
	Name string

	// Source is the SVG document.
	Source string

	// Width and Height are the size at scale 1.0. Zero means "use the
	// document's viewBox".
	Width, Height float64
}

// NewVector declares a vector source with an explicit base size.
func NewVector(name, source string, width, height float64) *Vector {
	return &Vector{Name: name, Source: source, Width: width, Height: height}
}

func (v *Vector) String() string {
	return fmt.Sprintf("vector %q", v.Name)
}
