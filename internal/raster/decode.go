package raster

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggtheme/asset"
	"github.com/gogpu/ggtheme/internal/image"
)

// Decode errors.
var (
	// ErrUnsupportedFormat is returned for an unknown asset.PixelFormat.
	ErrUnsupportedFormat = errors.New("raster: unsupported pixel format")

	// ErrSizeMismatch is returned when raw pixel data does not cover the
	// declared size.
	ErrSizeMismatch = errors.New("raster: data does not match declared size")
)

var rawFormats = map[asset.PixelFormat]image.Format{
	asset.FormatGray8:      image.FormatGray8,
	asset.FormatGrayAlpha8: image.FormatGrayAlpha8,
	asset.FormatRGB8:       image.FormatRGB8,
	asset.FormatRGBA8:      image.FormatRGBA8,
}

// DecodeRaster produces the native-size RGBA8 buffer for src.
// The source bytes are never aliased by the result.
func DecodeRaster(src *asset.Raster) (*image.ImageBuf, error) {
	if src.Format == asset.FormatEncoded {
		buf, err := image.DecodeBytes(src.Data)
		if err != nil {
			return nil, fmt.Errorf("raster: decode %q: %w", src.Name, err)
		}
		return buf, nil
	}

	format, ok := rawFormats[src.Format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, src.Format)
	}
	if len(src.Data) != format.ImageBytes(src.Width, src.Height) {
		return nil, fmt.Errorf("%w: %s has %d bytes", ErrSizeMismatch, src, len(src.Data))
	}
	buf, err := image.FromRaw(src.Data, src.Width, src.Height, format, format.RowBytes(src.Width))
	if err != nil {
		return nil, fmt.Errorf("raster: %s: %w", src, err)
	}

	rgba := buf.ToRGBA8()
	if rgba == buf {
		// Already RGBA8; copy so callers may mutate the result.
		rgba = buf.Clone()
	}
	return rgba, nil
}
