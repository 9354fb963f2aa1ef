package image

import (
	"math"

	"github.com/anthonynsimon/bild/transform"
)

// ScaledSize returns the pixel size of a width x height image displayed at
// scale: round(width*scale) x round(height*scale), never below 1x1.
func ScaledSize(width, height int, scale float64) (int, int) {
	return scaledDim(width, scale), scaledDim(height, scale)
}

func scaledDim(v int, scale float64) int {
	d := int(math.Round(float64(v) * scale))
	if d < 1 {
		return 1
	}
	return d
}

// Resize resamples the buffer to width x height with a linear filter and
// returns a new FormatRGBA8 buffer. Resampling happens on premultiplied
// pixels so transparent edges do not bleed color.
//
// When the size is unchanged the RGBA8 form of b is returned without
// resampling.
func (b *ImageBuf) Resize(width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	src := b.ToRGBA8()
	if src.width == width && src.height == height {
		return src, nil
	}
	if src.width == 0 || src.height == 0 {
		return nil, ErrInvalidDimensions
	}

	dst := transform.Resize(src.ToStdImage(), width, height, transform.Linear)
	return FromStdImage(dst), nil
}

// Scale resizes the buffer so its on-screen size matches native size * scale.
func (b *ImageBuf) Scale(scale float64) (*ImageBuf, error) {
	w, h := ScaledSize(b.width, b.height, scale)
	return b.Resize(w, h)
}
