package raster

import (
	"errors"
	"fmt"
	stdimage "image"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/gogpu/ggtheme/asset"
	"github.com/gogpu/ggtheme/internal/image"
)

// Vector errors.
var (
	// ErrInvalidScale is returned for a scale that is not a finite positive number.
	ErrInvalidScale = errors.New("raster: invalid scale")

	// ErrNoSize is returned when a vector declares no base size and its
	// document has no usable viewBox.
	ErrNoSize = errors.New("raster: vector has no size")

	// ErrNoPaths is returned for a document that draws nothing, which is
	// what text that is not SVG parses to.
	ErrNoPaths = errors.New("raster: vector draws nothing")
)

// NeedsSupersample reports whether rendering at scale lands on a fractional
// pixel grid. Integer scales never need it.
func NeedsSupersample(scale float64) bool {
	return math.Round(scale) != scale
}

// SupersampleFactor returns the oversampling multiplier used for scale.
func SupersampleFactor(scale float64, allow bool) int {
	if allow && NeedsSupersample(scale) {
		return 2
	}
	return 1
}

// TargetSize is the pixel size of a vector of base size w x h drawn at scale.
func TargetSize(w, h, scale float64) (int, int) {
	return targetDim(w * scale), targetDim(h * scale)
}

func targetDim(v float64) int {
	d := int(math.Round(v))
	if d < 1 {
		return 1
	}
	return d
}

// RasterizeVector draws src at scale and returns an RGBA8 buffer of
// TargetSize(base, scale). When allowSupersample is set and the scale is
// fractional, the icon is drawn at SupersampleFactor times the target size
// and filtered down.
func RasterizeVector(src *asset.Vector, scale float64, allowSupersample bool) (*image.ImageBuf, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(src.Source), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("raster: parse %s: %w", src, err)
	}

	baseW, baseH := src.Width, src.Height
	if baseW <= 0 || baseH <= 0 {
		baseW, baseH = icon.ViewBox.W, icon.ViewBox.H
	}
	if baseW <= 0 || baseH <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSize, src)
	}
	if !drawsSomething(icon) {
		return nil, fmt.Errorf("%w: %s", ErrNoPaths, src)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		// A document sized only by the declaration draws in its own units.
		icon.ViewBox.W, icon.ViewBox.H = baseW, baseH
	}

	tw, th := TargetSize(baseW, baseH, scale)
	factor := SupersampleFactor(scale, allowSupersample)

	rgba := render(icon, tw*factor, th*factor)
	if factor > 1 {
		small := stdimage.NewRGBA(stdimage.Rect(0, 0, tw, th))
		draw.CatmullRom.Scale(small, small.Bounds(), rgba, rgba.Bounds(), draw.Src, nil)
		rgba = small
	}
	return image.FromStdImage(rgba), nil
}

// render is drawIcon; tests swap it to observe the drawing size.
var render = drawIcon

func drawsSomething(icon *oksvg.SvgIcon) bool {
	for _, p := range icon.SVGPaths {
		if len(p.Path) > 0 {
			return true
		}
	}
	return false
}

func drawIcon(icon *oksvg.SvgIcon, w, h int) *stdimage.RGBA {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, w, h))
	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img
}
