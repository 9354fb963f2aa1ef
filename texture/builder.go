package texture

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/ggtheme/asset"
	"github.com/gogpu/ggtheme/internal/image"
	"github.com/gogpu/ggtheme/internal/raster"
)

// Builder errors.
var (
	// ErrInvalidScale is returned for a scale that is not a finite positive number.
	ErrInvalidScale = errors.New("texture: invalid scale")

	// ErrNilSource is returned when a nil source is passed to a build.
	ErrNilSource = errors.New("texture: nil source")
)

// Builder turns sources into textures at one display scale.
//
// Raster sources are decoded at native size and resampled so that their
// on-screen size is native size times scale. Vector sources are drawn
// directly at the target size.
type Builder struct {
	scale       float64
	supersample bool
	log         *slog.Logger
	decode      func(*asset.Raster) (*image.ImageBuf, error)
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithSupersample enables the supersampled vector path for fractional scales.
func WithSupersample(allow bool) BuilderOption {
	return func(b *Builder) {
		b.supersample = allow
	}
}

// WithLogger sets the logger used for build events.
// A nil logger leaves the silent default in place.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBuilder creates a builder for scale.
// Supersampling is on by default.
func NewBuilder(scale float64, opts ...BuilderOption) (*Builder, error) {
	if !ValidScale(scale) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	b := &Builder{
		scale:       scale,
		supersample: true,
		log:         slog.New(slog.DiscardHandler),
		decode:      raster.DecodeRaster,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// ValidScale reports whether scale is a finite number greater than zero.
func ValidScale(scale float64) bool {
	return scale > 0 && !math.IsInf(scale, 0)
}

// Scale returns the display scale of the builder.
func (b *Builder) Scale() float64 { return b.scale }

// Supersample reports whether fractional-scale vectors are supersampled.
func (b *Builder) Supersample() bool { return b.supersample }

// Build resamples buf to round(w*scale) x round(h*scale), never below 1x1,
// and wraps the result. An unchanged size skips resampling.
func (b *Builder) Build(name string, buf *image.ImageBuf) (*Texture, error) {
	scaled, err := buf.Scale(b.scale)
	if err != nil {
		return nil, fmt.Errorf("texture: scale %q: %w", name, err)
	}
	if scaled == buf {
		// buf was already RGBA8 at the target size; keep the texture's
		// pixels independent of the caller's buffer.
		scaled = buf.Clone()
	}
	return newTexture(name, scaled), nil
}

// Wrap normalizes buf to RGBA8 without resampling.
func (b *Builder) Wrap(name string, buf *image.ImageBuf) *Texture {
	return newTexture(name, buf)
}

// Raster decodes src and builds its scaled texture. Every call decodes;
// use a Cache to share the result.
func (b *Builder) Raster(src *asset.Raster) (*Texture, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	buf, err := b.decode(src)
	if err != nil {
		return nil, err
	}
	t, err := b.Build(src.Name, buf)
	if err != nil {
		return nil, err
	}
	b.log.Debug("texture: built raster",
		"name", src.Name,
		"native", fmt.Sprintf("%dx%d", buf.Width(), buf.Height()),
		"scaled", fmt.Sprintf("%dx%d", t.Width(), t.Height()))
	return t, nil
}

// Vector rasterizes src at the builder scale.
func (b *Builder) Vector(src *asset.Vector) (*Texture, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	buf, err := raster.RasterizeVector(src, b.scale, b.supersample)
	if err != nil {
		return nil, err
	}
	t := b.Wrap(src.Name, buf)
	b.log.Debug("texture: rasterized vector",
		"name", src.Name,
		"size", fmt.Sprintf("%dx%d", t.Width(), t.Height()),
		"supersample", raster.SupersampleFactor(b.scale, b.supersample))
	return t, nil
}
