// Package icon builds the icon textures of a theme.
//
// Raster icons are decoded and resampled on every request and are not
// cached: each call yields a distinct texture. Vector icons are drawn at
// the pass scale. Flipped variants are always new textures.
package icon

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/ggtheme/asset"
	"github.com/gogpu/ggtheme/texture"
)

// Builder produces icon textures at one scale.
type Builder struct {
	tex *texture.Builder
	log *slog.Logger
}

// NewBuilder creates an icon builder on top of a texture builder.
func NewBuilder(tb *texture.Builder, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{tex: tb, log: logger}
}

// Make decodes src and scales it. Nothing is cached.
func (b *Builder) Make(src *asset.Raster) (*texture.Texture, error) {
	t, err := b.tex.Raster(src)
	if err != nil {
		return nil, fmt.Errorf("icon: %w", err)
	}
	return t, nil
}

// Generate rasterizes a vector icon at the builder's scale.
func (b *Builder) Generate(src *asset.Vector) (*texture.Texture, error) {
	t, err := b.tex.Vector(src)
	if err != nil {
		b.log.Error("icon: vector rejected", "src", src, "err", err)
		return nil, fmt.Errorf("icon: %w", err)
	}
	return t, nil
}

// Flip mirrors t vertically when flipY is set and horizontally when flipX
// is set. With neither flag t itself is returned; otherwise the result is a
// new texture and t is left untouched.
func (b *Builder) Flip(t *texture.Texture, flipY, flipX bool) *texture.Texture {
	if !flipY && !flipX {
		return t
	}
	return t.Mirror(flipY, flipX)
}

// Empty returns a zero-size placeholder icon.
func (b *Builder) Empty() *texture.Texture {
	return texture.Empty()
}
