package style

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/ggtheme/asset"
	"github.com/gogpu/ggtheme/texture"
)

// ErrNotTextured is returned by Expand for any box that is not *Textured.
var ErrNotTextured = errors.New("style: expand margins need a textured box")

// Defaults for Flat.
const (
	DefaultMargin       = 4
	DefaultCornerRadius = 3
)

// CornerDetail returns the corner tessellation level for an unscaled
// corner radius: ceil(1.5 * radius).
func CornerDetail(radius int) int {
	return int(math.Ceil(1.5 * float64(radius)))
}

// Builder creates boxes at the scale of its texture cache. Textured boxes
// built from the same source share one texture.
type Builder struct {
	scale float64
	cache *texture.Cache
	log   *slog.Logger
}

// NewBuilder creates a builder drawing textures from c.
func NewBuilder(c *texture.Cache, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{scale: c.Scale(), cache: c, log: logger}
}

// Scale returns the pass scale.
func (b *Builder) Scale() float64 { return b.scale }

// Scaled multiplies a reference length by the pass scale.
func (b *Builder) Scaled(v float64) float64 { return v * b.scale }

func (b *Builder) scaleSides(s Sides[float64]) Sides[float64] {
	return s.Map(func(v float64) float64 {
		if v == Unset {
			return Unset
		}
		return v * b.scale
	})
}

type flatParams struct {
	margins      Sides[float64]
	cornerRadius int
	drawCenter   bool
	borderWidth  int
}

// FlatOption configures Flat.
type FlatOption func(*flatParams)

// WithMargins sets the content margins (reference lengths).
func WithMargins(l, t, r, bottom float64) FlatOption {
	return func(p *flatParams) {
		p.margins = LTRB(l, t, r, bottom)
	}
}

// WithCornerRadius sets the corner radius (reference length).
func WithCornerRadius(r int) FlatOption {
	return func(p *flatParams) {
		p.cornerRadius = r
	}
}

// WithDrawCenter controls whether the fill is drawn.
func WithDrawCenter(draw bool) FlatOption {
	return func(p *flatParams) {
		p.drawCenter = draw
	}
}

// WithBorderWidth sets the border width of every edge (reference length).
func WithBorderWidth(w int) FlatOption {
	return func(p *flatParams) {
		p.borderWidth = w
	}
}

// Flat builds a solid-fill box. Without options it has margins of
// DefaultMargin, a DefaultCornerRadius radius, a drawn center and no
// border. The border color starts as the fill color.
func (b *Builder) Flat(c Color, opts ...FlatOption) *Flat {
	p := flatParams{
		margins:      All[float64](DefaultMargin),
		cornerRadius: DefaultCornerRadius,
		drawCenter:   true,
	}
	for _, opt := range opts {
		opt(&p)
	}

	return &Flat{
		Margins:      b.scaleSides(p.margins),
		Color:        c,
		BorderColor:  c,
		BorderWidth:  All(b.Scaled(float64(p.borderWidth))),
		CornerRadius: AllCorners(b.Scaled(float64(p.cornerRadius))),
		CornerDetail: CornerDetail(p.cornerRadius),
		DrawCenter:   p.drawCenter,
		AntiAliased:  true,
	}
}

// Textured builds a nine-patch box over the cached texture of src.
// border and margins are reference lengths; Unset margins stay unset.
func (b *Builder) Textured(src *asset.Raster, border, margins Sides[float64], drawCenter bool) (*Textured, error) {
	tex, err := b.cache.GetOrBuild(src)
	if err != nil {
		return nil, fmt.Errorf("style: textured box: %w", err)
	}
	return &Textured{
		Margins:    b.scaleSides(margins),
		Texture:    tex,
		Border:     b.scaleSides(border),
		DrawCenter: drawCenter,
	}, nil
}

// Empty builds a box with margins only.
func (b *Builder) Empty(margins Sides[float64]) *Empty {
	return &Empty{Margins: b.scaleSides(margins)}
}

// Line builds a separator whose thickness is the pass scale rounded to
// whole pixels, at least one.
func (b *Builder) Line(c Color, vertical bool, margins Sides[float64]) *Line {
	thickness := int(math.Round(b.scale))
	if thickness < 1 {
		thickness = 1
	}
	return &Line{
		Margins:   b.scaleSides(margins),
		Color:     c,
		Thickness: thickness,
		Vertical:  vertical,
		GrowBegin: b.Scaled(1),
		GrowEnd:   b.Scaled(1),
	}
}

// Expand sets the expand margins of a textured box, letting it draw past
// its layout bounds. Any other variant is rejected with ErrNotTextured and
// left unchanged.
func (b *Builder) Expand(box Box, l, t, r, bottom float64) error {
	tb, ok := box.(*Textured)
	if !ok || tb == nil {
		b.log.Error("style: expand on non-textured box", "box", fmt.Sprintf("%T", box))
		return fmt.Errorf("%w: got %T", ErrNotTextured, box)
	}
	tb.Expand = b.scaleSides(LTRB(l, t, r, bottom))
	return nil
}
