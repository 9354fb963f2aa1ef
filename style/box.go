// Package style describes the stylable boxes widgets draw their
// backgrounds with and builds them at a display scale.
//
// A box is one of four variants: Empty (layout margins only), Flat (a
// solid fill with optional border and rounded corners), Textured (a
// nine-patch over a shared texture) and Line (a separator). Every length a
// Builder stores is already multiplied by the pass scale.
package style

import "github.com/gogpu/ggtheme/texture"

// Kind identifies a box variant.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindFlat
	KindTextured
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindFlat:
		return "flat"
	case KindTextured:
		return "textured"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

// Box is a style box descriptor.
type Box interface {
	// Kind reports the variant.
	Kind() Kind

	// ContentMargins returns the default content inset. Unset edges hold
	// Unset.
	ContentMargins() Sides[float64]

	// Copy returns an independent duplicate. Textures are shared, not
	// copied.
	Copy() Box
}

// Empty carries layout margins and draws nothing.
type Empty struct {
	Margins Sides[float64]
}

func (b *Empty) Kind() Kind                     { return KindEmpty }
func (b *Empty) ContentMargins() Sides[float64] { return b.Margins }
func (b *Empty) Copy() Box                      { c := *b; return &c }

// Flat is a solid fill with an optional border.
type Flat struct {
	Margins      Sides[float64]
	Color        Color
	BorderColor  Color
	BorderWidth  Sides[float64]
	CornerRadius Corners

	// CornerDetail is the number of segments per rounded corner.
	CornerDetail int

	DrawCenter  bool
	Expand      Sides[float64]
	AntiAliased bool
}

func (b *Flat) Kind() Kind                     { return KindFlat }
func (b *Flat) ContentMargins() Sides[float64] { return b.Margins }
func (b *Flat) Copy() Box                      { return b.Clone() }

// Clone returns an independent duplicate of b.
func (b *Flat) Clone() *Flat {
	c := *b
	return &c
}

// SetBorderWidthAll sets the same border width on every edge.
func (b *Flat) SetBorderWidthAll(w float64) {
	b.BorderWidth = All(w)
}

// HasBorder reports whether any edge has a visible border.
func (b *Flat) HasBorder() bool {
	w := b.BorderWidth
	return w.Left > 0 || w.Top > 0 || w.Right > 0 || w.Bottom > 0
}

// Textured is a nine-patch over a shared texture. Border holds the
// non-stretched edge regions of the texture.
type Textured struct {
	Margins    Sides[float64]
	Texture    *texture.Texture
	Border     Sides[float64]
	Expand     Sides[float64]
	DrawCenter bool
}

func (b *Textured) Kind() Kind                     { return KindTextured }
func (b *Textured) ContentMargins() Sides[float64] { return b.Margins }
func (b *Textured) Copy() Box                      { c := *b; return &c }

// Line is a one-dimensional separator.
type Line struct {
	Margins   Sides[float64]
	Color     Color
	Thickness int
	Vertical  bool

	// GrowBegin and GrowEnd extend the line past the box on either end.
	GrowBegin float64
	GrowEnd   float64
}

func (b *Line) Kind() Kind                     { return KindLine }
func (b *Line) ContentMargins() Sides[float64] { return b.Margins }
func (b *Line) Copy() Box                      { return b.Clone() }

// Clone returns an independent duplicate of b.
func (b *Line) Clone() *Line {
	c := *b
	return &c
}
