package ggtheme

import (
	"maps"
	"slices"

	"github.com/gogpu/ggtheme/style"
	"github.com/gogpu/ggtheme/text"
	"github.com/gogpu/ggtheme/texture"
)

// DataType identifies one of the value tables of a Theme.
type DataType uint8

const (
	DataStyleBox DataType = iota
	DataIcon
	DataFont
	DataFontSize
	DataColor
	DataConstant

	dataTypeCount
)

// DataTypes lists every DataType in table order.
func DataTypes() []DataType {
	out := make([]DataType, 0, dataTypeCount)
	for d := range dataTypeCount {
		out = append(out, d)
	}
	return out
}

func (d DataType) String() string {
	switch d {
	case DataStyleBox:
		return "stylebox"
	case DataIcon:
		return "icon"
	case DataFont:
		return "font"
	case DataFontSize:
		return "font_size"
	case DataColor:
		return "color"
	case DataConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// FontSizeDefault marks a font size slot that follows the default font size.
const FontSizeDefault = -1

// maxVariationDepth bounds variation chains so a cycle cannot hang a lookup.
const maxVariationDepth = 8

// slots maps widget type -> slot name -> value.
type slots[V any] map[string]map[string]V

func (s slots[V]) set(name, typ string, v V) {
	m, ok := s[typ]
	if !ok {
		m = make(map[string]V)
		s[typ] = m
	}
	m[name] = v
}

func (s slots[V]) get(name, typ string) (V, bool) {
	v, ok := s[typ][name]
	return v, ok
}

func (s slots[V]) names(typ string) []string {
	return slices.Sorted(maps.Keys(s[typ]))
}

func (s slots[V]) types() []string {
	return slices.Sorted(maps.Keys(s))
}

func (s slots[V]) count() int {
	n := 0
	for _, m := range s {
		n += len(m)
	}
	return n
}

// Theme holds the values of every widget type, plus type variations that
// let a type inherit the slots it does not define from a base type.
//
// A nil font stands for the default font, FontSizeDefault for the default
// font size. Theme is not safe for concurrent mutation.
type Theme struct {
	styles     slots[style.Box]
	icons      slots[*texture.Texture]
	fonts      slots[*text.FontSource]
	fontSizes  slots[int]
	colors     slots[style.Color]
	constants  slots[int]
	variations map[string]string
}

// NewTheme creates an empty theme.
func NewTheme() *Theme {
	return &Theme{
		styles:     make(slots[style.Box]),
		icons:      make(slots[*texture.Texture]),
		fonts:      make(slots[*text.FontSource]),
		fontSizes:  make(slots[int]),
		colors:     make(slots[style.Color]),
		constants:  make(slots[int]),
		variations: make(map[string]string),
	}
}

// lookup resolves name on typ, then on its variation bases.
func lookup[V any](t *Theme, s slots[V], name, typ string) (V, bool) {
	for range maxVariationDepth {
		if v, ok := s.get(name, typ); ok {
			return v, true
		}
		base, ok := t.variations[typ]
		if !ok {
			break
		}
		typ = base
	}
	var zero V
	return zero, false
}

// SetStyleBox stores a style box.
func (t *Theme) SetStyleBox(name, typ string, b style.Box) { t.styles.set(name, typ, b) }

// StyleBox returns the style box of a slot.
func (t *Theme) StyleBox(name, typ string) (style.Box, bool) {
	return lookup(t, t.styles, name, typ)
}

// SetIcon stores an icon.
func (t *Theme) SetIcon(name, typ string, tex *texture.Texture) { t.icons.set(name, typ, tex) }

// Icon returns the icon of a slot.
func (t *Theme) Icon(name, typ string) (*texture.Texture, bool) {
	return lookup(t, t.icons, name, typ)
}

// SetFont stores a font; nil selects the default font.
func (t *Theme) SetFont(name, typ string, f *text.FontSource) { t.fonts.set(name, typ, f) }

// Font returns the font of a slot.
func (t *Theme) Font(name, typ string) (*text.FontSource, bool) {
	return lookup(t, t.fonts, name, typ)
}

// SetFontSize stores a font size in pixels.
func (t *Theme) SetFontSize(name, typ string, size int) { t.fontSizes.set(name, typ, size) }

// FontSize returns the font size of a slot.
func (t *Theme) FontSize(name, typ string) (int, bool) {
	return lookup(t, t.fontSizes, name, typ)
}

// SetColor stores a color.
func (t *Theme) SetColor(name, typ string, c style.Color) { t.colors.set(name, typ, c) }

// Color returns the color of a slot.
func (t *Theme) Color(name, typ string) (style.Color, bool) {
	return lookup(t, t.colors, name, typ)
}

// SetConstant stores an integer constant.
func (t *Theme) SetConstant(name, typ string, v int) { t.constants.set(name, typ, v) }

// Constant returns the constant of a slot.
func (t *Theme) Constant(name, typ string) (int, bool) {
	return lookup(t, t.constants, name, typ)
}

// SetTypeVariation makes typ a variation of base.
func (t *Theme) SetTypeVariation(typ, base string) { t.variations[typ] = base }

// TypeVariation returns the base type of a variation.
func (t *Theme) TypeVariation(typ string) (string, bool) {
	base, ok := t.variations[typ]
	return base, ok
}

// Variations returns every variation type, sorted.
func (t *Theme) Variations() []string {
	return slices.Sorted(maps.Keys(t.variations))
}

// Types returns the widget types that define at least one value of d,
// sorted.
func (t *Theme) Types(d DataType) []string {
	switch d {
	case DataStyleBox:
		return t.styles.types()
	case DataIcon:
		return t.icons.types()
	case DataFont:
		return t.fonts.types()
	case DataFontSize:
		return t.fontSizes.types()
	case DataColor:
		return t.colors.types()
	case DataConstant:
		return t.constants.types()
	}
	return nil
}

// Names returns the slot names typ defines for d itself, sorted.
// Variation bases are not consulted.
func (t *Theme) Names(d DataType, typ string) []string {
	switch d {
	case DataStyleBox:
		return t.styles.names(typ)
	case DataIcon:
		return t.icons.names(typ)
	case DataFont:
		return t.fonts.names(typ)
	case DataFontSize:
		return t.fontSizes.names(typ)
	case DataColor:
		return t.colors.names(typ)
	case DataConstant:
		return t.constants.names(typ)
	}
	return nil
}

// Len returns the number of values stored for d.
func (t *Theme) Len(d DataType) int {
	switch d {
	case DataStyleBox:
		return t.styles.count()
	case DataIcon:
		return t.icons.count()
	case DataFont:
		return t.fonts.count()
	case DataFontSize:
		return t.fontSizes.count()
	case DataColor:
		return t.colors.count()
	case DataConstant:
		return t.constants.count()
	}
	return 0
}

// Textures returns every distinct non-empty texture the theme references,
// from textured style boxes and icons. The order is stable: style boxes
// before icons, then by type and slot name.
func (t *Theme) Textures() []*texture.Texture {
	seen := make(map[*texture.Texture]bool)
	var out []*texture.Texture
	add := func(tex *texture.Texture) {
		if tex == nil || tex.IsEmpty() || seen[tex] {
			return
		}
		seen[tex] = true
		out = append(out, tex)
	}

	for _, typ := range t.styles.types() {
		for _, name := range t.styles.names(typ) {
			if tb, ok := t.styles[typ][name].(*style.Textured); ok {
				add(tb.Texture)
			}
		}
	}
	for _, typ := range t.icons.types() {
		for _, name := range t.icons.names(typ) {
			add(t.icons[typ][name])
		}
	}
	return out
}
