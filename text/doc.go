// Package text provides the font handles a theme hands to widgets.
//
// A FontSource wraps parsed font data (TTF or OTF). The theme only needs
// identity, naming and line metrics; shaping and glyph rendering belong to
// the widget library. Parsing goes through a pluggable FontParser: the
// default "ximage" backend uses golang.org/x/image/font/sfnt and "gotext"
// uses github.com/go-text/typesetting.
package text
