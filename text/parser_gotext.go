package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// gotextParser implements FontParser using go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &gotextParsedFont{face: face}, nil
}

// gotextParsedFont implements ParsedFont on a go-text face.
// The face is only read, never shaped with, so sharing it is safe.
type gotextParsedFont struct {
	face *font.Face
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.face.Describe().Family
}

// FullName implements ParsedFont.FullName.
// go-text exposes no full name record.
func (f *gotextParsedFont) FullName() string {
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *gotextParsedFont) HasGlyph(r rune) bool {
	_, ok := f.face.NominalGlyph(r)
	return ok
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(ppem float64) FontMetrics {
	ext, ok := f.face.FontHExtents()
	if !ok {
		return FontMetrics{}
	}
	k := ppem / float64(f.face.Upem())
	return FontMetrics{
		Ascent:  float64(ext.Ascender) * k,
		Descent: float64(ext.Descender) * k,
		LineGap: float64(ext.LineGap) * k,
	}
}
