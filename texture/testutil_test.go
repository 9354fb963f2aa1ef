package texture

import (
	"bytes"
	"testing"

	"github.com/gogpu/ggtheme/asset"
	"github.com/gogpu/ggtheme/internal/image"
)

// pngSource encodes a w x h gradient as a PNG raster source.
func pngSource(t *testing.T, name string, w, h int) *asset.Raster {
	t.Helper()
	buf, err := image.NewImageBuf(w, h, image.FormatRGBA8)
	if err != nil {
		t.Fatalf("NewImageBuf() error = %v", err)
	}
	for y := range h {
		for x := range w {
			_ = buf.SetRGBA(x, y, uint8(x*8), uint8(y*8), 128, 255)
		}
	}
	var out bytes.Buffer
	if err := buf.EncodePNG(&out); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	return asset.NewEncoded(name, out.Bytes())
}

func mustBuilder(t *testing.T, scale float64, opts ...BuilderOption) *Builder {
	t.Helper()
	b, err := NewBuilder(scale, opts...)
	if err != nil {
		t.Fatalf("NewBuilder(%v) error = %v", scale, err)
	}
	return b
}
