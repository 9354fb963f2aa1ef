package icon

import (
	"bytes"
	"testing"

	"github.com/gogpu/ggtheme/asset"
	"github.com/gogpu/ggtheme/internal/image"
	"github.com/gogpu/ggtheme/texture"
)

func newBuilder(t *testing.T, scale float64) *Builder {
	t.Helper()
	tb, err := texture.NewBuilder(scale)
	if err != nil {
		t.Fatal(err)
	}
	return NewBuilder(tb, nil)
}

// corner returns a 4x3 source with a single opaque pixel at the top left.
func corner(t *testing.T) *asset.Raster {
	t.Helper()
	buf, _ := image.NewImageBuf(4, 3, image.FormatRGBA8)
	_ = buf.SetRGBA(0, 0, 255, 255, 255, 255)
	var out bytes.Buffer
	if err := buf.EncodePNG(&out); err != nil {
		t.Fatal(err)
	}
	return asset.NewEncoded("corner", out.Bytes())
}

func TestMake_NotCached(t *testing.T) {
	b := newBuilder(t, 2)
	src := corner(t)

	first, err := b.Make(src)
	if err != nil {
		t.Fatalf("Make() error = %v", err)
	}
	second, err := b.Make(src)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("Make() must return a new texture on every call")
	}
	if first.Width() != 8 || first.Height() != 6 {
		t.Errorf("Make() size = %dx%d, want 8x6", first.Width(), first.Height())
	}
}

func TestFlip(t *testing.T) {
	b := newBuilder(t, 1)
	orig, err := b.Make(corner(t))
	if err != nil {
		t.Fatal(err)
	}
	before := append([]byte(nil), orig.Pix()...)

	if got := b.Flip(orig, false, false); got != orig {
		t.Error("Flip(false, false) should return the same texture")
	}

	tests := []struct {
		name         string
		flipY, flipX bool
		x, y         int
	}{
		{"horizontal", false, true, 3, 0},
		{"vertical", true, false, 0, 2},
		{"both", true, true, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Flip(orig, tt.flipY, tt.flipX)
			if got == orig {
				t.Fatal("Flip() returned the input texture")
			}
			if _, _, _, a := got.At(tt.x, tt.y); a != 255 {
				t.Errorf("opaque pixel not at (%d,%d)", tt.x, tt.y)
			}
			if _, _, _, a := got.At(0, 0); a != 0 {
				t.Error("(0,0) should be transparent after the flip")
			}
			if back := b.Flip(got, tt.flipY, tt.flipX); !back.SamePixels(orig) {
				t.Error("flipping twice should restore the original pixels")
			}
		})
	}

	if !bytes.Equal(orig.Pix(), before) {
		t.Error("Flip() modified the input texture")
	}
}

func TestGenerate(t *testing.T) {
	src := asset.NewVector("tick",
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 4 16"><rect x="1" width="2" height="16" fill="#fff"/></svg>`, 4, 16)

	got, err := newBuilder(t, 1.5).Generate(src)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got.Width() != 6 || got.Height() != 24 {
		t.Errorf("Generate() size = %dx%d, want 6x24", got.Width(), got.Height())
	}

	wide := asset.NewVector("wide",
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 8"><rect width="16" height="8" fill="#fff"/></svg>`, 0, 0)
	got, err = newBuilder(t, 2).Generate(wide)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got.Width() != 32 || got.Height() != 16 {
		t.Errorf("viewBox size = %dx%d, want 32x16", got.Width(), got.Height())
	}

	if _, err := newBuilder(t, 1).Generate(asset.NewVector("bad", "<svg", 4, 4)); err == nil {
		t.Error("Generate() with a broken document should fail")
	}
}

func TestEmpty(t *testing.T) {
	e := newBuilder(t, 1).Empty()
	if !e.IsEmpty() {
		t.Error("Empty() should have no pixels")
	}
}
