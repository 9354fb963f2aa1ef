package texture

import (
	"errors"
	"testing"

	"github.com/gogpu/ggtheme/asset"
	"github.com/gogpu/ggtheme/internal/image"
	"github.com/gogpu/ggtheme/internal/raster"
)

func TestCache_Identity(t *testing.T) {
	c := NewCache(mustBuilder(t, 2))
	src := pngSource(t, "bg", 32, 32)

	first, err := c.GetOrBuild(src)
	if err != nil {
		t.Fatalf("GetOrBuild() error = %v", err)
	}
	for range 3 {
		again, err := c.GetOrBuild(src)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatal("GetOrBuild() returned a different texture for the same source")
		}
	}

	st := c.Stats()
	if st.Misses != 1 || st.Hits != 3 || st.Entries != 1 {
		t.Errorf("Stats() = %+v, want 1 miss, 3 hits, 1 entry", st)
	}
	if first.Width() != 64 || first.Height() != 64 {
		t.Errorf("texture size = %dx%d, want 64x64", first.Width(), first.Height())
	}
}

func TestCache_KeysOnIdentity(t *testing.T) {
	c := NewCache(mustBuilder(t, 1))
	a := pngSource(t, "a", 4, 4)
	b := asset.NewEncoded("b", a.Data) // same bytes, different source

	ta, _ := c.GetOrBuild(a)
	tb, _ := c.GetOrBuild(b)
	if ta == tb {
		t.Error("byte-identical sources must not share a texture")
	}
	if !ta.SamePixels(tb) {
		t.Error("byte-identical sources should produce identical pixels")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCache_FailureNotStored(t *testing.T) {
	b := mustBuilder(t, 1)
	calls := 0
	b.decode = func(src *asset.Raster) (*image.ImageBuf, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return raster.DecodeRaster(src)
	}
	c := NewCache(b)
	src := pngSource(t, "flaky", 2, 2)

	if _, err := c.GetOrBuild(src); err == nil {
		t.Fatal("first GetOrBuild() should fail")
	}
	if _, ok := c.Lookup(src); ok {
		t.Fatal("a failed build must not be cached")
	}
	if _, err := c.GetOrBuild(src); err != nil {
		t.Fatalf("second GetOrBuild() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("decode calls = %d, want 2", calls)
	}
}

func TestCache_Release(t *testing.T) {
	c := NewCache(mustBuilder(t, 1))
	src := pngSource(t, "bg", 4, 4)
	tex, _ := c.GetOrBuild(src)

	c.Release()
	if c.Len() != 0 {
		t.Errorf("Len() after Release = %d, want 0", c.Len())
	}
	if tex.Width() != 4 || len(tex.Pix()) != 64 {
		t.Error("released texture lost its pixels")
	}

	again, _ := c.GetOrBuild(src)
	if again == tex {
		t.Error("GetOrBuild() after Release should rebuild")
	}
	if c.Scale() != 1 {
		t.Errorf("Scale() = %v, want 1", c.Scale())
	}
}

func TestCache_NilSource(t *testing.T) {
	c := NewCache(mustBuilder(t, 1))
	if _, err := c.GetOrBuild(nil); !errors.Is(err, ErrNilSource) {
		t.Errorf("GetOrBuild(nil) error = %v, want ErrNilSource", err)
	}
}
