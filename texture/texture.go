// Package texture builds and caches the scaled textures a theme draws with.
//
// A Texture is an immutable RGBA8 pixel buffer with straight alpha. Textures
// are shared: style boxes and icon slots hold the same *Texture when they
// come from the same source, and nothing mutates a texture after it is
// built.
package texture

import (
	"errors"
	"fmt"
	stdimage "image"
	"io"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggtheme/internal/image"
)

// ErrEmptyTexture is returned when an empty texture is uploaded.
var ErrEmptyTexture = errors.New("texture: empty texture")

// Texture is a built theme texture.
type Texture struct {
	name string
	buf  *image.ImageBuf // nil for the empty texture
}

func newTexture(name string, buf *image.ImageBuf) *Texture {
	return &Texture{name: name, buf: buf.ToRGBA8()}
}

// Empty returns a zero-size texture for slots that intentionally show
// nothing. Each call returns a new instance.
func Empty() *Texture {
	return &Texture{name: "empty"}
}

// Name returns the name of the source the texture was built from.
func (t *Texture) Name() string { return t.name }

// Width returns the width in pixels.
func (t *Texture) Width() int {
	if t.buf == nil {
		return 0
	}
	return t.buf.Width()
}

// Height returns the height in pixels.
func (t *Texture) Height() int {
	if t.buf == nil {
		return 0
	}
	return t.buf.Height()
}

// IsEmpty reports whether the texture has no pixels.
func (t *Texture) IsEmpty() bool {
	return t.buf == nil
}

// Pix returns the RGBA8 pixel bytes, tightly packed, straight alpha.
// The slice must not be modified.
func (t *Texture) Pix() []byte {
	if t.buf == nil {
		return nil
	}
	return t.buf.Data()
}

// At returns the straight-alpha color of pixel (x, y).
func (t *Texture) At(x, y int) (r, g, b, a uint8) {
	if t.buf == nil {
		return 0, 0, 0, 0
	}
	return t.buf.GetRGBA(x, y)
}

// Image returns a copy of the texture as a standard library image.
func (t *Texture) Image() *stdimage.NRGBA {
	if t.buf == nil {
		return stdimage.NewNRGBA(stdimage.Rectangle{})
	}
	return t.buf.ToStdImage()
}

// EncodePNG writes the texture as PNG.
func (t *Texture) EncodePNG(w io.Writer) error {
	if t.buf == nil {
		return ErrEmptyTexture
	}
	return t.buf.EncodePNG(w)
}

// Mirror returns a new texture with rows reversed when flipY is set and
// columns reversed when flipX is set. The receiver is left untouched.
func (t *Texture) Mirror(flipY, flipX bool) *Texture {
	if t.buf == nil {
		return &Texture{name: t.name}
	}
	buf := t.buf.Clone()
	if flipY {
		buf.FlipY()
	}
	if flipX {
		buf.FlipX()
	}
	return &Texture{name: t.name, buf: buf}
}

// SamePixels reports whether two textures have identical size and pixels.
func (t *Texture) SamePixels(o *Texture) bool {
	if t.buf == nil || o.buf == nil {
		return t.buf == nil && o.buf == nil
	}
	return t.buf.Equal(o.buf)
}

// Descriptor describes the GPU texture that holds t: 2D RGBA8, one mip
// level, usable as a copy destination and a sampled binding.
func (t *Texture) Descriptor() gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label:         "ggtheme/" + t.name,
		Size:          gputypes.NewExtent2D(uint32(t.Width()), uint32(t.Height())), //nolint:gosec // sizes are positive and bounded by the source
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
	}
}

// Upload creates a GPU texture holding t's pixels.
func (t *Texture) Upload(tc gpucontext.TextureCreator) (gpucontext.Texture, error) {
	if t.buf == nil {
		return nil, ErrEmptyTexture
	}
	gt, err := tc.NewTextureFromRGBA(t.Width(), t.Height(), t.Pix())
	if err != nil {
		return nil, fmt.Errorf("texture: upload %q: %w", t.name, err)
	}
	return gt, nil
}

func (t *Texture) String() string {
	return fmt.Sprintf("texture %q %dx%d", t.name, t.Width(), t.Height())
}
