package ggtheme

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/ggtheme/asset"
	"github.com/gogpu/ggtheme/icon"
	"github.com/gogpu/ggtheme/internal/assets"
	"github.com/gogpu/ggtheme/style"
	"github.com/gogpu/ggtheme/text"
	"github.com/gogpu/ggtheme/texture"
)

// Result is the output of one Build pass.
type Result struct {
	Theme *Theme

	// DefaultStyle is drawn for style slots the theme does not define.
	DefaultStyle style.Box
	// DefaultIcon is drawn for icon slots the theme does not define.
	DefaultIcon *texture.Texture

	DefaultFont     *text.FontSource
	DefaultFontSize int

	// Scale is the display scale the pass ran at.
	Scale float64
	// Cache holds the texture cache counters of the pass. Misses equals
	// the number of raster skins decoded for style boxes.
	Cache texture.Stats
}

// Build generates the default theme.
//
// Every raster skin is decoded and resampled at most once; boxes that use
// the same skin share its texture. The first source that fails to decode
// aborts the pass with an *AssetError.
func Build(opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		log = Logger()
	}

	if !texture.ValidScale(o.scale) {
		log.Error("ggtheme: invalid scale", "scale", o.scale)
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, o.scale)
	}

	tbl := o.assets
	if tbl == nil {
		var err error
		if tbl, err = assets.Table(); err != nil {
			return nil, err
		}
	}

	font := o.font
	if font == nil {
		var err error
		if font, err = text.Default(); err != nil {
			return nil, fmt.Errorf("ggtheme: default font: %w", err)
		}
	}

	start := time.Now()
	log.Info("ggtheme: theme pass started", "scale", o.scale, "supersample", o.supersample)

	tb, err := texture.NewBuilder(o.scale,
		texture.WithSupersample(o.supersample),
		texture.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	cache := texture.NewCache(tb)
	defer cache.Release()

	f := &filler{
		theme:  NewTheme(),
		scale:  o.scale,
		assets: tbl,
		styles: style.NewBuilder(cache, log),
		icons:  icon.NewBuilder(tb, log),
		font:   font,
		log:    log,

		fallbackStyle: o.fallbackStyle,
	}

	if err := f.fill(); err != nil {
		log.Error("ggtheme: theme pass aborted", "scale", o.scale, "err", err)
		return nil, err
	}

	res := &Result{
		Theme:           f.theme,
		DefaultStyle:    f.defaultStyle,
		DefaultIcon:     f.defaultIcon,
		DefaultFont:     font,
		DefaultFontSize: text.DefaultSize,
		Scale:           o.scale,
		Cache:           cache.Stats(),
	}
	if o.fallbackIcon != nil {
		res.DefaultIcon = o.fallbackIcon
	}

	log.Info("ggtheme: theme pass finished",
		"scale", o.scale,
		"styleboxes", f.theme.Len(DataStyleBox),
		"icons", f.theme.Len(DataIcon),
		"textures", res.Cache.Entries,
		"cache_hits", res.Cache.Hits,
		"elapsed", time.Since(start),
	)
	return res, nil
}

// filler carries the state of one pass through the registration table.
// The first error sticks: later helpers return nil and fill reports it.
type filler struct {
	theme  *Theme
	scale  float64
	assets *asset.Table
	styles *style.Builder
	icons  *icon.Builder
	font   *text.FontSource
	log    *slog.Logger

	vector map[string]*texture.Texture
	empty  *texture.Texture

	// fallbackStyle replaces the generated default style when set.
	fallbackStyle style.Box
	defaultStyle  style.Box
	defaultIcon   *texture.Texture

	err error
}

func (f *filler) fail(name string, err error) {
	if f.err == nil {
		f.err = &AssetError{Asset: name, Err: err}
	}
}

// px scales a reference length for a constant slot. The fraction is
// dropped.
func (f *filler) px(v float64) int {
	return int(v * f.scale)
}

// textured builds a nine-patch box over the named raster skin.
func (f *filler) textured(name string, border, margins style.Sides[float64]) *style.Textured {
	if f.err != nil {
		return nil
	}
	src, err := f.assets.Raster(name)
	if err != nil {
		f.fail(name, err)
		return nil
	}
	b, err := f.styles.Textured(src, border, margins, true)
	if err != nil {
		f.fail(name, err)
		return nil
	}
	return b
}

// expand sets the expand margins of a textured box built by textured.
func (f *filler) expand(b *style.Textured, l, t, r, bottom float64) *style.Textured {
	if f.err != nil || b == nil {
		return b
	}
	if err := f.styles.Expand(b, l, t, r, bottom); err != nil {
		f.fail(b.Texture.Name(), err)
	}
	return b
}

// rasterIcon decodes and scales the named raster icon.
func (f *filler) rasterIcon(name string) *texture.Texture {
	if f.err != nil {
		return nil
	}
	src, err := f.assets.Raster(name)
	if err != nil {
		f.fail(name, err)
		return nil
	}
	t, err := f.icons.Make(src)
	if err != nil {
		f.fail(name, err)
		return nil
	}
	return t
}

// vectorIcon returns a generated vector icon by name.
func (f *filler) vectorIcon(name string) *texture.Texture {
	if f.err != nil {
		return nil
	}
	t, ok := f.vector[name]
	if !ok {
		f.fail(name, asset.ErrNotFound)
		return nil
	}
	return t
}

// sides is LTRB for reference lengths.
func sides(l, t, r, b float64) style.Sides[float64] {
	return style.LTRB(l, t, r, b)
}

// unset leaves every default margin to the widget.
var unset = style.All[float64](style.Unset)

func (f *filler) fill() error {
	icons := f.assets.Icons()
	f.vector = make(map[string]*texture.Texture, len(icons))
	for _, v := range icons {
		t, err := f.icons.Generate(v)
		if err != nil {
			return &AssetError{Asset: v.Name, Err: err}
		}
		f.vector[v.Name] = t
	}
	f.log.Debug("ggtheme: generated vector icons", "count", len(f.vector))
	f.empty = f.icons.Empty()

	// The default box is settled first so Window can reuse it.
	f.defaultStyle = f.fallbackStyle
	if f.defaultStyle == nil {
		f.defaultStyle = f.styles.Flat(colorError,
			style.WithCornerRadius(0),
			style.WithDrawCenter(false),
			style.WithBorderWidth(2),
		)
	}
	f.defaultIcon = f.vectorIcon("error_icon")
	if f.err != nil {
		return f.err
	}

	sections := []func(*boxes){
		f.fillButtons,
		f.fillToggles,
		f.fillText,
		f.fillRanges,
		f.fillWindows,
		f.fillMenus,
		f.fillGraph,
		f.fillViews,
		f.fillTabs,
		f.fillPickers,
		f.fillContainers,
	}
	shared := f.sharedBoxes()
	for _, section := range sections {
		section(shared)
		if f.err != nil {
			return f.err
		}
	}
	return nil
}
