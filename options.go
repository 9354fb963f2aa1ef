package ggtheme

import (
	"log/slog"

	"github.com/gogpu/ggtheme/asset"
	"github.com/gogpu/ggtheme/style"
	"github.com/gogpu/ggtheme/text"
	"github.com/gogpu/ggtheme/texture"
)

// Option configures a Build pass.
//
// Example:
//
//	res, err := ggtheme.Build(
//	    ggtheme.WithScale(2),
//	    ggtheme.WithFont(myFont),
//	)
type Option func(*options)

type options struct {
	scale         float64
	font          *text.FontSource
	fallbackStyle style.Box
	fallbackIcon  *texture.Texture
	supersample   bool
	assets        *asset.Table
	logger        *slog.Logger
}

// defaultOptions returns the settings of a plain Build call.
func defaultOptions() options {
	return options{
		scale:       1,
		supersample: true,
	}
}

// WithScale sets the display scale. The default is 1.
func WithScale(scale float64) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithFont sets the default font. Without it the built-in Go Regular face
// is used.
func WithFont(f *text.FontSource) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithFallbackStyle replaces the generated fallback style box, the box
// drawn for slots a widget looks up but the theme does not define.
func WithFallbackStyle(b style.Box) Option {
	return func(o *options) {
		o.fallbackStyle = b
	}
}

// WithFallbackIcon replaces the generated fallback icon.
func WithFallbackIcon(t *texture.Texture) Option {
	return func(o *options) {
		o.fallbackIcon = t
	}
}

// WithSupersample controls supersampled rendering of vector icons at
// fractional scales. It is on by default.
func WithSupersample(allow bool) Option {
	return func(o *options) {
		o.supersample = allow
	}
}

// WithAssets replaces the embedded source table. The table must provide
// every source name the default theme uses.
func WithAssets(t *asset.Table) Option {
	return func(o *options) {
		o.assets = t
	}
}

// WithLogger sets the logger for this pass instead of Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
