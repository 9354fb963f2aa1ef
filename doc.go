// Package ggtheme generates the default widget theme at a display scale.
//
// # Overview
//
// A theme is a table of style boxes, icons, fonts, font sizes, colors and
// constants keyed by widget type and slot name. Build fills that table for
// one scale from the embedded image sources: raster skins are decoded and
// resampled once per pass and shared by every box that uses them, vector
// icons are drawn straight at the target size, and every length is
// multiplied by the scale before it is stored.
//
// # Quick Start
//
//	import "github.com/gogpu/ggtheme"
//
//	res, err := ggtheme.Build(ggtheme.WithScale(1.5))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	box, _ := res.Theme.StyleBox("normal", "Button")
//	arrow, _ := res.Theme.Icon("arrow", "OptionButton")
//
// # Process defaults
//
// MakeDefault builds a theme and installs it as the process-wide default,
// ClearDefault drops it again. Default returns the installed result or nil.
//
// # Architecture
//
// The library is organized into:
//   - asset: image source descriptors and the named source table
//   - texture: scaled textures, the texture builder and the per-pass cache
//   - style: style box variants and their scale-aware builder
//   - icon: raster, vector and mirrored icons
//   - text: font handles for the theme's font slots
//   - config: TOML and YAML build settings
//   - internal/raster: decoding and SVG rasterization
//
// # Logging
//
// ggtheme is silent by default. See SetLogger.
package ggtheme
