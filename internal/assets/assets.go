// Package assets embeds the built-in theme sources.
//
// Raster skins and glyphs live under png/ as encoded streams, vector icons
// under svg/. The table is built once and shared: every call to Table
// returns the same sources, so identity-keyed caches see stable keys.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/gogpu/ggtheme/asset"
)

//go:embed png/*.png svg/*.svg
var files embed.FS

// iconSpec declares a vector icon. A zero size means the SVG viewBox
// decides.
type iconSpec struct {
	name          string
	width, height float64
}

// icons lists the vector icons in generation order.
var icons = []iconSpec{
	{"checked", 16, 16},
	{"unchecked", 16, 16},
	{"radio_checked", 16, 16},
	{"radio_unchecked", 16, 16},
	{"toggle_on", 0, 0},
	{"toggle_off", 0, 0},
	{"toggle_on_disabled", 0, 0},
	{"toggle_off_disabled", 0, 0},
	{"toggle_on_mirrored", 0, 0},
	{"toggle_off_mirrored", 0, 0},
	{"toggle_on_disabled_mirrored", 0, 0},
	{"toggle_off_disabled_mirrored", 0, 0},
	{"updown", 16, 16},
	{"slider_grabber", 16, 16},
	{"slider_grabber_hl", 16, 16},
	{"slider_grabber_disabled", 16, 16},
	{"hslider_tick", 4, 16},
	{"vslider_tick", 16, 4},
	{"error_icon", 16, 16},
}

var table = sync.OnceValues(load)

// Table returns the built-in source table.
func Table() (*asset.Table, error) {
	return table()
}

func load() (*asset.Table, error) {
	t := asset.NewTable()

	for _, spec := range icons {
		src, err := fs.ReadFile(files, "svg/"+spec.name+".svg")
		if err != nil {
			return nil, fmt.Errorf("assets: icon %q: %w", spec.name, err)
		}
		if err := t.AddIcon(asset.NewVector(spec.name, string(src), spec.width, spec.height)); err != nil {
			return nil, err
		}
	}

	entries, err := fs.ReadDir(files, "png")
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	for _, e := range entries {
		data, err := fs.ReadFile(files, "png/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("assets: raster %q: %w", e.Name(), err)
		}
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if err := t.AddRaster(asset.NewEncoded(name, data)); err != nil {
			return nil, err
		}
	}
	return t, nil
}
