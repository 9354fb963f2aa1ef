package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggtheme"
	"github.com/gogpu/ggtheme/style"
	"github.com/gogpu/ggtheme/texture"
)

// manifestName is the file written next to the exported textures.
const manifestName = "manifest.yaml"

type manifest struct {
	Scale       float64              `yaml:"scale"`
	DefaultFont string               `yaml:"default_font"`
	FontSize    int                  `yaml:"default_font_size"`
	LineHeight  float64              `yaml:"default_line_height"`
	Fallback    fallbackEntry        `yaml:"fallback"`
	Textures    []textureEntry       `yaml:"textures"`
	Types       map[string]*typeInfo `yaml:"types"`
	Variations  map[string]string    `yaml:"variations,omitempty"`
}

type fallbackEntry struct {
	Style *boxEntry `yaml:"style,omitempty"`
	Icon  string    `yaml:"icon,omitempty"`
}

type textureEntry struct {
	File   string `yaml:"file"`
	Source string `yaml:"source"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type typeInfo struct {
	StyleBoxes map[string]*boxEntry   `yaml:"styleboxes,omitempty"`
	Icons      map[string]string      `yaml:"icons,omitempty"`
	Fonts      map[string]string      `yaml:"fonts,omitempty"`
	FontSizes  map[string]int         `yaml:"font_sizes,omitempty"`
	Colors     map[string]style.Color `yaml:"colors,omitempty"`
	Constants  map[string]int         `yaml:"constants,omitempty"`
}

type boxEntry struct {
	Kind    string               `yaml:"kind"`
	Margins style.Sides[float64] `yaml:"margins"`

	Texture string                `yaml:"texture,omitempty"`
	Border  *style.Sides[float64] `yaml:"border,omitempty"`
	Expand  *style.Sides[float64] `yaml:"expand,omitempty"`

	Color        *style.Color          `yaml:"color,omitempty"`
	BorderColor  *style.Color          `yaml:"border_color,omitempty"`
	BorderWidth  *style.Sides[float64] `yaml:"border_width,omitempty"`
	CornerRadius *style.Corners        `yaml:"corner_radius,omitempty"`
	CornerDetail int                   `yaml:"corner_detail,omitempty"`
	DrawCenter   *bool                 `yaml:"draw_center,omitempty"`

	Thickness int  `yaml:"thickness,omitempty"`
	Vertical  bool `yaml:"vertical,omitempty"`
}

// exporter names and writes textures, each distinct texture once.
type exporter struct {
	dir   string
	files map[*texture.Texture]string
	used  map[string]int
	m     *manifest
}

// export writes every distinct texture of res into dir as PNG, followed
// by the manifest.
func export(res *ggtheme.Result, dir string) (*manifest, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	e := &exporter{
		dir:   dir,
		files: make(map[*texture.Texture]string),
		used:  make(map[string]int),
		m: &manifest{
			Scale:    res.Scale,
			FontSize: res.DefaultFontSize,
			Types:    make(map[string]*typeInfo),
		},
	}
	if res.DefaultFont != nil {
		e.m.DefaultFont = res.DefaultFont.Name()
		e.m.LineHeight = res.DefaultFont.Metrics(float64(res.DefaultFontSize)).Height()
	}

	th := res.Theme
	for _, tex := range th.Textures() {
		if _, err := e.write(tex); err != nil {
			return nil, err
		}
	}
	if err := e.describe(th); err != nil {
		return nil, err
	}

	if res.DefaultStyle != nil {
		b, err := e.box(res.DefaultStyle)
		if err != nil {
			return nil, err
		}
		e.m.Fallback.Style = b
	}
	icon, err := e.write(res.DefaultIcon)
	if err != nil {
		return nil, err
	}
	e.m.Fallback.Icon = icon

	for _, typ := range th.Variations() {
		if e.m.Variations == nil {
			e.m.Variations = make(map[string]string)
		}
		e.m.Variations[typ], _ = th.TypeVariation(typ)
	}

	data, err := yaml.Marshal(e.m)
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifestName), data, 0o600); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	return e.m, nil
}

// write stores tex as PNG once and returns its file name. Empty textures
// have no file.
func (e *exporter) write(tex *texture.Texture) (string, error) {
	if tex == nil || tex.IsEmpty() {
		return "", nil
	}
	if name, ok := e.files[tex]; ok {
		return name, nil
	}

	// Raster icons are rebuilt per slot, so one source name can map to
	// several textures.
	base := tex.Name()
	if base == "" {
		base = "texture"
	}
	name := base + ".png"
	if n := e.used[base]; n > 0 {
		name = fmt.Sprintf("%s_%d.png", base, n+1)
	}
	e.used[base]++

	f, err := os.Create(filepath.Join(e.dir, name))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if err := tex.EncodePNG(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	e.files[tex] = name
	e.m.Textures = append(e.m.Textures, textureEntry{
		File:   name,
		Source: tex.Name(),
		Width:  tex.Width(),
		Height: tex.Height(),
	})
	return name, nil
}

func (e *exporter) typeInfo(typ string) *typeInfo {
	ti, ok := e.m.Types[typ]
	if !ok {
		ti = &typeInfo{}
		e.m.Types[typ] = ti
	}
	return ti
}

// describe records every slot of th.
func (e *exporter) describe(th *ggtheme.Theme) error {
	for _, d := range ggtheme.DataTypes() {
		for _, typ := range th.Types(d) {
			ti := e.typeInfo(typ)
			for _, name := range th.Names(d, typ) {
				if err := e.slot(ti, th, d, name, typ); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (e *exporter) slot(ti *typeInfo, th *ggtheme.Theme, d ggtheme.DataType, name, typ string) error {
	switch d {
	case ggtheme.DataStyleBox:
		box, _ := th.StyleBox(name, typ)
		b, err := e.box(box)
		if err != nil {
			return err
		}
		setSlot(&ti.StyleBoxes, name, b)
	case ggtheme.DataIcon:
		tex, _ := th.Icon(name, typ)
		file, err := e.write(tex)
		if err != nil {
			return err
		}
		setSlot(&ti.Icons, name, file)
	case ggtheme.DataFont:
		f, _ := th.Font(name, typ)
		font := "default"
		if f != nil {
			font = f.Name()
		}
		setSlot(&ti.Fonts, name, font)
	case ggtheme.DataFontSize:
		v, _ := th.FontSize(name, typ)
		setSlot(&ti.FontSizes, name, v)
	case ggtheme.DataColor:
		c, _ := th.Color(name, typ)
		setSlot(&ti.Colors, name, c)
	case ggtheme.DataConstant:
		v, _ := th.Constant(name, typ)
		setSlot(&ti.Constants, name, v)
	}
	return nil
}

func setSlot[V any](m *map[string]V, name string, v V) {
	if *m == nil {
		*m = make(map[string]V)
	}
	(*m)[name] = v
}

func (e *exporter) box(box style.Box) (*boxEntry, error) {
	b := &boxEntry{Kind: box.Kind().String(), Margins: box.ContentMargins()}
	switch v := box.(type) {
	case *style.Textured:
		file, err := e.write(v.Texture)
		if err != nil {
			return nil, err
		}
		b.Texture = file
		b.Border = &v.Border
		b.Expand = &v.Expand
		b.DrawCenter = &v.DrawCenter
	case *style.Flat:
		b.Color = &v.Color
		b.BorderColor = &v.BorderColor
		b.BorderWidth = &v.BorderWidth
		b.CornerRadius = &v.CornerRadius
		b.CornerDetail = v.CornerDetail
		b.DrawCenter = &v.DrawCenter
		if v.Expand != (style.Sides[float64]{}) {
			b.Expand = &v.Expand
		}
	case *style.Line:
		b.Color = &v.Color
		b.Thickness = v.Thickness
		b.Vertical = v.Vertical
	}
	return b, nil
}
