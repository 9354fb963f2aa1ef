package ggtheme

import (
	"bytes"
	"errors"
	"image/png"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/ggtheme/asset"
	"github.com/gogpu/ggtheme/internal/assets"
	"github.com/gogpu/ggtheme/style"
	"github.com/gogpu/ggtheme/text"
	"github.com/gogpu/ggtheme/texture"
	"golang.org/x/image/font/gofont/goregular"
)

// buildAt builds the default theme at scale or fails the test.
func buildAt(t *testing.T, scale float64, opts ...Option) *Result {
	t.Helper()
	res, err := Build(append([]Option{WithScale(scale)}, opts...)...)
	if err != nil {
		t.Fatalf("Build(scale=%v) error = %v", scale, err)
	}
	return res
}

func styleBox[B style.Box](t *testing.T, th *Theme, name, typ string) B {
	t.Helper()
	box, ok := th.StyleBox(name, typ)
	if !ok {
		t.Fatalf("StyleBox(%q, %q) missing", name, typ)
	}
	b, ok := box.(B)
	if !ok {
		t.Fatalf("StyleBox(%q, %q) = %T", name, typ, box)
	}
	return b
}

func iconAt(t *testing.T, th *Theme, name, typ string) *texture.Texture {
	t.Helper()
	ic, ok := th.Icon(name, typ)
	if !ok || ic == nil {
		t.Fatalf("Icon(%q, %q) missing", name, typ)
	}
	return ic
}

// nativeSize reads the encoded size of an embedded raster.
func nativeSize(t *testing.T, name string) (int, int) {
	t.Helper()
	tbl, err := assets.Table()
	if err != nil {
		t.Fatal(err)
	}
	r, err := tbl.Raster(name)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(r.Data))
	if err != nil {
		t.Fatal(err)
	}
	return cfg.Width, cfg.Height
}

func TestBuild_InvalidScale(t *testing.T) {
	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		res, err := Build(WithScale(scale))
		if !errors.Is(err, ErrInvalidScale) {
			t.Errorf("Build(scale=%v) error = %v, want ErrInvalidScale", scale, err)
		}
		if res != nil {
			t.Errorf("Build(scale=%v) returned a result", scale)
		}
	}
}

func TestBuild_FlatScaling(t *testing.T) {
	tests := []struct {
		scale  float64
		margin float64
		radius float64
		focus  float64
	}{
		{1, 4, 3, 2},
		{1.5, 6, 4.5, 3},
		{2, 8, 6, 4},
	}
	for _, tt := range tests {
		res := buildAt(t, tt.scale)
		th := res.Theme

		normal := styleBox[*style.Flat](t, th, "normal", "Button")
		if want := style.All(tt.margin); normal.Margins != want {
			t.Errorf("scale %v: Button normal margins = %v, want %v", tt.scale, normal.Margins, want)
		}
		if want := style.AllCorners(tt.radius); normal.CornerRadius != want {
			t.Errorf("scale %v: corner radius = %v, want %v", tt.scale, normal.CornerRadius, want)
		}
		if normal.CornerDetail != 5 {
			t.Errorf("scale %v: corner detail = %d, want 5", tt.scale, normal.CornerDetail)
		}

		focus := styleBox[*style.Flat](t, th, "focus", "Button")
		if focus.DrawCenter || focus.BorderWidth != style.All(tt.focus) {
			t.Errorf("scale %v: focus = %+v, want outline of width %v", tt.scale, focus, tt.focus)
		}

		opt := styleBox[*style.Flat](t, th, "normal", "OptionButton")
		want := style.LTRB(8*tt.scale, 4*tt.scale, 21*tt.scale, 4*tt.scale)
		if opt.Margins != want {
			t.Errorf("scale %v: OptionButton margins = %v, want %v", tt.scale, opt.Margins, want)
		}
		mirrored := styleBox[*style.Flat](t, th, "normal_mirrored", "OptionButton")
		if mirrored.Margins.Left != want.Right || mirrored.Margins.Right != want.Left {
			t.Errorf("scale %v: mirrored margins = %v", tt.scale, mirrored.Margins)
		}

		for _, name := range []string{"bg", "camera", "node"} {
			b := styleBox[*style.Flat](t, th, name, "GraphEditMinimap")
			if b.Margins != (style.Sides[float64]{}) {
				t.Errorf("scale %v: minimap %s margins = %v, want none", tt.scale, name, b.Margins)
			}
		}
	}
}

func TestBuild_SharedBoxes(t *testing.T) {
	th := buildAt(t, 1).Theme

	focus := styleBox[*style.Flat](t, th, "focus", "Button")
	for _, typ := range []string{"LinkButton", "OptionButton", "CheckBox", "CheckButton", "LineEdit", "TextEdit", "CodeEdit", "RichTextLabel"} {
		if got := styleBox[*style.Flat](t, th, "focus", typ); got != focus {
			t.Errorf("%s focus is not the shared focus box", typ)
		}
	}

	lineEdit := styleBox[*style.Flat](t, th, "normal", "LineEdit")
	if styleBox[*style.Flat](t, th, "normal", "TextEdit") != lineEdit {
		t.Error("TextEdit normal should share the LineEdit box")
	}
	if lineEdit.BorderWidth != style.LTRB(0.0, 0, 0, 2) || lineEdit.BorderColor != colorPressed {
		t.Errorf("LineEdit border = %v %v, want a bottom line", lineEdit.BorderWidth, lineEdit.BorderColor)
	}
}

func TestBuild_TexturedBoxes(t *testing.T) {
	const scale = 2
	res := buildAt(t, scale)
	th := res.Theme

	codeEdit := styleBox[*style.Textured](t, th, "normal", "CodeEdit")
	completion := styleBox[*style.Textured](t, th, "completion", "CodeEdit")
	treeBg := styleBox[*style.Textured](t, th, "bg", "Tree")
	graphBg := styleBox[*style.Textured](t, th, "bg", "GraphEdit")

	if codeEdit == completion {
		t.Error("boxes over the same skin must be distinct descriptors")
	}
	for _, b := range []*style.Textured{completion, treeBg, graphBg} {
		if b.Texture != codeEdit.Texture {
			t.Errorf("tree_bg texture not shared: %v vs %v", b.Texture, codeEdit.Texture)
		}
	}

	w, h := nativeSize(t, "tree_bg")
	if codeEdit.Texture.Width() != w*scale || codeEdit.Texture.Height() != h*scale {
		t.Errorf("tree_bg texture = %dx%d, want %dx%d", codeEdit.Texture.Width(), codeEdit.Texture.Height(), w*scale, h*scale)
	}

	if codeEdit.Border != style.All[float64](6) || codeEdit.Margins != style.All[float64](0) {
		t.Errorf("CodeEdit normal = border %v margins %v", codeEdit.Border, codeEdit.Margins)
	}
	if treeBg.Margins != style.All[float64](style.Unset) {
		t.Errorf("Tree bg margins = %v, want unset", treeBg.Margins)
	}

	window := styleBox[*style.Textured](t, th, "window_panel", "Window")
	if want := style.LTRB(16.0, 48, 16, 12); window.Expand != want {
		t.Errorf("window_panel expand = %v, want %v", window.Expand, want)
	}

	tab := styleBox[*style.Textured](t, th, "tab_bg", "TabContainer")
	if want := style.LTRB(6.0, 4, 6, 6); tab.Expand != want {
		t.Errorf("TabContainer tab_bg expand = %v, want %v", tab.Expand, want)
	}
	if tab.Margins.Top != 16 || tab.Margins.Left != 8 {
		t.Errorf("TabContainer tab_bg margins = %v", tab.Margins)
	}

	h1 := styleBox[*style.Textured](t, th, "scroll", "HScrollBar")
	v1 := styleBox[*style.Textured](t, th, "scroll", "VScrollBar")
	if h1.Texture != v1.Texture {
		t.Error("scroll bars should share the scroll_bg texture")
	}
}

func TestBuild_OneDecodePerSkin(t *testing.T) {
	res := buildAt(t, 1.5)

	const skins = 23
	if res.Cache.Misses != skins || res.Cache.Entries != skins {
		t.Errorf("cache = %+v, want %d entries built once each", res.Cache, skins)
	}
	if res.Cache.Hits == 0 {
		t.Error("expected cache hits for skins used more than once")
	}

	seen := make(map[string]*texture.Texture)
	th := res.Theme
	for _, typ := range th.Types(DataStyleBox) {
		for _, name := range th.Names(DataStyleBox, typ) {
			box, _ := th.StyleBox(name, typ)
			tb, ok := box.(*style.Textured)
			if !ok {
				continue
			}
			if prev, ok := seen[tb.Texture.Name()]; ok && prev != tb.Texture {
				t.Errorf("skin %q has two textures", tb.Texture.Name())
			}
			seen[tb.Texture.Name()] = tb.Texture
		}
	}
	if len(seen) != skins {
		t.Errorf("distinct skins = %d, want %d", len(seen), skins)
	}
}

func TestBuild_Icons(t *testing.T) {
	const scale = 2
	th := buildAt(t, scale).Theme

	// Vector icons are generated once and shared.
	if iconAt(t, th, "checked", "CheckBox") != iconAt(t, th, "checked_disabled", "CheckBox") {
		t.Error("checked and checked_disabled should share the generated icon")
	}
	if iconAt(t, th, "checked", "CheckBox") != iconAt(t, th, "checked", "PopupMenu") {
		t.Error("CheckBox and PopupMenu should share the generated icon")
	}
	if got := iconAt(t, th, "checked", "CheckBox"); got.Width() != 16*scale {
		t.Errorf("checked width = %d, want %d", got.Width(), 16*scale)
	}

	// Raster icons are rebuilt for every slot.
	executing := iconAt(t, th, "executing_line", "CodeEdit")
	folded := iconAt(t, th, "folded", "CodeEdit")
	if executing == folded {
		t.Error("raster icons must not be cached")
	}
	if !executing.SamePixels(folded) {
		t.Error("icons from the same source should have the same pixels")
	}
	w, h := nativeSize(t, "arrow_right")
	if executing.Width() != w*scale || executing.Height() != h*scale {
		t.Errorf("arrow_right = %dx%d, want %dx%d", executing.Width(), executing.Height(), w*scale, h*scale)
	}

	for _, typ := range []string{"HScrollBar", "VScrollBar"} {
		if !iconAt(t, th, "increment", typ).IsEmpty() {
			t.Errorf("%s increment should be the empty icon", typ)
		}
	}

	resizer := iconAt(t, th, "resizer", "GraphEditMinimap")
	nodeResizer := iconAt(t, th, "resizer", "GraphNode")
	if resizer == nodeResizer {
		t.Fatal("flipped icon must be a new texture")
	}
	if !resizer.SamePixels(nodeResizer.Mirror(true, true)) {
		t.Error("minimap resizer should be the node resizer mirrored on both axes")
	}
}

func TestBuild_ConstantsAndFonts(t *testing.T) {
	th := buildAt(t, 1.5).Theme

	tests := []struct {
		name, typ string
		want      int
	}{
		{"hseparation", "Button", 3},
		{"shadow_offset_x", "Label", 1},
		{"title_height", "Window", 30},
		{"sv_width", "ColorPicker", 384},
		{"minimum_character_width", "LineEdit", 4},
		{"completion_lines", "CodeEdit", 7},
		{"margin_left", "MarginContainer", 0},
	}
	for _, tt := range tests {
		if got, ok := th.Constant(tt.name, tt.typ); !ok || got != tt.want {
			t.Errorf("Constant(%q, %q) = %d, %v, want %d", tt.name, tt.typ, got, ok, tt.want)
		}
	}

	if got, _ := th.FontSize("font_size", "HeaderLarge"); got != text.DefaultSize+12 {
		t.Errorf("HeaderLarge font size = %d", got)
	}
	if got, _ := th.FontSize("font_size", "Button"); got != FontSizeDefault {
		t.Errorf("Button font size = %d, want %d", got, FontSizeDefault)
	}
	if got, ok := th.Color("font_color", "HeaderMedium"); !ok || got != colorWhite {
		t.Errorf("HeaderMedium font_color = %v, %v, want inherited white", got, ok)
	}
	if got, _ := th.Color("font_disabled_color", "Button"); got.A != 0.5 {
		t.Errorf("disabled font alpha = %v, want 0.5", got.A)
	}
}

func TestBuild_Defaults(t *testing.T) {
	res := buildAt(t, 2)

	def, ok := res.DefaultStyle.(*style.Flat)
	if !ok {
		t.Fatalf("DefaultStyle = %T, want *style.Flat", res.DefaultStyle)
	}
	if def.Color != colorError || def.DrawCenter || def.BorderWidth != style.All[float64](4) {
		t.Errorf("DefaultStyle = %+v", def)
	}
	if def.CornerRadius != style.AllCorners(0) {
		t.Errorf("DefaultStyle corner radius = %v, want 0", def.CornerRadius)
	}
	if got, _ := res.Theme.StyleBox("panel", "Window"); got != res.DefaultStyle {
		t.Error("Window panel should be the default style")
	}
	if res.DefaultIcon == nil || res.DefaultIcon.Name() != "error_icon" {
		t.Errorf("DefaultIcon = %v, want error_icon", res.DefaultIcon)
	}
	if res.DefaultFontSize != text.DefaultSize {
		t.Errorf("DefaultFontSize = %d", res.DefaultFontSize)
	}
	def16, _ := text.Default()
	if res.DefaultFont != def16 {
		t.Error("DefaultFont should be the built-in font")
	}
	if res.Scale != 2 {
		t.Errorf("Scale = %v, want 2", res.Scale)
	}
}

func TestBuild_Options(t *testing.T) {
	font, err := text.NewFontSource(goregular.TTF, text.WithName("Custom"))
	if err != nil {
		t.Fatal(err)
	}
	fallbackStyle := &style.Empty{}
	fallbackIcon := texture.Empty()

	res := buildAt(t, 1,
		WithFont(font),
		WithFallbackStyle(fallbackStyle),
		WithFallbackIcon(fallbackIcon),
		WithSupersample(false),
	)
	if res.DefaultFont != font {
		t.Error("WithFont not applied to DefaultFont")
	}
	if f, _ := res.Theme.Font("title_font", "Window"); f != font {
		t.Error("WithFont not applied to the Window title font")
	}
	if res.DefaultStyle != fallbackStyle || res.DefaultIcon != fallbackIcon {
		t.Error("fallback options not applied")
	}
	if panel, _ := res.Theme.StyleBox("panel", "Window"); panel != style.Box(fallbackStyle) {
		t.Errorf("Window panel = %v, want the fallback style", panel)
	}
}

func TestBuild_SupersampleKeepsSize(t *testing.T) {
	on := buildAt(t, 1.5).Theme
	off := buildAt(t, 1.5, WithSupersample(false)).Theme
	for _, name := range []string{"checked", "radio_unchecked"} {
		a, b := iconAt(t, on, name, "CheckBox"), iconAt(t, off, name, "CheckBox")
		if a.Width() != b.Width() || a.Height() != b.Height() {
			t.Errorf("%s: %dx%d with supersampling, %dx%d without", name, a.Width(), a.Height(), b.Width(), b.Height())
		}
	}
}

// tableWith copies the embedded table, letting edit replace rasters.
func tableWith(t *testing.T, edit func(name string, r *asset.Raster) *asset.Raster) *asset.Table {
	t.Helper()
	src, err := assets.Table()
	if err != nil {
		t.Fatal(err)
	}
	tbl := asset.NewTable()
	for _, v := range src.Icons() {
		if err := tbl.AddIcon(v); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range src.RasterNames() {
		r, _ := src.Raster(name)
		if r = edit(name, r); r != nil {
			if err := tbl.AddRaster(r); err != nil {
				t.Fatal(err)
			}
		}
	}
	return tbl
}

func TestBuild_MalformedSource(t *testing.T) {
	tbl := tableWith(t, func(name string, r *asset.Raster) *asset.Raster {
		if name == "scroll_bg" {
			return asset.NewEncoded(name, []byte("not a png"))
		}
		return r
	})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	res, err := Build(WithAssets(tbl), WithLogger(logger))
	if res != nil {
		t.Error("a failed pass must not return a result")
	}
	var ae *AssetError
	if !errors.As(err, &ae) {
		t.Fatalf("Build() error = %v, want *AssetError", err)
	}
	if ae.Asset != "scroll_bg" {
		t.Errorf("AssetError.Asset = %q, want scroll_bg", ae.Asset)
	}
	if !strings.Contains(err.Error(), "scroll_bg") {
		t.Errorf("error %q should name the asset", err)
	}
	if !strings.Contains(buf.String(), "theme pass aborted") {
		t.Error("aborted pass should be logged at error level")
	}
}

func TestBuild_MalformedVector(t *testing.T) {
	src, err := assets.Table()
	if err != nil {
		t.Fatal(err)
	}
	docs := []string{
		"this is not svg at all",
		`<svg xmlns="http://www.w3.org/2000/svg"><path d="M zz Q !!"/></svg>`,
		`<svg xmlns="http://www.w3.org/2000/svg"><bogus/></svg>`,
	}
	for _, doc := range docs {
		tbl := asset.NewTable()
		for _, v := range src.Icons() {
			if v.Name == "updown" {
				v = asset.NewVector(v.Name, doc, v.Width, v.Height)
			}
			if err := tbl.AddIcon(v); err != nil {
				t.Fatal(err)
			}
		}
		for _, name := range src.RasterNames() {
			r, _ := src.Raster(name)
			if err := tbl.AddRaster(r); err != nil {
				t.Fatal(err)
			}
		}

		res, err := Build(WithAssets(tbl))
		if res != nil {
			t.Errorf("%q: a failed pass must not return a result", doc)
		}
		var ae *AssetError
		if !errors.As(err, &ae) || ae.Asset != "updown" {
			t.Errorf("%q: Build() error = %v, want AssetError for updown", doc, err)
		}
	}
}

func TestBuild_MissingSource(t *testing.T) {
	tbl := tableWith(t, func(name string, r *asset.Raster) *asset.Raster {
		if name == "option_arrow" {
			return nil
		}
		return r
	})

	_, err := Build(WithAssets(tbl))
	var ae *AssetError
	if !errors.As(err, &ae) || ae.Asset != "option_arrow" {
		t.Fatalf("Build() error = %v, want AssetError for option_arrow", err)
	}
	if !errors.Is(err, asset.ErrNotFound) {
		t.Errorf("Build() error = %v, want asset.ErrNotFound in the chain", err)
	}
}

func TestAssetError(t *testing.T) {
	inner := errors.New("boom")
	err := &AssetError{Asset: "tab_current", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("AssetError should unwrap to its cause")
	}
	if got, want := err.Error(), `ggtheme: asset "tab_current": boom`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
