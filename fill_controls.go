package ggtheme

import (
	"github.com/gogpu/ggtheme/style"
)

// boxes are shared between several widget types.
type boxes struct {
	normal   *style.Flat
	hover    *style.Flat
	pressed  *style.Flat
	disabled *style.Flat
	focus    *style.Flat

	lineEdit         *style.Flat
	lineEditReadOnly *style.Flat

	separatorH *style.Line
	separatorV *style.Line
}

func (f *filler) sharedBoxes() *boxes {
	s := f.styles
	b := &boxes{
		normal:   s.Flat(colorNormal),
		hover:    s.Flat(colorHover),
		pressed:  s.Flat(colorPressed),
		disabled: s.Flat(colorDisabled),
		focus: s.Flat(colorFocus,
			style.WithDrawCenter(false),
			style.WithBorderWidth(2),
		),
	}

	// A bottom line tells line edits apart from buttons.
	b.lineEdit = s.Flat(colorNormal)
	b.lineEdit.BorderWidth.Bottom = s.Scaled(2)
	b.lineEdit.BorderColor = colorPressed

	b.lineEditReadOnly = s.Flat(colorDisabled)
	b.lineEditReadOnly.BorderWidth.Bottom = s.Scaled(2)
	b.lineEditReadOnly.BorderColor = colorPressed.Mul(style.RGBA(1, 1, 1, 0.5))

	b.separatorH = s.Line(colorSeparator, false, sides(style.DefaultMargin, 0, style.DefaultMargin, 0))
	b.separatorV = s.Line(colorSeparator, true, sides(0, style.DefaultMargin, 0, style.DefaultMargin))
	return b
}

// buttonStates registers the four flat button states and focus.
func (f *filler) buttonStates(typ string, b *boxes) {
	t := f.theme
	t.SetStyleBox("normal", typ, b.normal)
	t.SetStyleBox("hover", typ, b.hover)
	t.SetStyleBox("pressed", typ, b.pressed)
	t.SetStyleBox("disabled", typ, b.disabled)
	t.SetStyleBox("focus", typ, b.focus)
}

// defaultFont registers the "font" and "font_size" slots that follow the
// theme defaults.
func (f *filler) defaultFont(typ string) {
	f.theme.SetFont("font", typ, nil)
	f.theme.SetFontSize("font_size", typ, FontSizeDefault)
}

func (f *filler) fillButtons(b *boxes) {
	t := f.theme

	// Button
	f.buttonStates("Button", b)
	f.defaultFont("Button")
	t.SetConstant("outline_size", "Button", 0)

	t.SetColor("font_color", "Button", colorFont)
	t.SetColor("font_pressed_color", "Button", colorFontPressed)
	t.SetColor("font_hover_color", "Button", colorFontHover)
	t.SetColor("font_hover_pressed_color", "Button", colorFontPressed)
	t.SetColor("font_disabled_color", "Button", colorFontDisabled)
	t.SetColor("font_outline_color", "Button", colorWhite)

	for _, name := range []string{"icon_normal_color", "icon_pressed_color", "icon_hover_color", "icon_hover_pressed_color", "icon_disabled_color"} {
		t.SetColor(name, "Button", colorWhite)
	}
	t.SetConstant("hseparation", "Button", f.px(2))

	// LinkButton
	t.SetStyleBox("focus", "LinkButton", b.focus)
	f.defaultFont("LinkButton")

	t.SetColor("font_color", "LinkButton", colorFont)
	t.SetColor("font_pressed_color", "LinkButton", colorFontPressed)
	t.SetColor("font_hover_color", "LinkButton", colorFontHover)
	t.SetColor("font_outline_color", "LinkButton", colorWhite)

	t.SetConstant("outline_size", "LinkButton", 0)
	t.SetConstant("underline_spacing", "LinkButton", f.px(2))

	// ColorPickerButton
	f.buttonStates("ColorPickerButton", b)
	f.defaultFont("ColorPickerButton")

	t.SetColor("font_color", "ColorPickerButton", colorWhite)
	t.SetColor("font_pressed_color", "ColorPickerButton", style.RGB(0.8, 0.8, 0.8))
	t.SetColor("font_hover_color", "ColorPickerButton", colorWhite)
	t.SetColor("font_disabled_color", "ColorPickerButton", style.RGBA(0.9, 0.9, 0.9, 0.3))
	t.SetColor("font_outline_color", "ColorPickerButton", colorWhite)

	t.SetConstant("hseparation", "ColorPickerButton", f.px(2))
	t.SetConstant("outline_size", "ColorPickerButton", 0)

	// OptionButton leaves room for the arrow on the trailing side.
	const wide, arrow = 2 * style.DefaultMargin, 21
	m := float64(style.DefaultMargin)
	t.SetStyleBox("focus", "OptionButton", b.focus)
	for _, st := range []struct {
		name  string
		color style.Color
	}{
		{"normal", colorNormal},
		{"hover", colorHover},
		{"pressed", colorPressed},
		{"disabled", colorDisabled},
	} {
		t.SetStyleBox(st.name, "OptionButton", f.styles.Flat(st.color, style.WithMargins(wide, m, arrow, m)))
		t.SetStyleBox(st.name+"_mirrored", "OptionButton", f.styles.Flat(st.color, style.WithMargins(arrow, m, wide, m)))
	}
	t.SetIcon("arrow", "OptionButton", f.rasterIcon("option_arrow"))
	f.defaultFont("OptionButton")

	t.SetColor("font_color", "OptionButton", colorFont)
	t.SetColor("font_pressed_color", "OptionButton", colorFontPressed)
	t.SetColor("font_hover_color", "OptionButton", colorFontHover)
	t.SetColor("font_disabled_color", "OptionButton", colorFontDisabled)
	t.SetColor("font_outline_color", "OptionButton", colorWhite)

	t.SetConstant("hseparation", "OptionButton", f.px(2))
	t.SetConstant("arrow_margin", "OptionButton", f.px(2))
	t.SetConstant("outline_size", "OptionButton", 0)

	// MenuButton
	f.buttonStates("MenuButton", b)
	f.defaultFont("MenuButton")

	t.SetColor("font_color", "MenuButton", colorFont)
	t.SetColor("font_pressed_color", "MenuButton", colorFontPressed)
	t.SetColor("font_hover_color", "MenuButton", colorFontHover)
	t.SetColor("font_disabled_color", "MenuButton", style.RGBA(1, 1, 1, 0.3))
	t.SetColor("font_outline_color", "MenuButton", colorWhite)

	t.SetConstant("hseparation", "MenuButton", f.px(3))
	t.SetConstant("outline_size", "MenuButton", 0)
}

func (f *filler) fillToggles(b *boxes) {
	t := f.theme

	// CheckBox
	cbxEmpty := f.styles.Empty(style.All[float64](4))
	for _, name := range []string{"normal", "pressed", "disabled", "hover", "hover_pressed"} {
		t.SetStyleBox(name, "CheckBox", cbxEmpty)
	}
	t.SetStyleBox("focus", "CheckBox", b.focus)

	for _, name := range []string{"checked", "unchecked", "radio_checked", "radio_unchecked"} {
		ic := f.vectorIcon(name)
		t.SetIcon(name, "CheckBox", ic)
		t.SetIcon(name+"_disabled", "CheckBox", ic)
	}
	f.defaultFont("CheckBox")
	f.toggleColors("CheckBox")

	// CheckButton
	cbEmpty := f.styles.Empty(sides(6, 4, 6, 4))
	for _, name := range []string{"normal", "pressed", "disabled", "hover", "hover_pressed"} {
		t.SetStyleBox(name, "CheckButton", cbEmpty)
	}
	t.SetStyleBox("focus", "CheckButton", b.focus)

	for _, slot := range []string{"on", "on_disabled", "off", "off_disabled"} {
		t.SetIcon(slot, "CheckButton", f.vectorIcon("toggle_"+slot))
		t.SetIcon(slot+"_mirrored", "CheckButton", f.vectorIcon("toggle_"+slot+"_mirrored"))
	}
	f.defaultFont("CheckButton")
	f.toggleColors("CheckButton")
}

func (f *filler) toggleColors(typ string) {
	t := f.theme
	t.SetColor("font_color", typ, colorFont)
	t.SetColor("font_pressed_color", typ, colorFontPressed)
	t.SetColor("font_hover_color", typ, colorFontHover)
	t.SetColor("font_hover_pressed_color", typ, colorFontPressed)
	t.SetColor("font_disabled_color", typ, colorFontDisabled)
	t.SetColor("font_outline_color", typ, colorWhite)

	t.SetConstant("hseparation", typ, f.px(4))
	t.SetConstant("check_vadjust", typ, 0)
	t.SetConstant("outline_size", typ, 0)
}

func (f *filler) fillRanges(b *boxes) {
	t := f.theme

	// ProgressBar
	t.SetStyleBox("bg", "ProgressBar", f.styles.Flat(colorDisabled, style.WithMargins(2, 2, 2, 2)))
	t.SetStyleBox("fg", "ProgressBar", f.styles.Flat(colorProgress, style.WithMargins(2, 2, 2, 2)))
	f.defaultFont("ProgressBar")

	t.SetColor("font_color", "ProgressBar", colorFontHover)
	t.SetColor("font_shadow_color", "ProgressBar", colorBlack)
	t.SetColor("font_outline_color", "ProgressBar", colorWhite)
	t.SetConstant("outline_size", "ProgressBar", 0)

	// Scroll bars: both orientations share the skins, the arrows are
	// hidden behind the empty icon.
	for _, typ := range []string{"HScrollBar", "VScrollBar"} {
		t.SetStyleBox("scroll", typ, f.textured("scroll_bg", style.All[float64](5), style.All[float64](0)))
		t.SetStyleBox("scroll_focus", typ, f.textured("scroll_bg", style.All[float64](5), style.All[float64](0)))
		t.SetStyleBox("grabber", typ, f.textured("scroll_grabber", style.All[float64](5), style.All[float64](2)))
		t.SetStyleBox("grabber_highlight", typ, f.textured("scroll_grabber_hl", style.All[float64](5), style.All[float64](2)))
		t.SetStyleBox("grabber_pressed", typ, f.textured("scroll_grabber_pressed", style.All[float64](5), style.All[float64](2)))

		for _, name := range []string{"increment", "increment_highlight", "decrement", "decrement_highlight"} {
			t.SetIcon(name, typ, f.empty)
		}
	}

	// Sliders
	slider := f.styles.Flat(colorNormal, style.WithCornerRadius(4))
	grabber := f.styles.Flat(colorProgress, style.WithCornerRadius(4))
	grabberHL := f.styles.Flat(colorFocus, style.WithCornerRadius(4))
	for _, s := range []struct{ typ, tick string }{
		{"HSlider", "hslider_tick"},
		{"VSlider", "vslider_tick"},
	} {
		t.SetStyleBox("slider", s.typ, slider)
		t.SetStyleBox("grabber_area", s.typ, grabber)
		t.SetStyleBox("grabber_area_highlight", s.typ, grabberHL)

		t.SetIcon("grabber", s.typ, f.vectorIcon("slider_grabber"))
		t.SetIcon("grabber_highlight", s.typ, f.vectorIcon("slider_grabber_hl"))
		t.SetIcon("grabber_disabled", s.typ, f.vectorIcon("slider_grabber_disabled"))
		t.SetIcon("tick", s.typ, f.vectorIcon(s.tick))
	}

	// SpinBox
	t.SetIcon("updown", "SpinBox", f.vectorIcon("updown"))
}
