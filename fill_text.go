package ggtheme

import (
	"github.com/gogpu/ggtheme/style"
	"github.com/gogpu/ggtheme/text"
)

// Header variations grow the default font size by these steps.
const (
	headerSmallStep  = 4
	headerMediumStep = 8
	headerLargeStep  = 12
)

func (f *filler) fillText(b *boxes) {
	t := f.theme

	// Label
	t.SetStyleBox("normal", "Label", f.styles.Empty(unset))
	f.defaultFont("Label")

	t.SetColor("font_color", "Label", colorWhite)
	t.SetColor("font_shadow_color", "Label", colorTransparent)
	t.SetColor("font_outline_color", "Label", colorWhite)

	t.SetConstant("shadow_offset_x", "Label", f.px(1))
	t.SetConstant("shadow_offset_y", "Label", f.px(1))
	t.SetConstant("outline_size", "Label", 0)
	t.SetConstant("shadow_outline_size", "Label", f.px(1))
	t.SetConstant("line_spacing", "Label", f.px(3))

	for _, h := range []struct {
		typ  string
		step int
	}{
		{"HeaderSmall", headerSmallStep},
		{"HeaderMedium", headerMediumStep},
		{"HeaderLarge", headerLargeStep},
	} {
		t.SetTypeVariation(h.typ, "Label")
		t.SetFontSize("font_size", h.typ, text.DefaultSize+h.step)
	}

	// LineEdit
	t.SetStyleBox("normal", "LineEdit", b.lineEdit)
	t.SetStyleBox("focus", "LineEdit", b.focus)
	t.SetStyleBox("read_only", "LineEdit", b.lineEditReadOnly)
	f.defaultFont("LineEdit")

	t.SetColor("font_color", "LineEdit", colorFont)
	t.SetColor("font_selected_color", "LineEdit", colorFontPressed)
	t.SetColor("font_uneditable_color", "LineEdit", colorFontDisabled)
	t.SetColor("font_outline_color", "LineEdit", colorWhite)
	t.SetColor("caret_color", "LineEdit", colorFontHover)
	t.SetColor("selection_color", "LineEdit", colorSelection)
	t.SetColor("clear_button_color", "LineEdit", colorFont)
	t.SetColor("clear_button_color_pressed", "LineEdit", colorFontPressed)

	t.SetConstant("minimum_character_width", "LineEdit", 4)
	t.SetConstant("outline_size", "LineEdit", 0)

	t.SetIcon("clear", "LineEdit", f.rasterIcon("line_edit_clear"))

	// TextEdit
	t.SetStyleBox("normal", "TextEdit", b.lineEdit)
	t.SetStyleBox("focus", "TextEdit", b.focus)
	t.SetStyleBox("read_only", "TextEdit", b.lineEditReadOnly)

	t.SetIcon("tab", "TextEdit", f.rasterIcon("tab"))
	t.SetIcon("space", "TextEdit", f.rasterIcon("space"))
	f.defaultFont("TextEdit")

	t.SetColor("background_color", "TextEdit", colorTransparent)
	t.SetColor("font_color", "TextEdit", colorFont)
	t.SetColor("font_selected_color", "TextEdit", colorFontPressed)
	t.SetColor("font_readonly_color", "TextEdit", colorFontDisabled)
	t.SetColor("font_outline_color", "TextEdit", colorWhite)
	t.SetColor("selection_color", "TextEdit", colorSelection)
	t.SetColor("current_line_color", "TextEdit", colorCurrentLine)
	t.SetColor("caret_color", "TextEdit", colorFont)
	t.SetColor("caret_background_color", "TextEdit", colorBlack)
	t.SetColor("brace_mismatch_color", "TextEdit", style.RGB(1, 0.363, 0.363))
	t.SetColor("word_highlighted_color", "TextEdit", style.RGBA(0.5, 0.5, 0.5, 0.25))

	t.SetConstant("line_spacing", "TextEdit", f.px(4))
	t.SetConstant("outline_size", "TextEdit", 0)

	f.fillCodeEdit(b)

	// RichTextLabel
	t.SetStyleBox("focus", "RichTextLabel", b.focus)
	t.SetStyleBox("normal", "RichTextLabel", f.styles.Empty(style.All[float64](0)))

	for _, face := range []string{"normal", "bold", "italics", "bold_italics", "mono"} {
		t.SetFont(face+"_font", "RichTextLabel", nil)
		t.SetFontSize(face+"_font_size", "RichTextLabel", FontSizeDefault)
	}

	t.SetColor("default_color", "RichTextLabel", colorWhite)
	t.SetColor("font_selected_color", "RichTextLabel", colorBlack)
	t.SetColor("selection_color", "RichTextLabel", style.RGBA(0.1, 0.1, 1, 0.8))
	t.SetColor("font_shadow_color", "RichTextLabel", colorTransparent)
	t.SetColor("font_outline_color", "RichTextLabel", colorWhite)

	t.SetConstant("shadow_offset_x", "RichTextLabel", f.px(1))
	t.SetConstant("shadow_offset_y", "RichTextLabel", f.px(1))
	t.SetConstant("shadow_as_outline", "RichTextLabel", 0)

	t.SetConstant("line_separation", "RichTextLabel", f.px(1))
	t.SetConstant("table_hseparation", "RichTextLabel", f.px(3))
	t.SetConstant("table_vseparation", "RichTextLabel", f.px(3))
	t.SetConstant("outline_size", "RichTextLabel", 0)

	t.SetColor("table_odd_row_bg", "RichTextLabel", colorTransparent)
	t.SetColor("table_even_row_bg", "RichTextLabel", colorTransparent)
	t.SetColor("table_border", "RichTextLabel", colorTransparent)

	// TooltipPanel, TooltipLabel
	const m = style.DefaultMargin
	t.SetStyleBox("panel", "TooltipPanel", f.styles.Flat(style.RGBA(0, 0, 0, 0.5),
		style.WithMargins(2*m, 0.5*m, 2*m, 0.5*m)))

	f.defaultFont("TooltipLabel")
	t.SetColor("font_color", "TooltipLabel", colorFont)
	t.SetColor("font_shadow_color", "TooltipLabel", colorTransparent)
	t.SetColor("font_outline_color", "TooltipLabel", colorTransparent)

	t.SetConstant("shadow_offset_x", "TooltipLabel", 1)
	t.SetConstant("shadow_offset_y", "TooltipLabel", 1)
	t.SetConstant("outline_size", "TooltipLabel", 0)
}

func (f *filler) fillCodeEdit(b *boxes) {
	t := f.theme

	t.SetStyleBox("normal", "CodeEdit", f.textured("tree_bg", style.All[float64](3), style.All[float64](0)))
	t.SetStyleBox("focus", "CodeEdit", b.focus)
	t.SetStyleBox("read_only", "CodeEdit", f.textured("tree_bg_disabled", style.All[float64](4), style.All[float64](0)))
	t.SetStyleBox("completion", "CodeEdit", f.textured("tree_bg", style.All[float64](3), style.All[float64](0)))

	t.SetIcon("tab", "CodeEdit", f.rasterIcon("tab"))
	t.SetIcon("space", "CodeEdit", f.rasterIcon("space"))
	t.SetIcon("breakpoint", "CodeEdit", f.rasterIcon("graph_port"))
	t.SetIcon("bookmark", "CodeEdit", f.rasterIcon("bookmark"))
	t.SetIcon("executing_line", "CodeEdit", f.rasterIcon("arrow_right"))
	t.SetIcon("can_fold", "CodeEdit", f.rasterIcon("arrow_down"))
	t.SetIcon("folded", "CodeEdit", f.rasterIcon("arrow_right"))
	t.SetIcon("folded_eol_icon", "CodeEdit", f.rasterIcon("ellipsis"))
	f.defaultFont("CodeEdit")

	t.SetColor("background_color", "CodeEdit", colorTransparent)
	t.SetColor("completion_background_color", "CodeEdit", style.RGB(0.17, 0.16, 0.2))
	t.SetColor("completion_selected_color", "CodeEdit", style.RGB(0.26, 0.26, 0.27))
	t.SetColor("completion_existing_color", "CodeEdit", style.RGBA(0.87, 0.87, 0.87, 0.13))
	t.SetColor("completion_scroll_color", "CodeEdit", colorFontPressed)
	t.SetColor("completion_font_color", "CodeEdit", style.RGB(0.67, 0.67, 0.67))
	t.SetColor("font_color", "CodeEdit", colorFont)
	t.SetColor("font_selected_color", "CodeEdit", colorBlack)
	t.SetColor("font_readonly_color", "CodeEdit", colorFont.WithAlpha(0.5))
	t.SetColor("font_outline_color", "CodeEdit", colorWhite)
	t.SetColor("selection_color", "CodeEdit", colorSelection)
	t.SetColor("bookmark_color", "CodeEdit", style.RGBA(0.5, 0.64, 1, 0.8))
	t.SetColor("breakpoint_color", "CodeEdit", style.RGB(0.9, 0.29, 0.3))
	t.SetColor("executing_line_color", "CodeEdit", style.RGB(0.98, 0.89, 0.27))
	t.SetColor("current_line_color", "CodeEdit", colorCurrentLine)
	t.SetColor("code_folding_color", "CodeEdit", style.RGBA(0.8, 0.8, 0.8, 0.8))
	t.SetColor("caret_color", "CodeEdit", colorFont)
	t.SetColor("caret_background_color", "CodeEdit", colorBlack)
	t.SetColor("brace_mismatch_color", "CodeEdit", style.RGB(1, 0.2, 0.2))
	t.SetColor("line_number_color", "CodeEdit", style.RGBA(0.67, 0.67, 0.67, 0.4))
	t.SetColor("safe_line_number_color", "CodeEdit", style.RGBA(0.67, 0.78, 0.67, 0.6))
	t.SetColor("word_highlighted_color", "CodeEdit", style.RGBA(0.8, 0.9, 0.9, 0.15))

	t.SetConstant("completion_lines", "CodeEdit", 7)
	t.SetConstant("completion_max_width", "CodeEdit", 50)
	t.SetConstant("completion_scroll_width", "CodeEdit", 3)
	t.SetConstant("line_spacing", "CodeEdit", f.px(4))
	t.SetConstant("outline_size", "CodeEdit", 0)
}
