package ggtheme

import (
	"math"

	"github.com/gogpu/ggtheme/style"
)

func (f *filler) fillWindows(_ *boxes) {
	t := f.theme

	// Window
	t.SetStyleBox("panel", "Window", f.defaultStyle)
	t.SetStyleBox("window_panel", "Window",
		f.expand(f.textured("popup_window", sides(10, 26, 10, 8), unset), 8, 24, 8, 6))
	t.SetConstant("scaleborder_size", "Window", f.px(4))

	t.SetFont("title_font", "Window", f.font)
	t.SetFontSize("title_font_size", "Window", FontSizeDefault)

	t.SetColor("title_color", "Window", colorBlack)
	t.SetColor("title_outline_modulate", "Window", colorWhite)

	t.SetConstant("title_outline_size", "Window", 0)
	t.SetConstant("title_height", "Window", f.px(20))
	t.SetConstant("resize_margin", "Window", f.px(4))

	t.SetIcon("close", "Window", f.rasterIcon("close"))
	t.SetIcon("close_highlight", "Window", f.rasterIcon("close_hl"))
	t.SetConstant("close_h_ofs", "Window", f.px(18))
	t.SetConstant("close_v_ofs", "Window", f.px(18))

	// FileDialog
	t.SetIcon("parent_folder", "FileDialog", f.rasterIcon("icon_parent_folder"))
	t.SetIcon("back_folder", "FileDialog", f.rasterIcon("arrow_left"))
	t.SetIcon("forward_folder", "FileDialog", f.rasterIcon("arrow_right"))
	t.SetIcon("reload", "FileDialog", f.rasterIcon("icon_reload"))
	t.SetIcon("toggle_hidden", "FileDialog", f.rasterIcon("icon_visibility"))
	t.SetIcon("folder", "FileDialog", f.rasterIcon("icon_folder"))
	t.SetIcon("file", "FileDialog", f.rasterIcon("icon_file"))
	t.SetColor("folder_icon_modulate", "FileDialog", colorWhite)
	t.SetColor("file_icon_modulate", "FileDialog", colorWhite)
	t.SetColor("files_disabled", "FileDialog", style.RGBA(0, 0, 0, 0.7))

	// Popups
	t.SetStyleBox("panel", "PopupPanel", f.styles.Flat(colorNormal))
	t.SetStyleBox("panel", "PopupDialog", f.styles.Flat(colorNormal))

	// Dialogs
	t.SetConstant("margin", "Dialogs", f.px(8))
	t.SetConstant("button_margin", "Dialogs", f.px(32))
}

func (f *filler) fillMenus(b *boxes) {
	t := f.theme

	// Popup menus always draw a border so they stand out from what is
	// behind them.
	panel := f.styles.Flat(colorPopup)
	panel.SetBorderWidthAll(f.styles.Scaled(2))
	panel.BorderColor = colorPopupBorder
	panelDisabled := panel.Clone()
	panelDisabled.Color = colorDisabled

	t.SetStyleBox("panel", "PopupMenu", panel)
	t.SetStyleBox("panel_disabled", "PopupMenu", panelDisabled)
	t.SetStyleBox("hover", "PopupMenu", f.styles.Flat(colorPopupHover))
	t.SetStyleBox("separator", "PopupMenu", b.separatorH)
	t.SetStyleBox("labeled_separator_left", "PopupMenu", b.separatorH)
	t.SetStyleBox("labeled_separator_right", "PopupMenu", b.separatorH)

	for _, name := range []string{"checked", "unchecked", "radio_checked", "radio_unchecked"} {
		t.SetIcon(name, "PopupMenu", f.vectorIcon(name))
	}
	t.SetIcon("submenu", "PopupMenu", f.rasterIcon("submenu"))
	t.SetIcon("submenu_mirrored", "PopupMenu", f.rasterIcon("submenu_mirrored"))
	f.defaultFont("PopupMenu")

	t.SetColor("font_color", "PopupMenu", colorFont)
	t.SetColor("font_accelerator_color", "PopupMenu", style.RGBA(0.7, 0.7, 0.7, 0.8))
	t.SetColor("font_disabled_color", "PopupMenu", style.RGBA(0.4, 0.4, 0.4, 0.8))
	t.SetColor("font_hover_color", "PopupMenu", colorFont)
	t.SetColor("font_separator_color", "PopupMenu", colorFont)
	t.SetColor("font_outline_color", "PopupMenu", colorWhite)

	t.SetConstant("hseparation", "PopupMenu", f.px(4))
	t.SetConstant("vseparation", "PopupMenu", f.px(4))
	t.SetConstant("outline_size", "PopupMenu", 0)
	t.SetConstant("item_start_padding", "PopupMenu", f.px(2))
	t.SetConstant("item_end_padding", "PopupMenu", f.px(2))
}

func (f *filler) fillTabs(b *boxes) {
	t := f.theme
	s := f.styles

	// TabContainer
	panel := f.expand(f.textured("tab_container_bg", style.All[float64](4), style.All[float64](4)), 3, 3, 3, 3)
	if panel != nil {
		panel.Expand.Top = s.Scaled(2)
		panel.Margins.Top = s.Scaled(8)
	}
	t.SetStyleBox("tab_bg", "TabContainer", panel)

	selected := s.Flat(colorNormal, style.WithMargins(10, 4, 10, 4), style.WithCornerRadius(0))
	selected.BorderWidth.Top = math.Round(s.Scaled(2))
	selected.BorderColor = colorFocus

	// Thin side borders keep neighbouring unselected tabs apart.
	unselected := s.Flat(colorPressed, style.WithMargins(10, 4, 10, 4), style.WithCornerRadius(0))
	unselected.BorderWidth.Left = math.Round(s.Scale())
	unselected.BorderWidth.Right = math.Round(s.Scale())
	unselected.BorderColor = colorPopupBorder

	disabled := unselected.Clone()
	disabled.Color = colorDisabled

	t.SetStyleBox("tab_selected", "TabContainer", selected)
	t.SetStyleBox("tab_unselected", "TabContainer", unselected)
	t.SetStyleBox("tab_disabled", "TabContainer", disabled)
	t.SetStyleBox("panel", "TabContainer", s.Flat(colorNormal, style.WithMargins(0, 0, 0, 0)))

	f.scrollButtons("TabContainer")
	t.SetIcon("menu", "TabContainer", f.rasterIcon("tab_menu"))
	t.SetIcon("menu_highlight", "TabContainer", f.rasterIcon("tab_menu_hl"))
	f.defaultFont("TabContainer")
	f.tabColors("TabContainer")

	t.SetConstant("side_margin", "TabContainer", f.px(8))
	t.SetConstant("icon_separation", "TabContainer", f.px(4))
	t.SetConstant("outline_size", "TabContainer", 0)

	// Tabs
	t.SetStyleBox("tab_selected", "Tabs",
		f.expand(f.textured("tab_current", sides(4, 3, 4, 1), sides(16, 3, 16, 2)), 2, 2, 2, 2))
	t.SetStyleBox("tab_unselected", "Tabs",
		f.expand(f.textured("tab_behind", sides(5, 4, 5, 1), sides(16, 5, 16, 2)), 3, 3, 3, 3))
	t.SetStyleBox("tab_disabled", "Tabs",
		f.expand(f.textured("tab_disabled", sides(5, 5, 5, 1), sides(16, 6, 16, 4)), 3, 0, 3, 3))
	t.SetStyleBox("button_pressed", "Tabs", b.pressed)
	t.SetStyleBox("button", "Tabs", b.normal)

	f.scrollButtons("Tabs")
	t.SetIcon("close", "Tabs", f.rasterIcon("tab_close"))
	f.defaultFont("Tabs")
	f.tabColors("Tabs")

	t.SetConstant("hseparation", "Tabs", f.px(4))
	t.SetConstant("outline_size", "Tabs", 0)
}

func (f *filler) scrollButtons(typ string) {
	t := f.theme
	t.SetIcon("increment", typ, f.rasterIcon("scroll_button_right"))
	t.SetIcon("increment_highlight", typ, f.rasterIcon("scroll_button_right_hl"))
	t.SetIcon("decrement", typ, f.rasterIcon("scroll_button_left"))
	t.SetIcon("decrement_highlight", typ, f.rasterIcon("scroll_button_left_hl"))
}

func (f *filler) tabColors(typ string) {
	t := f.theme
	t.SetColor("font_selected_color", typ, colorFontHover)
	t.SetColor("font_unselected_color", typ, colorFontLow)
	t.SetColor("font_disabled_color", typ, colorFontDisabled)
	t.SetColor("font_outline_color", typ, colorWhite)
}
