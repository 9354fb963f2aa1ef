package ggtheme

import (
	"github.com/gogpu/ggtheme/style"
	"github.com/gogpu/ggtheme/texture"
)

func (f *filler) fillGraph(_ *boxes) {
	t := f.theme

	// GraphNode
	frame := sides(6, 24, 6, 5)
	frameMargins := sides(16, 24, 16, 6)
	plain := style.All[float64](4)
	plainMargins := sides(6, 4, 4, 4)

	t.SetStyleBox("frame", "GraphNode", f.textured("graph_node", frame, frameMargins))
	t.SetStyleBox("selectedframe", "GraphNode", f.textured("graph_node_selected", frame, frameMargins))
	t.SetStyleBox("defaultframe", "GraphNode", f.textured("graph_node_default", plain, plainMargins))
	t.SetStyleBox("defaultfocus", "GraphNode", f.textured("graph_node_default_focus", plain, plainMargins))
	t.SetStyleBox("comment", "GraphNode", f.textured("graph_node_comment", frame, frameMargins))
	t.SetStyleBox("commentfocus", "GraphNode", f.textured("graph_node_comment_focus", frame, frameMargins))
	t.SetStyleBox("breakpoint", "GraphNode", f.textured("graph_node_breakpoint", frame, frameMargins))
	t.SetStyleBox("position", "GraphNode", f.textured("graph_node_position", frame, frameMargins))

	t.SetConstant("separation", "GraphNode", f.px(1))
	t.SetIcon("port", "GraphNode", f.rasterIcon("graph_port"))
	t.SetIcon("close", "GraphNode", f.rasterIcon("graph_node_close"))
	t.SetIcon("resizer", "GraphNode", f.rasterIcon("window_resizer"))
	t.SetFont("title_font", "GraphNode", nil)
	t.SetColor("title_color", "GraphNode", colorBlack)
	t.SetColor("close_color", "GraphNode", colorBlack)
	t.SetColor("resizer_color", "GraphNode", colorBlack)
	t.SetConstant("title_offset", "GraphNode", f.px(20))
	t.SetConstant("close_offset", "GraphNode", f.px(18))
	t.SetConstant("port_offset", "GraphNode", f.px(3))

	// GraphEdit
	t.SetIcon("minus", "GraphEdit", f.rasterIcon("icon_zoom_less"))
	t.SetIcon("reset", "GraphEdit", f.rasterIcon("icon_zoom_reset"))
	t.SetIcon("more", "GraphEdit", f.rasterIcon("icon_zoom_more"))
	t.SetIcon("snap", "GraphEdit", f.rasterIcon("icon_snap_grid"))
	t.SetIcon("minimap", "GraphEdit", f.rasterIcon("icon_grid_minimap"))
	t.SetStyleBox("bg", "GraphEdit", f.textured("tree_bg", sides(4, 4, 4, 5), unset))
	t.SetColor("grid_minor", "GraphEdit", style.RGBA(1, 1, 1, 0.05))
	t.SetColor("grid_major", "GraphEdit", style.RGBA(1, 1, 1, 0.2))
	t.SetColor("selection_fill", "GraphEdit", style.RGBA(1, 1, 1, 0.3))
	t.SetColor("selection_stroke", "GraphEdit", style.RGBA(1, 1, 1, 0.8))
	t.SetColor("activity", "GraphEdit", colorWhite)
	t.SetConstant("bezier_len_pos", "GraphEdit", f.px(80))
	t.SetConstant("bezier_len_neg", "GraphEdit", f.px(160))

	// Port grab distances.
	t.SetConstant("port_grab_distance_horizontal", "GraphEdit", f.px(48))
	t.SetConstant("port_grab_distance_vertical", "GraphEdit", f.px(6))

	// GraphEditMinimap. Every margin is zero, the left one included: the
	// minimap panels draw flush with the frame, not 1px in from the left.
	none := []style.FlatOption{style.WithMargins(0, 0, 0, 0), style.WithCornerRadius(0)}
	t.SetStyleBox("bg", "GraphEditMinimap", f.styles.Flat(style.RGB(0.24, 0.24, 0.24), none...))

	camera := f.styles.Flat(style.RGBA(0.65, 0.65, 0.65, 0.2), none...)
	camera.BorderColor = colorMinimapFrame
	camera.SetBorderWidthAll(f.styles.Scaled(1))
	t.SetStyleBox("camera", "GraphEditMinimap", camera)

	node := f.styles.Flat(colorWhite, none...)
	node.CornerRadius = style.AllCorners(f.styles.Scaled(2))
	node.CornerDetail = style.CornerDetail(2)
	t.SetStyleBox("node", "GraphEditMinimap", node)

	// The minimap resizer sits in the opposite corner of the node's.
	t.SetIcon("resizer", "GraphEditMinimap", f.flippedIcon("window_resizer", true, true))
	t.SetColor("resizer_color", "GraphEditMinimap", style.RGBA(1, 1, 1, 0.85))
}

// flippedIcon mirrors a freshly built raster icon.
func (f *filler) flippedIcon(name string, flipY, flipX bool) *texture.Texture {
	ic := f.rasterIcon(name)
	if ic == nil {
		return nil
	}
	return f.icons.Flip(ic, flipY, flipX)
}

func (f *filler) fillViews(b *boxes) {
	t := f.theme

	// Tree
	t.SetStyleBox("bg", "Tree", f.textured("tree_bg", sides(4, 4, 4, 5), unset))
	t.SetStyleBox("bg_focus", "Tree", b.focus)
	t.SetStyleBox("selected", "Tree", f.styles.Flat(colorSelected))
	t.SetStyleBox("selected_focus", "Tree", f.styles.Flat(colorSelected))
	t.SetStyleBox("cursor", "Tree", b.focus)
	t.SetStyleBox("cursor_unfocused", "Tree", b.focus)
	t.SetStyleBox("button_pressed", "Tree", b.pressed)
	t.SetStyleBox("title_button_normal", "Tree", f.textured("tree_title", style.All[float64](4), unset))
	t.SetStyleBox("title_button_pressed", "Tree", f.textured("tree_title_pressed", style.All[float64](4), unset))
	t.SetStyleBox("title_button_hover", "Tree", f.textured("tree_title", style.All[float64](4), unset))
	t.SetStyleBox("custom_button", "Tree", b.normal)
	t.SetStyleBox("custom_button_pressed", "Tree", b.pressed)
	t.SetStyleBox("custom_button_hover", "Tree", b.hover)

	t.SetIcon("checked", "Tree", f.vectorIcon("checked"))
	t.SetIcon("unchecked", "Tree", f.vectorIcon("unchecked"))
	t.SetIcon("updown", "Tree", f.vectorIcon("updown"))
	t.SetIcon("select_arrow", "Tree", f.rasterIcon("dropdown"))
	t.SetIcon("arrow", "Tree", f.rasterIcon("arrow_down"))
	t.SetIcon("arrow_collapsed", "Tree", f.rasterIcon("arrow_right"))
	t.SetIcon("arrow_collapsed_mirrored", "Tree", f.rasterIcon("arrow_left"))

	t.SetFont("title_button_font", "Tree", nil)
	f.defaultFont("Tree")

	t.SetColor("title_button_color", "Tree", colorFont)
	t.SetColor("font_color", "Tree", colorFontLow)
	t.SetColor("font_selected_color", "Tree", colorFontPressed)
	t.SetColor("font_outline_color", "Tree", colorWhite)
	t.SetColor("guide_color", "Tree", colorGuide)
	t.SetColor("drop_position_color", "Tree", style.RGB(1, 0.3, 0.2))
	t.SetColor("relationship_line_color", "Tree", colorTreeLine)
	t.SetColor("parent_hl_line_color", "Tree", colorTreeLine)
	t.SetColor("children_hl_line_color", "Tree", colorTreeLine)
	t.SetColor("custom_button_font_highlight", "Tree", colorFontHover)

	t.SetConstant("hseparation", "Tree", f.px(4))
	t.SetConstant("vseparation", "Tree", f.px(4))
	t.SetConstant("item_margin", "Tree", f.px(12))
	t.SetConstant("button_margin", "Tree", f.px(4))
	t.SetConstant("draw_relationship_lines", "Tree", 0)
	t.SetConstant("relationship_line_width", "Tree", 1)
	t.SetConstant("parent_hl_line_width", "Tree", 1)
	t.SetConstant("children_hl_line_width", "Tree", 1)
	t.SetConstant("parent_hl_line_margin", "Tree", 0)
	t.SetConstant("draw_guides", "Tree", 1)
	t.SetConstant("scroll_border", "Tree", 4)
	t.SetConstant("scroll_speed", "Tree", 12)
	t.SetConstant("outline_size", "Tree", 0)

	// ItemList
	t.SetStyleBox("bg", "ItemList", f.styles.Flat(colorNormal))
	t.SetStyleBox("bg_focus", "ItemList", b.focus)
	t.SetConstant("hseparation", "ItemList", 4)
	t.SetConstant("vseparation", "ItemList", 2)
	t.SetConstant("icon_margin", "ItemList", 4)
	t.SetConstant("line_separation", "ItemList", f.px(2))
	f.defaultFont("ItemList")

	t.SetColor("font_color", "ItemList", colorFontLower)
	t.SetColor("font_selected_color", "ItemList", colorFontPressed)
	t.SetColor("font_outline_color", "ItemList", colorWhite)
	t.SetColor("guide_color", "ItemList", colorGuide)
	t.SetStyleBox("selected", "ItemList", f.styles.Flat(colorSelected))
	t.SetStyleBox("selected_focus", "ItemList", f.styles.Flat(colorSelected))
	t.SetStyleBox("cursor", "ItemList", b.focus)
	t.SetStyleBox("cursor_unfocused", "ItemList", b.focus)
	t.SetConstant("outline_size", "ItemList", 0)
}

func (f *filler) fillPickers(_ *boxes) {
	t := f.theme

	t.SetConstant("margin", "ColorPicker", f.px(4))
	t.SetConstant("sv_width", "ColorPicker", f.px(256))
	t.SetConstant("sv_height", "ColorPicker", f.px(256))
	t.SetConstant("h_width", "ColorPicker", f.px(30))
	t.SetConstant("label_width", "ColorPicker", f.px(10))

	t.SetIcon("screen_picker", "ColorPicker", f.rasterIcon("icon_color_pick"))
	t.SetIcon("add_preset", "ColorPicker", f.rasterIcon("icon_add"))
	t.SetIcon("color_hue", "ColorPicker", f.rasterIcon("color_picker_hue"))
	t.SetIcon("color_sample", "ColorPicker", f.rasterIcon("color_picker_sample"))
	t.SetIcon("preset_bg", "ColorPicker", f.rasterIcon("mini_checkerboard"))
	t.SetIcon("overbright_indicator", "ColorPicker", f.rasterIcon("overbright_indicator"))
	t.SetIcon("bar_arrow", "ColorPicker", f.rasterIcon("bar_arrow"))
	t.SetIcon("picker_cursor", "ColorPicker", f.rasterIcon("picker_cursor"))

	t.SetIcon("bg", "ColorPickerButton", f.rasterIcon("mini_checkerboard"))
}

func (f *filler) fillContainers(b *boxes) {
	t := f.theme

	t.SetStyleBox("bg", "ScrollContainer", f.styles.Empty(unset))

	// Separators
	t.SetStyleBox("separator", "HSeparator", b.separatorH)
	t.SetStyleBox("separator", "VSeparator", b.separatorV)
	t.SetConstant("separation", "HSeparator", f.px(4))
	t.SetConstant("separation", "VSeparator", f.px(4))

	t.SetIcon("close", "Icons", f.rasterIcon("icon_close"))
	t.SetFont("normal", "Fonts", nil)
	t.SetFont("large", "Fonts", f.font)

	// Split and box containers
	t.SetStyleBox("bg", "VSplitContainer", f.textured("vsplit_bg", style.All[float64](1), unset))
	t.SetStyleBox("bg", "HSplitContainer", f.textured("hsplit_bg", style.All[float64](1), unset))
	t.SetIcon("grabber", "VSplitContainer", f.rasterIcon("vsplitter"))
	t.SetIcon("grabber", "HSplitContainer", f.rasterIcon("hsplitter"))

	t.SetConstant("separation", "HBoxContainer", f.px(4))
	t.SetConstant("separation", "VBoxContainer", f.px(4))
	for _, side := range []string{"left", "top", "right", "bottom"} {
		t.SetConstant("margin_"+side, "MarginContainer", 0)
	}
	t.SetConstant("hseparation", "GridContainer", f.px(4))
	t.SetConstant("vseparation", "GridContainer", f.px(4))
	t.SetConstant("separation", "HSplitContainer", f.px(12))
	t.SetConstant("separation", "VSplitContainer", f.px(12))
	t.SetConstant("autohide", "HSplitContainer", f.px(1))
	t.SetConstant("autohide", "VSplitContainer", f.px(1))

	t.SetStyleBox("panel", "PanelContainer", f.styles.Flat(colorNormal, style.WithMargins(0, 0, 0, 0)))

	// Panel
	t.SetStyleBox("panel", "Panel", f.styles.Flat(colorNormal, style.WithMargins(0, 0, 0, 0)))
	t.SetStyleBox("panel_fg", "Panel", f.styles.Flat(colorNormal, style.WithMargins(0, 0, 0, 0)))
}
