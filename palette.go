package ggtheme

import "github.com/gogpu/ggtheme/style"

// Font colors.
var (
	colorFont         = style.RGB(0.875, 0.875, 0.875)
	colorFontLow      = style.RGB(0.7, 0.7, 0.7)
	colorFontLower    = style.RGB(0.65, 0.65, 0.65)
	colorFontHover    = style.RGB(0.95, 0.95, 0.95)
	colorFontDisabled = colorFont.Mul(style.RGBA(1, 1, 1, 0.5))
	colorFontPressed  = style.RGB(1, 1, 1)
	colorSelection    = style.RGB(0.5, 0.5, 0.5)
)

// Style box colors.
var (
	colorNormal       = style.RGBA(0.1, 0.1, 0.1, 0.5)
	colorHover        = style.RGBA(0.225, 0.225, 0.225, 0.5)
	colorPressed      = style.RGBA(0, 0, 0, 0.5)
	colorDisabled     = style.RGBA(0.1, 0.1, 0.1, 0.25)
	colorFocus        = style.RGBA(1, 1, 1, 0.75)
	colorPopup        = style.RGB(0.25, 0.25, 0.25)
	colorPopupBorder  = style.RGB(0.175, 0.175, 0.175)
	colorPopupHover   = style.RGB(0.4, 0.4, 0.4)
	colorSelected     = style.RGBA(1, 1, 1, 0.25)
	colorProgress     = style.RGBA(1, 1, 1, 0.4)
	colorSeparator    = style.RGB(0.5, 0.5, 0.5)
	colorError        = style.RGB(1, 0.365, 0.365)
	colorWhite        = style.RGB(1, 1, 1)
	colorBlack        = style.RGB(0, 0, 0)
	colorTransparent  = style.RGBA(0, 0, 0, 0)
	colorCurrentLine  = style.RGBA(0.25, 0.25, 0.26, 0.8)
	colorTreeLine     = style.RGB(0.27, 0.27, 0.27)
	colorGuide        = style.RGBA(0, 0, 0, 0.1)
	colorMinimapFrame = style.RGBA(0.65, 0.65, 0.65, 0.45)
)
