package render

import "github.com/gdamore/tcell/v2"

// Neon palette
var (
	RgbBackground = tcell.NewRGBColor(14, 12, 28)
	RgbText       = tcell.NewRGBColor(220, 220, 235)
	RgbDim        = tcell.NewRGBColor(110, 105, 140)
	RgbCyan       = tcell.NewRGBColor(0, 230, 255)
	RgbMagenta    = tcell.NewRGBColor(255, 60, 200)
	RgbLime       = tcell.NewRGBColor(140, 255, 60)
	RgbAmber      = tcell.NewRGBColor(255, 180, 0)
	RgbRed        = tcell.NewRGBColor(255, 70, 70)
	RgbPadIdle    = tcell.NewRGBColor(45, 40, 80)
)

// Shared styles
var (
	StyleBase     = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	StyleDim      = StyleBase.Foreground(RgbDim)
	StyleTitle    = StyleBase.Foreground(RgbCyan).Bold(true)
	StyleAccent   = StyleBase.Foreground(RgbMagenta).Bold(true)
	StyleGood     = StyleBase.Foreground(RgbLime)
	StyleWarn     = StyleBase.Foreground(RgbAmber).Bold(true)
	StyleDanger   = StyleBase.Foreground(RgbRed).Bold(true)
	StyleOverlay  = tcell.StyleDefault.Background(RgbMagenta).Foreground(tcell.ColorBlack).Bold(true)
	StyleSelected = tcell.StyleDefault.Background(RgbCyan).Foreground(tcell.ColorBlack)
)
