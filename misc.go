package iw

import "image/color"
import "math"

// Helper values and small shared functions.

// Default colors for entity markers and trails. [Renderer.ResetColors]()
// restores every geometry to these.
var (
	DefaultMarkerColor = color.RGBA{0x1F, 0x77, 0xB4, 0xFF}
	DefaultTrailColor  = color.RGBA{0x1F, 0x77, 0xB4, 0x90}
	SelectionColor     = color.RGBA{0xFF, 0x7F, 0x0E, 0xFF}
)

// The watermark value meaning "never drawn / freshly reset". Exported
// through [EntityGeometry.LastRenderedFrame]().
const NoFrame = -1

// Grid dimensions for n tiled panes: cols = ceil(sqrt(n)),
// rows = ceil(n / cols).
func paneGrid(n int) (cols, rows int) {
	if n <= 0 { return 0, 0 }
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return cols, rows
}

// Normalizes any color.Color to non-premultiplied RGBA8.
func rgbaOf(clr color.Color) color.RGBA {
	if rgba, isRGBA := clr.(color.RGBA); isRGBA { return rgba }
	r, g, b, a := clr.RGBA()
	if a == 0 { return color.RGBA{} }
	// undo alpha premultiplication from the Color interface
	return color.RGBA{
		R: uint8((r*0xFFFF/a) >> 8),
		G: uint8((g*0xFFFF/a) >> 8),
		B: uint8((b*0xFFFF/a) >> 8),
		A: uint8(a >> 8),
	}
}
