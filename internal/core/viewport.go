package core

// Viewport projects arena pixel space onto the terminal cell grid.
// Games simulate in pixels and draw through a viewport so the same logic
// works at any terminal size.
type Viewport struct {
	arenaW, arenaH   float64
	screenW, screenH int
}

// NewViewport creates a projection from an arena onto a screen.
func NewViewport(arenaW, arenaH float64, screenW, screenH int) Viewport {
	if arenaW <= 0 {
		arenaW = DefaultArenaW
	}
	if arenaH <= 0 {
		arenaH = DefaultArenaH
	}
	return Viewport{arenaW: arenaW, arenaH: arenaH, screenW: screenW, screenH: screenH}
}

// CellRect converts a pixel box to a cell rectangle. A box with positive
// pixel area always covers at least one cell so thin entities stay visible.
func (v Viewport) CellRect(b Box) (x, y, w, h int) {
	sx := float64(v.screenW) / v.arenaW
	sy := float64(v.screenH) / v.arenaH
	x = int(b.X * sx)
	y = int(b.Y * sy)
	w = int(b.W*sx + 0.5)
	h = int(b.H*sy + 0.5)
	if w < 1 && b.W > 0 {
		w = 1
	}
	if h < 1 && b.H > 0 {
		h = 1
	}
	return x, y, w, h
}

// FillBox draws a pixel-space box onto the screen as a filled colored
// rectangle.
func (v Viewport) FillBox(dst *Screen, b Box, r rune, c Color) {
	x, y, w, h := v.CellRect(b)
	dst.FillRect(x, y, w, h, r, c)
}

// OutlineBox draws a pixel-space box onto the screen as a border.
func (v Viewport) OutlineBox(dst *Screen, b Box, c Color) {
	x, y, w, h := v.CellRect(b)
	dst.DrawBorder(x, y, w, h, c)
}
