package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// PlayerColors is the palette assigned to seats in roster order.
var PlayerColors = []Color{
	ColorBrightRed,
	ColorBrightBlue,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorRed,
	ColorGreen,
}
