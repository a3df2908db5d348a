package core

// Color is the foreground of a screen cell. The tui package owns the mapping
// to terminal colors, so every value here needs a style there.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightBlue
	ColorGray
	ColorDarkGray

	colorCount // keep last
)

// Palette returns every color in declaration order.
func Palette() []Color {
	out := make([]Color, 0, colorCount)
	for c := ColorDefault; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
