package tint

import "image/color"

// Color represents a color with red, green, blue integer channels.
// Each channel is logically in the range [0, 255]; out-of-range values
// produced by upstream arithmetic are tolerated and clamped on formatting.
// Color values are immutable: every operation returns a new value.
type Color struct {
	R, G, B int
}

// RGBA implements the standard color.Color interface.
// Channels are clamped to [0, 255] and expanded to 16-bit;
// alpha is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp255(c.R)) * 0x101
	g = uint32(clamp255(c.G)) * 0x101
	b = uint32(clamp255(c.B)) * 0x101
	a = 0xffff
	return
}

// FromColor converts a standard color.Color to a Color, discarding alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: int(r >> 8),
		G: int(g >> 8),
		B: int(b >> 8),
	}
}

// clamp255 restricts a channel value to [0, 255] range.
func clamp255(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors
var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 255, G: 255, B: 255}
)
