package tint

import (
	"fmt"
	"math"
)

// Defaults for operations that take a strength argument.
const (
	// DefaultAdjustPercent is the conventional strength for Lighten and Darken.
	DefaultAdjustPercent = 10

	// DefaultMixRatio blends two colors evenly.
	DefaultMixRatio = 0.5
)

// Lighten moves each channel of hex toward white by percent.
// Percent is clamped to [0, 100]: 0 is identity, 100 yields white.
func Lighten(hex string, percent int) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	f := float64(clampPercent(percent)) / 100
	return Color{
		R: roundInt(float64(c.R) + float64(255-c.R)*f),
		G: roundInt(float64(c.G) + float64(255-c.G)*f),
		B: roundInt(float64(c.B) + float64(255-c.B)*f),
	}.Hex(), nil
}

// Darken moves each channel of hex toward black by percent.
// Percent is clamped to [0, 100]: 0 is identity, 100 yields black.
func Darken(hex string, percent int) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	f := 1 - float64(clampPercent(percent))/100
	return Color{
		R: roundInt(float64(c.R) * f),
		G: roundInt(float64(c.G) * f),
		B: roundInt(float64(c.B) * f),
	}.Hex(), nil
}

// Grayscale converts hex to its perceptual gray equivalent using the
// 299/587/114 weights. This is deliberately not the WCAG relative
// luminance formula; see RelativeLuminance for that.
func Grayscale(hex string) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	v := roundInt(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
	return Color{R: v, G: v, B: v}.Hex(), nil
}

// Mix interpolates between two colors. Ratio is clamped to [0, 1]:
// 0 reproduces hex1 exactly, 1 reproduces hex2 exactly.
func Mix(hex1, hex2 string, ratio float64) (string, error) {
	c1, err := ParseHex(hex1)
	if err != nil {
		return "", fmt.Errorf("first color: %w", err)
	}
	c2, err := ParseHex(hex2)
	if err != nil {
		return "", fmt.Errorf("second color: %w", err)
	}
	t := clamp01(ratio)
	return Color{
		R: roundInt(float64(c1.R) + float64(c2.R-c1.R)*t),
		G: roundInt(float64(c1.G) + float64(c2.G-c1.G)*t),
		B: roundInt(float64(c1.B) + float64(c2.B-c1.B)*t),
	}.Hex(), nil
}

// Complementary inverts each channel of hex. Applying it twice
// returns the original color.
func Complementary(hex string) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}.Hex(), nil
}

// roundInt rounds half away from zero, the rounding rule used by every
// adjustment in this package.
func roundInt(v float64) int {
	return int(math.Round(v))
}

// clampPercent restricts a percentage to [0, 100] range.
func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
