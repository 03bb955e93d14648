package tint

import (
	"fmt"
	"math"
)

// WCAG 2.1 contrast thresholds.
const (
	// DefaultMinContrastRatio is the AA requirement for normal text.
	DefaultMinContrastRatio = 4.5

	aaNormalText  = 4.5
	aaLargeText   = 3.0
	aaaNormalText = 7.0
	aaaLargeText  = 4.5
)

// RelativeLuminance computes the WCAG 2.1 relative luminance of a color.
// Returns a value in [0, 1] where 0 is black and 1 is white.
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance
//
// This is the gamma-corrected formula used for contrast ratios, distinct
// from the simpler perceptual weighting used by IsDark and Grayscale.
func RelativeLuminance(c Color) float64 {
	r := linearize(float64(clamp255(c.R)) / 255)
	g := linearize(float64(clamp255(c.G)) / 255)
	b := linearize(float64(clamp255(c.B)) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize applies the sRGB gamma expansion from the WCAG definition.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio between two hex colors.
// Returns a value in [1, 21], symmetric in its arguments: 1 means no
// contrast, 21 is black against white.
func ContrastRatio(hex1, hex2 string) (float64, error) {
	c1, err := ParseHex(hex1)
	if err != nil {
		return 0, fmt.Errorf("first color: %w", err)
	}
	c2, err := ParseHex(hex2)
	if err != nil {
		return 0, fmt.Errorf("second color: %w", err)
	}
	return contrastRatio(c1, c2), nil
}

func contrastRatio(c1, c2 Color) float64 {
	l1 := RelativeLuminance(c1)
	l2 := RelativeLuminance(c2)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// MeetsWCAGAA reports whether two colors satisfy the WCAG AA contrast
// requirement: 4.5 for normal text, 3.0 for large text.
// Unparsable input reports false.
func MeetsWCAGAA(hex1, hex2 string, largeText bool) bool {
	required := aaNormalText
	if largeText {
		required = aaLargeText
	}
	return meetsRatio(hex1, hex2, required)
}

// MeetsWCAGAAA reports whether two colors satisfy the WCAG AAA contrast
// requirement: 7.0 for normal text, 4.5 for large text.
// Unparsable input reports false.
func MeetsWCAGAAA(hex1, hex2 string, largeText bool) bool {
	required := aaaNormalText
	if largeText {
		required = aaaLargeText
	}
	return meetsRatio(hex1, hex2, required)
}

func meetsRatio(hex1, hex2 string, required float64) bool {
	ratio, err := ContrastRatio(hex1, hex2)
	if err != nil {
		return false
	}
	return ratio >= required
}

// AdjustForContrast lightens or darkens the adjustable color until its
// contrast ratio against the fixed color reaches minRatio.
//
// If the pair already satisfies minRatio, the adjustable color is returned
// unchanged, in its original input form. Otherwise the search direction is
// decided once from the fixed color — darken against a light background,
// lighten against a dark one — and held for the whole search. Adjustment
// strength steps through 10%, 20%, ..., 100%, returning the first step
// that satisfies minRatio. If no step does, the extreme adjustment in the
// chosen direction is returned as a best effort; once both inputs parse,
// AdjustForContrast never fails, even when minRatio is unreachable.
func AdjustForContrast(adjustable, fixed string, minRatio float64) (string, error) {
	adj, err := ParseHex(adjustable)
	if err != nil {
		return "", fmt.Errorf("adjustable color: %w", err)
	}
	fix, err := ParseHex(fixed)
	if err != nil {
		return "", fmt.Errorf("fixed color: %w", err)
	}

	if contrastRatio(adj, fix) >= minRatio {
		return adjustable, nil
	}

	step := Lighten
	if IsLight(fixed) {
		step = Darken
	}

	log := Logger()
	for percent := 10; percent <= 100; percent += 10 {
		candidate, err := step(adjustable, percent)
		if err != nil {
			// Cannot happen once adjustable parsed; skip the step anyway.
			continue
		}
		c, err := ParseHex(candidate)
		if err != nil {
			continue
		}
		ratio := contrastRatio(c, fix)
		log.Debug("contrast search step",
			"percent", percent,
			"candidate", candidate,
			"ratio", ratio,
			"min_ratio", minRatio)
		if ratio >= minRatio {
			return candidate, nil
		}
	}

	// Best effort: the requested ratio is unreachable in the chosen
	// direction, so settle for the extreme adjustment.
	return step(adjustable, 100)
}
