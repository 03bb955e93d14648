package tint

import (
	"errors"
	"fmt"
)

// ErrInvalidHex reports input that is not a 3- or 6-digit hex color,
// with or without a leading '#'.
var ErrInvalidHex = errors.New("invalid hex color")

// ParseHex parses a hex color string into a Color.
// Supports formats: "rgb", "rrggbb", "#rgb", "#rrggbb".
// 3-digit shorthand expands each digit ("f00" parses as "ff0000").
// Only a single leading '#' is stripped; whitespace is not trimmed.
func ParseHex(s string) (Color, error) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	switch len(s) {
	case 3:
		r, okR := hexNibble(s[0])
		g, okG := hexNibble(s[1])
		b, okB := hexNibble(s[2])
		if !okR || !okG || !okB {
			return Color{}, ErrInvalidHex
		}
		// Duplicating a digit is the same as multiplying the nibble by 17.
		return Color{R: r * 17, G: g * 17, B: b * 17}, nil
	case 6:
		r, okR := hexByte(s[0], s[1])
		g, okG := hexByte(s[2], s[3])
		b, okB := hexByte(s[4], s[5])
		if !okR || !okG || !okB {
			return Color{}, ErrInvalidHex
		}
		return Color{R: r, G: g, B: b}, nil
	default:
		return Color{}, ErrInvalidHex
	}
}

// hexNibble decodes a single hex digit.
func hexNibble(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// hexByte decodes a pair of hex digits.
func hexByte(hi, lo byte) (int, bool) {
	h, okH := hexNibble(hi)
	l, okL := hexNibble(lo)
	return h*16 + l, okH && okL
}

// Hex returns the canonical lowercase "#rrggbb" form of the color.
// Channels are clamped to [0, 255] first, so Hex never produces an
// invalid string regardless of out-of-range channel values.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clamp255(c.R), clamp255(c.G), clamp255(c.B))
}

// RGBToHex formats three integer channels as a canonical hex string.
// It never fails: each channel is clamped to [0, 255].
func RGBToHex(r, g, b int) string {
	return Color{R: r, G: g, B: b}.Hex()
}

// SanitizeHex validates s and returns its canonical "#rrggbb" form.
// Shorthand, uppercase, and missing-'#' inputs are all normalized.
func SanitizeHex(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// IsValidHex reports whether s parses as a hex color.
func IsValidHex(s string) bool {
	_, err := ParseHex(s)
	return err == nil
}

// RGBAString renders s as a CSS rgba() string with the given alpha.
// Alpha is clamped to [0, 1] and printed with exactly two decimals,
// e.g. RGBAString("#ff0000", 0.5) returns "rgba(255, 0, 0, 0.50)".
func RGBAString(s string, alpha float64) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", c.R, c.G, c.B, clamp01(alpha)), nil
}
