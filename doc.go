// Package tint provides small, pure-function color manipulation and
// WCAG accessibility utilities.
//
// # Overview
//
// tint operates on CSS-style hex color strings ("#rrggbb", with 3-digit
// shorthand and missing-'#' forms accepted on input) and an immutable
// RGB value type. It covers three concerns:
//
//   - Conversions: hex parsing and canonicalization, RGB formatting,
//     CSS rgba() strings ([ParseHex], [SanitizeHex], [RGBToHex],
//     [RGBAString]).
//   - Adjustments: [Lighten], [Darken], [Grayscale], [Mix],
//     [Complementary], [Random].
//   - Accessibility: WCAG 2.1 relative luminance, contrast ratios,
//     AA/AAA checks, and contrast-preserving adjustment
//     ([ContrastRatio], [MeetsWCAGAA], [MeetsWCAGAAA],
//     [AdjustForContrast]).
//
// # Quick Start
//
//	import "github.com/gogpu/tint"
//
//	bg := "#ffffff"
//	fg, _ := tint.AdjustForContrast("#888888", bg, tint.DefaultMinContrastRatio)
//	ok := tint.MeetsWCAGAA(fg, bg, false) // true
//
//	label := tint.ContrastColor("#ffff00") // "#000000"
//
// # Error Handling
//
// Two idioms coexist deliberately. Value-producing operations (parsing,
// adjustments, contrast ratios) return [ErrInvalidHex] when input does
// not parse. Predicate-shaped operations always answer with a safe
// default instead: [IsDark] reports false on garbage input, [IsLight]
// therefore reports true, [ContrastColor] falls back to "#000000", and
// the WCAG checks report false. Callers observably depend on these
// defaults, so they are part of the contract.
//
// # Concurrency
//
// Every operation is a pure function over its arguments; parallel use
// needs no synchronization. The two package-level knobs, [SetLogger] and
// [SetRandSource], store their values atomically.
package tint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
