package tint

// IsDark reports whether hex is a dark color, using perceptual brightness
// (R*299 + G*587 + B*114) / 1000 with a threshold of 128.
// Unparsable input reports false.
func IsDark(hex string) bool {
	c, err := ParseHex(hex)
	if err != nil {
		return false
	}
	brightness := (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
	return brightness < 128
}

// IsLight is the logical negation of IsDark. Unparsable input therefore
// reports true; callers relying on the false/true asymmetry between the
// two predicates get it unchanged.
func IsLight(hex string) bool {
	return !IsDark(hex)
}

// ContrastColor picks black or white text for the given background color
// by perceptual luminance (0.299R + 0.587G + 0.114B) / 255. It never
// fails visibly: unparsable input falls back to black.
func ContrastColor(hex string) string {
	c, err := ParseHex(hex)
	if err != nil {
		return Black.Hex()
	}
	lum := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	if lum > 0.5 {
		return Black.Hex()
	}
	return White.Hex()
}
