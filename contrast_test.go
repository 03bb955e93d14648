package tint

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

const lumTolerance = 1e-9

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want float64
	}{
		{"black", Color{0, 0, 0}, 0},
		{"white", Color{255, 255, 255}, 1},
		{"red", Color{255, 0, 0}, 0.2126},
		{"green", Color{0, 255, 0}, 0.7152},
		{"blue", Color{0, 0, 255}, 0.0722},
		{"out of range clamps", Color{300, -10, 0}, 0.2126},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeLuminance(tt.c)
			if math.Abs(got-tt.want) > lumTolerance {
				t.Errorf("RelativeLuminance(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestRelativeLuminance_LowChannelBranch(t *testing.T) {
	// Channel values at or below 0.03928*255 ≈ 10 use the linear segment.
	got := RelativeLuminance(Color{10, 0, 0})
	want := 0.2126 * (10.0 / 255) / 12.92
	if math.Abs(got-want) > lumTolerance {
		t.Errorf("RelativeLuminance({10,0,0}) = %v, want %v", got, want)
	}
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name       string
		hex1, hex2 string
		want       float64
	}{
		{"black on white", "#000000", "#ffffff", 21},
		{"white on white", "#ffffff", "#ffffff", 1},
		{"black on black", "#000000", "#000000", 1},
		{"same arbitrary color", "#3498db", "#3498db", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContrastRatio(tt.hex1, tt.hex2)
			if err != nil {
				t.Fatalf("ContrastRatio(%q, %q) error = %v", tt.hex1, tt.hex2, err)
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("ContrastRatio(%q, %q) = %v, want %v", tt.hex1, tt.hex2, got, tt.want)
			}
		})
	}
}

func TestContrastRatio_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"#000000", "#ffffff"},
		{"#777777", "#ffffff"},
		{"#3498db", "#fedcba"},
		{"#ff0000", "#00ff00"},
	}

	for _, p := range pairs {
		ab, err := ContrastRatio(p[0], p[1])
		if err != nil {
			t.Fatalf("ContrastRatio(%q, %q) error = %v", p[0], p[1], err)
		}
		ba, err := ContrastRatio(p[1], p[0])
		if err != nil {
			t.Fatalf("ContrastRatio(%q, %q) error = %v", p[1], p[0], err)
		}
		if ab != ba {
			t.Errorf("ContrastRatio not symmetric for %v: %v != %v", p, ab, ba)
		}
		if ab < 1 || ab > 21+1e-6 {
			t.Errorf("ContrastRatio(%q, %q) = %v, outside [1, 21]", p[0], p[1], ab)
		}
	}
}

func TestContrastRatio_Invalid(t *testing.T) {
	if _, err := ContrastRatio("bogus", "#ffffff"); !errors.Is(err, ErrInvalidHex) {
		t.Errorf("ContrastRatio with invalid first color: error = %v, want ErrInvalidHex", err)
	}
	if _, err := ContrastRatio("#ffffff", "bogus"); !errors.Is(err, ErrInvalidHex) {
		t.Errorf("ContrastRatio with invalid second color: error = %v, want ErrInvalidHex", err)
	}
}

func TestMeetsWCAGAA(t *testing.T) {
	tests := []struct {
		name       string
		hex1, hex2 string
		largeText  bool
		want       bool
	}{
		{"black on white", "#000000", "#ffffff", false, true},
		{"gray 777 on white normal", "#777777", "#ffffff", false, false},
		{"gray 777 on white large", "#777777", "#ffffff", true, true},
		{"identical colors", "#3498db", "#3498db", false, false},
		{"invalid first", "bogus", "#ffffff", false, false},
		{"invalid second", "#ffffff", "bogus", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsWCAGAA(tt.hex1, tt.hex2, tt.largeText); got != tt.want {
				t.Errorf("MeetsWCAGAA(%q, %q, %v) = %v, want %v", tt.hex1, tt.hex2, tt.largeText, got, tt.want)
			}
		})
	}
}

func TestMeetsWCAGAAA(t *testing.T) {
	tests := []struct {
		name       string
		hex1, hex2 string
		largeText  bool
		want       bool
	}{
		{"black on white", "#000000", "#ffffff", false, true},
		{"gray 777 on white normal", "#777777", "#ffffff", false, false},
		{"gray 777 on white large", "#777777", "#ffffff", true, false},
		{"gray 767676 on white large", "#767676", "#ffffff", true, true},
		{"invalid input", "bogus", "#ffffff", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsWCAGAAA(tt.hex1, tt.hex2, tt.largeText); got != tt.want {
				t.Errorf("MeetsWCAGAAA(%q, %q, %v) = %v, want %v", tt.hex1, tt.hex2, tt.largeText, got, tt.want)
			}
		})
	}
}

func TestAdjustForContrast_AlreadySufficient(t *testing.T) {
	// A pair that already meets the ratio comes back in its original
	// input form, not re-canonicalized.
	got, err := AdjustForContrast("000", "#ffffff", 4.5)
	if err != nil {
		t.Fatalf("AdjustForContrast error = %v", err)
	}
	if got != "000" {
		t.Errorf("AdjustForContrast = %q, want original input %q", got, "000")
	}
}

func TestAdjustForContrast_DarkensAgainstLight(t *testing.T) {
	got, err := AdjustForContrast("#888888", "#ffffff", 4.5)
	if err != nil {
		t.Fatalf("AdjustForContrast error = %v", err)
	}
	// First fit: 10% darkening is not enough, 20% is.
	if got != "#6d6d6d" {
		t.Errorf("AdjustForContrast(#888888, #ffffff, 4.5) = %q, want %q", got, "#6d6d6d")
	}
	ratio, err := ContrastRatio(got, "#ffffff")
	if err != nil {
		t.Fatalf("ContrastRatio error = %v", err)
	}
	if ratio < 4.5 {
		t.Errorf("adjusted color ratio = %v, want >= 4.5", ratio)
	}
}

func TestAdjustForContrast_LightensAgainstDark(t *testing.T) {
	got, err := AdjustForContrast("#777777", "#000000", 7.0)
	if err != nil {
		t.Fatalf("AdjustForContrast error = %v", err)
	}
	// First fit at 30% lightening.
	if got != "#a0a0a0" {
		t.Errorf("AdjustForContrast(#777777, #000000, 7.0) = %q, want %q", got, "#a0a0a0")
	}
	ratio, err := ContrastRatio(got, "#000000")
	if err != nil {
		t.Fatalf("ContrastRatio error = %v", err)
	}
	if ratio < 7.0 {
		t.Errorf("adjusted color ratio = %v, want >= 7.0", ratio)
	}
}

func TestAdjustForContrast_UnreachableFallsBackToExtreme(t *testing.T) {
	// 21 is the maximum possible ratio; asking for more must still
	// return the extreme adjustment, never an error.
	got, err := AdjustForContrast("#ff0000", "#ffffff", 30)
	if err != nil {
		t.Fatalf("AdjustForContrast error = %v", err)
	}
	if got != "#000000" {
		t.Errorf("AdjustForContrast(#ff0000, #ffffff, 30) = %q, want %q", got, "#000000")
	}

	// Same against a dark fixed color: extreme lightening.
	got, err = AdjustForContrast("#ff0000", "#000000", 30)
	if err != nil {
		t.Fatalf("AdjustForContrast error = %v", err)
	}
	if got != "#ffffff" {
		t.Errorf("AdjustForContrast(#ff0000, #000000, 30) = %q, want %q", got, "#ffffff")
	}
}

func TestAdjustForContrast_Invalid(t *testing.T) {
	if _, err := AdjustForContrast("bogus", "#ffffff", 4.5); !errors.Is(err, ErrInvalidHex) {
		t.Errorf("invalid adjustable: error = %v, want ErrInvalidHex", err)
	}
	if _, err := AdjustForContrast("#ffffff", "bogus", 4.5); !errors.Is(err, ErrInvalidHex) {
		t.Errorf("invalid fixed: error = %v, want ErrInvalidHex", err)
	}
}

func TestAdjustForContrast_LogsSearchSteps(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	if _, err := AdjustForContrast("#888888", "#ffffff", 4.5); err != nil {
		t.Fatalf("AdjustForContrast error = %v", err)
	}
	if !strings.Contains(buf.String(), "contrast search step") {
		t.Errorf("expected debug output from contrast search, got: %s", buf.String())
	}
}
