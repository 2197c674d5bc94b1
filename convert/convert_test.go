package convert

import (
	"math"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name     string
		hex      Hex
		expected RGB
	}{
		{
			name:     "orange with hash",
			hex:      "#ff8000",
			expected: RGB{R: 255, G: 128, B: 0},
		},
		{
			name:     "orange without hash",
			hex:      "ff8000",
			expected: RGB{R: 255, G: 128, B: 0},
		},
		{
			name:     "uppercase digits",
			hex:      "FF8000",
			expected: RGB{R: 255, G: 128, B: 0},
		},
		{
			name:     "black",
			hex:      "000000",
			expected: RGB{R: 0, G: 0, B: 0},
		},
		{
			name:     "white",
			hex:      "ffffff",
			expected: RGB{R: 255, G: 255, B: 255},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := HexToRGB(tc.hex)
			if err != nil {
				t.Fatalf("HexToRGB() error = %v", err)
			}
			if result != tc.expected {
				t.Errorf("HexToRGB() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		name     string
		rgb      RGB
		expected Hex
	}{
		{name: "orange", rgb: RGB{255, 128, 0}, expected: "ff8000"},
		{name: "black", rgb: RGB{0, 0, 0}, expected: "000000"},
		{name: "white", rgb: RGB{255, 255, 255}, expected: "ffffff"},
		{name: "single digit channels", rgb: RGB{1, 2, 3}, expected: "010203"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := RGBToHex(tc.rgb)
			if err != nil {
				t.Fatalf("RGBToHex() error = %v", err)
			}
			if result != tc.expected {
				t.Errorf("RGBToHex() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name     string
		rgb      RGB
		expected HSV
	}{
		{name: "orange", rgb: RGB{255, 128, 0}, expected: HSV{H: 30.12, S: 100, V: 100}},
		{name: "black", rgb: RGB{0, 0, 0}, expected: HSV{H: 0, S: 0, V: 0}},
		{name: "white", rgb: RGB{255, 255, 255}, expected: HSV{H: 0, S: 0, V: 100}},
		{name: "pure red", rgb: RGB{255, 0, 0}, expected: HSV{H: 0, S: 100, V: 100}},
		{name: "pure green", rgb: RGB{0, 255, 0}, expected: HSV{H: 120, S: 100, V: 100}},
		{name: "pure blue", rgb: RGB{0, 0, 255}, expected: HSV{H: 240, S: 100, V: 100}},
		{name: "gray has zero saturation", rgb: RGB{128, 128, 128}, expected: HSV{H: 0, S: 0, V: 50.2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := RGBToHSV(tc.rgb, DefaultPlaces)
			if err != nil {
				t.Fatalf("RGBToHSV() error = %v", err)
			}
			if result != tc.expected {
				t.Errorf("RGBToHSV() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name     string
		rgb      RGB
		expected HSL
	}{
		{name: "orange", rgb: RGB{255, 128, 0}, expected: HSL{H: 30.12, S: 100, L: 50}},
		{name: "black", rgb: RGB{0, 0, 0}, expected: HSL{H: 0, S: 0, L: 0}},
		{name: "white", rgb: RGB{255, 255, 255}, expected: HSL{H: 0, S: 0, L: 100}},
		{name: "pure blue", rgb: RGB{0, 0, 255}, expected: HSL{H: 240, S: 100, L: 50}},
		{name: "gray has zero saturation", rgb: RGB{128, 128, 128}, expected: HSL{H: 0, S: 0, L: 50.2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := RGBToHSL(tc.rgb, DefaultPlaces)
			if err != nil {
				t.Fatalf("RGBToHSL() error = %v", err)
			}
			if result != tc.expected {
				t.Errorf("RGBToHSL() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRGBToCMYK(t *testing.T) {
	tests := []struct {
		name     string
		rgb      RGB
		expected CMYK
	}{
		{name: "orange", rgb: RGB{255, 128, 0}, expected: CMYK{C: 0, M: 49.8, Y: 100, K: 0}},
		{name: "black is pure key", rgb: RGB{0, 0, 0}, expected: CMYK{C: 0, M: 0, Y: 0, K: 100}},
		{name: "white", rgb: RGB{255, 255, 255}, expected: CMYK{C: 0, M: 0, Y: 0, K: 0}},
		{name: "pure cyan", rgb: RGB{0, 255, 255}, expected: CMYK{C: 100, M: 0, Y: 0, K: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := RGBToCMYK(tc.rgb, DefaultPlaces)
			if err != nil {
				t.Fatalf("RGBToCMYK() error = %v", err)
			}
			if result != tc.expected {
				t.Errorf("RGBToCMYK() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestCMYKToRGB(t *testing.T) {
	tests := []struct {
		name     string
		cmyk     CMYK
		expected RGB
	}{
		{name: "orange", cmyk: CMYK{C: 0, M: 50, Y: 100, K: 0}, expected: RGB{255, 128, 0}},
		{name: "pure key", cmyk: CMYK{C: 0, M: 0, Y: 0, K: 100}, expected: RGB{0, 0, 0}},
		{name: "no ink", cmyk: CMYK{}, expected: RGB{255, 255, 255}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := CMYKToRGB(tc.cmyk)
			if err != nil {
				t.Fatalf("CMYKToRGB() error = %v", err)
			}
			if result != tc.expected {
				t.Errorf("CMYKToRGB() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name     string
		hsl      HSL
		expected RGB
	}{
		{name: "orange", hsl: HSL{H: 30.12, S: 100, L: 50}, expected: RGB{255, 128, 0}},
		{name: "black", hsl: HSL{H: 0, S: 0, L: 0}, expected: RGB{0, 0, 0}},
		{name: "white", hsl: HSL{H: 0, S: 0, L: 100}, expected: RGB{255, 255, 255}},
		{name: "hue wraps at 360", hsl: HSL{H: 360, S: 100, L: 50}, expected: RGB{255, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := HSLToRGB(tc.hsl)
			if err != nil {
				t.Fatalf("HSLToRGB() error = %v", err)
			}
			if result != tc.expected {
				t.Errorf("HSLToRGB() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name     string
		hsv      HSV
		expected RGB
	}{
		{name: "orange", hsv: HSV{H: 30.12, S: 100, V: 100}, expected: RGB{255, 128, 0}},
		{name: "black", hsv: HSV{H: 0, S: 0, V: 0}, expected: RGB{0, 0, 0}},
		{name: "white", hsv: HSV{H: 0, S: 0, V: 100}, expected: RGB{255, 255, 255}},
		{name: "pure green", hsv: HSV{H: 120, S: 100, V: 100}, expected: RGB{0, 255, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := HSVToRGB(tc.hsv)
			if err != nil {
				t.Fatalf("HSVToRGB() error = %v", err)
			}
			if result != tc.expected {
				t.Errorf("HSVToRGB() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

// Every channel round-trips through HSL, HSV, and CMYK to within one
// step per channel; the hex path is exact.
func TestRoundTrips(t *testing.T) {
	colors := []RGB{
		{255, 128, 0},
		{220, 20, 60},
		{0, 100, 0},
		{25, 25, 112},
		{128, 128, 128},
		{1, 254, 127},
	}

	within := func(a, b RGB) bool {
		diff := func(x, y int) int {
			if x > y {
				return x - y
			}
			return y - x
		}
		return diff(a.R, b.R) <= 1 && diff(a.G, b.G) <= 1 && diff(a.B, b.B) <= 1
	}

	for _, c := range colors {
		hex, err := RGBToHex(c)
		if err != nil {
			t.Fatalf("RGBToHex(%v) error = %v", c, err)
		}
		back, err := HexToRGB(hex)
		if err != nil {
			t.Fatalf("HexToRGB(%v) error = %v", hex, err)
		}
		if back != c {
			t.Errorf("hex round trip of %v = %v", c, back)
		}

		hsl, err := RGBToHSL(c, DefaultPlaces)
		if err != nil {
			t.Fatalf("RGBToHSL(%v) error = %v", c, err)
		}
		back, err = HSLToRGB(hsl)
		if err != nil {
			t.Fatalf("HSLToRGB(%v) error = %v", hsl, err)
		}
		if !within(back, c) {
			t.Errorf("HSL round trip of %v = %v", c, back)
		}

		hsv, err := RGBToHSV(c, DefaultPlaces)
		if err != nil {
			t.Fatalf("RGBToHSV(%v) error = %v", c, err)
		}
		back, err = HSVToRGB(hsv)
		if err != nil {
			t.Fatalf("HSVToRGB(%v) error = %v", hsv, err)
		}
		if !within(back, c) {
			t.Errorf("HSV round trip of %v = %v", c, back)
		}

		cmyk, err := RGBToCMYK(c, DefaultPlaces)
		if err != nil {
			t.Fatalf("RGBToCMYK(%v) error = %v", c, err)
		}
		back, err = CMYKToRGB(cmyk)
		if err != nil {
			t.Fatalf("CMYKToRGB(%v) error = %v", cmyk, err)
		}
		if !within(back, c) {
			t.Errorf("CMYK round trip of %v = %v", c, back)
		}
	}
}

func TestRGBfNormalize(t *testing.T) {
	tests := []struct {
		name     string
		rgbf     RGBf
		expected RGB
	}{
		{name: "full channels", rgbf: RGBf{1, 1, 1}, expected: RGB{255, 255, 255}},
		{name: "zero channels", rgbf: RGBf{}, expected: RGB{0, 0, 0}},
		{name: "half rounds up", rgbf: RGBf{0.5, 0.5, 0.5}, expected: RGB{128, 128, 128}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.rgbf.Normalize()
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if result != tc.expected {
				t.Errorf("Normalize() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestHexToRGBf(t *testing.T) {
	result, err := HexToRGBf("#ff8000")
	if err != nil {
		t.Fatalf("HexToRGBf() error = %v", err)
	}
	expected := RGBf{R: 1, G: 128.0 / 255, B: 0}
	if math.Abs(result.R-expected.R) > 1e-9 ||
		math.Abs(result.G-expected.G) > 1e-9 ||
		math.Abs(result.B-expected.B) > 1e-9 {
		t.Errorf("HexToRGBf() = %v, expected %v", result, expected)
	}
}

func TestDecimalPlaces(t *testing.T) {
	// H for {255, 128, 0} is 30.117647... before rounding.
	hsv, err := RGBToHSV(RGB{255, 128, 0}, 4)
	if err != nil {
		t.Fatalf("RGBToHSV() error = %v", err)
	}
	if hsv.H != 30.1176 {
		t.Errorf("H at 4 places = %v, expected 30.1176", hsv.H)
	}

	hsv, err = RGBToHSV(RGB{255, 128, 0}, 0)
	if err != nil {
		t.Fatalf("RGBToHSV() error = %v", err)
	}
	if hsv.H != 30 {
		t.Errorf("H at 0 places = %v, expected 30", hsv.H)
	}

	// Negative places falls back to the default of 2.
	hsv, err = RGBToHSV(RGB{255, 128, 0}, -1)
	if err != nil {
		t.Fatalf("RGBToHSV() error = %v", err)
	}
	if hsv.H != 30.12 {
		t.Errorf("H at default places = %v, expected 30.12", hsv.H)
	}
}
