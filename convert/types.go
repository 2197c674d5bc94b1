// Package convert provides pure conversions between the RGB, hex, HSL,
// HSV, and CMYK color spaces.
//
// All conversion functions validate their input before doing any math and
// never clamp or wrap an out-of-range value. The two failure classes are
// distinguishable through IsRangeError and IsTypeError.
package convert

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPlaces is the decimal-places rounding applied to HSL, HSV, and
// CMYK output components when the caller passes a negative places value.
const DefaultPlaces = 2

// RGB is a color with integer channels in [0, 255].
type RGB struct {
	R, G, B int
}

// Validate returns a range error if any channel is outside [0, 255].
func (c RGB) Validate() error {
	for _, v := range [3]int{c.R, c.G, c.B} {
		if v < 0 || v > 255 {
			return RangeErrorf("RGB channel %d outside 0-255", v)
		}
	}
	return nil
}

// RGB validates the color and returns it unchanged. It exists so RGB
// satisfies the anchor-color interfaces of dependent packages.
func (c RGB) RGB() (RGB, error) {
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}
	return c, nil
}

// RGBf is a color with float channels in [0.0, 1.0].
type RGBf struct {
	R, G, B float64
}

// Validate returns a range error if any channel is outside [0.0, 1.0].
func (c RGBf) Validate() error {
	for _, v := range [3]float64{c.R, c.G, c.B} {
		if v < 0 || v > 1 {
			return RangeErrorf("RGB float channel %g outside 0.0-1.0", v)
		}
	}
	return nil
}

// Normalize converts the float channels to their integer equivalents by
// rounding channel*255.
func (c RGBf) Normalize() (RGB, error) {
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}
	return RGB{
		R: int(math.Round(c.R * 255)),
		G: int(math.Round(c.G * 255)),
		B: int(math.Round(c.B * 255)),
	}, nil
}

// RGB is the anchor-color form of Normalize.
func (c RGBf) RGB() (RGB, error) {
	return c.Normalize()
}

// Hex is a 6-hexdigit color string, with or without a leading '#'.
// The canonical output form is lowercase without the prefix.
type Hex string

// Validate returns a range error unless the value is exactly six hex
// digits after stripping an optional leading '#'.
func (h Hex) Validate() error {
	s := strings.TrimPrefix(string(h), "#")
	if len(s) != 6 {
		return RangeErrorf("hex value %q must have exactly 6 digits", string(h))
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return RangeErrorf("hex value %q contains non-hex digits", string(h))
	}
	return nil
}

// Canonical returns the lowercase, unprefixed form.
func (h Hex) Canonical() Hex {
	return Hex(strings.ToLower(strings.TrimPrefix(string(h), "#")))
}

// WithHash returns the '#'-prefixed canonical form.
func (h Hex) WithHash() string {
	return "#" + string(h.Canonical())
}

// RGB parses the hex value into integer channels.
func (h Hex) RGB() (RGB, error) {
	return HexToRGB(h)
}

// HSL is a color with hue in degrees [0, 360] and saturation and
// lightness as percentages [0, 100].
type HSL struct {
	H, S, L float64
}

// Validate returns a range error if any component is outside its domain.
func (c HSL) Validate() error {
	if c.H < 0 || c.H > 360 {
		return RangeErrorf("hue %g outside 0.0-360.0", c.H)
	}
	if c.S < 0 || c.S > 100 {
		return RangeErrorf("saturation %g outside 0.0-100.0", c.S)
	}
	if c.L < 0 || c.L > 100 {
		return RangeErrorf("lightness %g outside 0.0-100.0", c.L)
	}
	return nil
}

// HSV is a color with hue in degrees [0, 360] and saturation and value
// as percentages [0, 100].
type HSV struct {
	H, S, V float64
}

// Validate returns a range error if any component is outside its domain.
func (c HSV) Validate() error {
	if c.H < 0 || c.H > 360 {
		return RangeErrorf("hue %g outside 0.0-360.0", c.H)
	}
	if c.S < 0 || c.S > 100 {
		return RangeErrorf("saturation %g outside 0.0-100.0", c.S)
	}
	if c.V < 0 || c.V > 100 {
		return RangeErrorf("value %g outside 0.0-100.0", c.V)
	}
	return nil
}

// CMYK is a color with four channels, each a percentage [0, 100].
type CMYK struct {
	C, M, Y, K float64
}

// Validate returns a range error if any channel is outside [0, 100].
func (c CMYK) Validate() error {
	for _, ch := range [4]struct {
		name string
		v    float64
	}{
		{"cyan", c.C}, {"magenta", c.M}, {"yellow", c.Y}, {"black", c.K},
	} {
		if ch.v < 0 || ch.v > 100 {
			return RangeErrorf("%s %g outside 0.0-100.0", ch.name, ch.v)
		}
	}
	return nil
}

// roundTo rounds v to the given number of decimal places. Negative places
// selects DefaultPlaces. Rounding is applied to output components only,
// never to intermediate math.
func roundTo(v float64, places int) float64 {
	if places < 0 {
		places = DefaultPlaces
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
