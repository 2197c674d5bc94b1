package convert

import "math"

// RGBToHSL converts integer RGB channels to HSL. Each output component is
// rounded to places decimal places; negative places selects DefaultPlaces.
func RGBToHSL(c RGB, places int) (HSL, error) {
	if err := c.Validate(); err != nil {
		return HSL{}, err
	}
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min
	l := (max + min) / 2

	// Delta of zero means a pure gray; saturation is defined as 0 there
	// to avoid dividing by zero when lightness sits at either extreme.
	var h, s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
		h = hueDegrees(r, g, b, max, delta)
	}

	return HSL{
		H: roundTo(h, places),
		S: roundTo(s*100, places),
		L: roundTo(l*100, places),
	}, nil
}

// HexToHSL converts a hex color code to HSL.
func HexToHSL(h Hex, places int) (HSL, error) {
	rgb, err := HexToRGB(h)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb, places)
}

// HSVToHSL converts an HSV color to HSL through RGB.
func HSVToHSL(c HSV, places int) (HSL, error) {
	rgb, err := HSVToRGB(c)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb, places)
}

// CMYKToHSL converts a CMYK color to HSL through RGB.
func CMYKToHSL(c CMYK, places int) (HSL, error) {
	rgb, err := CMYKToRGB(c)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb, places)
}
