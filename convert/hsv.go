package convert

import "math"

// RGBToHSV converts integer RGB channels to HSV. Each output component is
// rounded to places decimal places; negative places selects DefaultPlaces.
func RGBToHSV(c RGB, places int) (HSV, error) {
	if err := c.Validate(); err != nil {
		return HSV{}, err
	}
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	// Pure black has max of zero; saturation is defined as 0 there.
	var h, s float64
	if max != 0 {
		s = delta / max
	}
	if delta != 0 {
		h = hueDegrees(r, g, b, max, delta)
	}

	return HSV{
		H: roundTo(h, places),
		S: roundTo(s*100, places),
		V: roundTo(max*100, places),
	}, nil
}

// HexToHSV converts a hex color code to HSV.
func HexToHSV(h Hex, places int) (HSV, error) {
	rgb, err := HexToRGB(h)
	if err != nil {
		return HSV{}, err
	}
	return RGBToHSV(rgb, places)
}

// HSLToHSV converts an HSL color to HSV through RGB.
func HSLToHSV(c HSL, places int) (HSV, error) {
	rgb, err := HSLToRGB(c)
	if err != nil {
		return HSV{}, err
	}
	return RGBToHSV(rgb, places)
}

// CMYKToHSV converts a CMYK color to HSV through RGB.
func CMYKToHSV(c CMYK, places int) (HSV, error) {
	rgb, err := CMYKToRGB(c)
	if err != nil {
		return HSV{}, err
	}
	return RGBToHSV(rgb, places)
}
