package convert

import "math"

// RGBToCMYK converts integer RGB channels to CMYK percentages. Each output
// component is rounded to places decimal places; negative places selects
// DefaultPlaces.
func RGBToCMYK(c RGB, places int) (CMYK, error) {
	if err := c.Validate(); err != nil {
		return CMYK{}, err
	}
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	k := 1 - math.Max(r, math.Max(g, b))

	// Pure black leaves C, M, and Y undefined; they are defined as 0
	// here rather than dividing by zero.
	var cy, m, y float64
	if k != 1 {
		cy = (1 - r - k) / (1 - k)
		m = (1 - g - k) / (1 - k)
		y = (1 - b - k) / (1 - k)
	}

	return CMYK{
		C: roundTo(cy*100, places),
		M: roundTo(m*100, places),
		Y: roundTo(y*100, places),
		K: roundTo(k*100, places),
	}, nil
}

// HexToCMYK converts a hex color code to CMYK.
func HexToCMYK(h Hex, places int) (CMYK, error) {
	rgb, err := HexToRGB(h)
	if err != nil {
		return CMYK{}, err
	}
	return RGBToCMYK(rgb, places)
}

// HSLToCMYK converts an HSL color to CMYK through RGB.
func HSLToCMYK(c HSL, places int) (CMYK, error) {
	rgb, err := HSLToRGB(c)
	if err != nil {
		return CMYK{}, err
	}
	return RGBToCMYK(rgb, places)
}

// HSVToCMYK converts an HSV color to CMYK through RGB.
func HSVToCMYK(c HSV, places int) (CMYK, error) {
	rgb, err := HSVToRGB(c)
	if err != nil {
		return CMYK{}, err
	}
	return RGBToCMYK(rgb, places)
}
