package convert

import "fmt"

// RGBToHex converts integer RGB channels to the canonical hex form:
// lowercase, six digits, no '#' prefix. Use Hex.WithHash for the
// prefixed form.
func RGBToHex(c RGB) (Hex, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	return Hex(fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)), nil
}

// RGBfToHex converts float RGB channels to hex after normalization.
func RGBfToHex(c RGBf) (Hex, error) {
	rgb, err := c.Normalize()
	if err != nil {
		return "", err
	}
	return RGBToHex(rgb)
}

// HSLToHex converts an HSL color to hex through RGB.
func HSLToHex(c HSL) (Hex, error) {
	rgb, err := HSLToRGB(c)
	if err != nil {
		return "", err
	}
	return RGBToHex(rgb)
}

// HSVToHex converts an HSV color to hex through RGB.
func HSVToHex(c HSV) (Hex, error) {
	rgb, err := HSVToRGB(c)
	if err != nil {
		return "", err
	}
	return RGBToHex(rgb)
}

// CMYKToHex converts a CMYK color to hex through RGB.
func CMYKToHex(c CMYK) (Hex, error) {
	rgb, err := CMYKToRGB(c)
	if err != nil {
		return "", err
	}
	return RGBToHex(rgb)
}
