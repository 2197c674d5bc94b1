package convert

import (
	"math"
	"strconv"
	"strings"
)

// HexToRGB converts a hex color code to integer RGB channels.
func HexToRGB(h Hex) (RGB, error) {
	if err := h.Validate(); err != nil {
		return RGB{}, err
	}
	s := strings.TrimPrefix(string(h), "#")
	r, _ := strconv.ParseUint(s[0:2], 16, 8)
	g, _ := strconv.ParseUint(s[2:4], 16, 8)
	b, _ := strconv.ParseUint(s[4:6], 16, 8)
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

// HexToRGBf converts a hex color code to float RGB channels in [0, 1].
func HexToRGBf(h Hex) (RGBf, error) {
	c, err := HexToRGB(h)
	if err != nil {
		return RGBf{}, err
	}
	return RGBf{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}, nil
}

// HSLToRGB converts an HSL color to integer RGB channels using the
// standard chroma/sextant algorithm.
func HSLToRGB(c HSL) (RGB, error) {
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}
	h := c.H / 60
	s := c.S / 100
	l := c.L / 100

	chroma := s * (1 - math.Abs(2*l-1))
	middle := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	adjust := l - chroma/2

	r, g, b := sextant(h, chroma, middle)
	return RGB{
		R: int(math.Round((r + adjust) * 255)),
		G: int(math.Round((g + adjust) * 255)),
		B: int(math.Round((b + adjust) * 255)),
	}, nil
}

// HSVToRGB converts an HSV color to integer RGB channels.
func HSVToRGB(c HSV) (RGB, error) {
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}
	h := c.H / 60
	s := c.S / 100
	v := c.V / 100

	chroma := v * s
	middle := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	adjust := v - chroma

	r, g, b := sextant(h, chroma, middle)
	return RGB{
		R: int(math.Round((r + adjust) * 255)),
		G: int(math.Round((g + adjust) * 255)),
		B: int(math.Round((b + adjust) * 255)),
	}, nil
}

// CMYKToRGB converts a CMYK color to integer RGB channels.
func CMYKToRGB(c CMYK) (RGB, error) {
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}
	return RGB{
		R: int(math.Round(255 * (1 - c.C/100) * (1 - c.K/100))),
		G: int(math.Round(255 * (1 - c.M/100) * (1 - c.K/100))),
		B: int(math.Round(255 * (1 - c.Y/100) * (1 - c.K/100))),
	}, nil
}

// sextant arranges chroma and the middle component into RGB order based
// on which 60-degree sector the (already divided) hue falls in.
func sextant(h, chroma, middle float64) (r, g, b float64) {
	switch {
	case h < 1:
		return chroma, middle, 0
	case h < 2:
		return middle, chroma, 0
	case h < 3:
		return 0, chroma, middle
	case h < 4:
		return 0, middle, chroma
	case h < 5:
		return middle, 0, chroma
	default:
		return chroma, 0, middle
	}
}

// hueDegrees computes the hue in degrees from pre-divided channel values,
// wrapping negative results by +360. delta must be non-zero.
func hueDegrees(r, g, b, max, delta float64) float64 {
	var h float64
	switch max {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h
}
