// Package ansi builds and parses ANSI SGR escape sequences for 24-bit
// terminal color and text styling.
//
// The only color format emitted is the truecolor form ESC[38;2;R;G;Bm
// (foreground) and ESC[48;2;R;G;Bm (background); no 16- or 256-color
// palette codes are ever produced. Scan and Strip accept arbitrary input
// and treat anything that does not match the escape pattern as plain text.
package ansi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/prismkit/prism/convert"
)

// Error construction shares the convert kinds so callers can branch on
// IsRangeError and IsTypeError across the whole toolkit.
var (
	rangeErrorf = convert.RangeErrorf
	typeErrorf  = convert.TypeErrorf
)

// Reset ends all active formatting. Every composed string is terminated
// with exactly one of these; without it the formatting carries over to
// whatever the terminal prints next.
const Reset Code = "\x1b[0m"

// Code is a single ANSI SGR escape sequence, either a 24-bit color code
// or a style code.
type Code string

var (
	// One 24-bit color sequence, anchored. Channels are restricted to
	// 0-255 so that out-of-range digit runs stay plain text.
	colorCodeRE = regexp.MustCompile(
		`^\x1b\[(38|48);2;(25[0-5]|2[0-4][0-9]|1?[0-9]?[0-9]);(25[0-5]|2[0-4][0-9]|1?[0-9]?[0-9]);(25[0-5]|2[0-4][0-9]|1?[0-9]?[0-9])m$`)

	// One or more SGR sequences of any kind, anchored. This is what
	// "recognized formatting value" means throughout the package;
	// concatenated prefixes built from multiple codes still match.
	sgrRE = regexp.MustCompile(`^(\x1b\[[0-9;]+m)+$`)
)

// Layer selects whether a color applies to text or its background.
type Layer int

const (
	Foreground Layer = iota
	Background
)

// String makes Layer satisfy the fmt.Stringer interface.
func (l Layer) String() string {
	switch l {
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	default:
		return "unknown"
	}
}

// Validate returns a range error for values outside the enum.
func (l Layer) Validate() error {
	if l != Foreground && l != Background {
		return rangeErrorf("layer %d is not foreground or background", int(l))
	}
	return nil
}

// ParseLayer converts a string to a Layer. Any string starting with 'f'
// or 'b' (case-insensitive) is accepted; anything else is a range error.
func ParseLayer(s string) (Layer, error) {
	switch {
	case strings.HasPrefix(strings.ToLower(s), "f"):
		return Foreground, nil
	case strings.HasPrefix(strings.ToLower(s), "b"):
		return Background, nil
	default:
		return Foreground, rangeErrorf("layer %q must start with 'f' or 'b'", s)
	}
}

// param returns the SGR parameter selecting the layer.
func (l Layer) param() string {
	if l == Background {
		return "48"
	}
	return "38"
}

// Encode builds the 24-bit color escape sequence for rgb on the given
// layer. This is the only place color codes are constructed.
func Encode(rgb convert.RGB, layer Layer) (Code, error) {
	if err := layer.Validate(); err != nil {
		return "", err
	}
	if err := rgb.Validate(); err != nil {
		return "", err
	}
	return Code(fmt.Sprintf("\x1b[%s;2;%d;%d;%dm", layer.param(), rgb.R, rgb.G, rgb.B)), nil
}

// EncodeHex encodes a hex color for the given layer.
func EncodeHex(h convert.Hex, layer Layer) (Code, error) {
	rgb, err := convert.HexToRGB(h)
	if err != nil {
		return "", err
	}
	return Encode(rgb, layer)
}

// EncodeHSL encodes an HSL color for the given layer.
func EncodeHSL(c convert.HSL, layer Layer) (Code, error) {
	rgb, err := convert.HSLToRGB(c)
	if err != nil {
		return "", err
	}
	return Encode(rgb, layer)
}

// EncodeHSV encodes an HSV color for the given layer.
func EncodeHSV(c convert.HSV, layer Layer) (Code, error) {
	rgb, err := convert.HSVToRGB(c)
	if err != nil {
		return "", err
	}
	return Encode(rgb, layer)
}

// EncodeCMYK encodes a CMYK color for the given layer.
func EncodeCMYK(c convert.CMYK, layer Layer) (Code, error) {
	rgb, err := convert.CMYKToRGB(c)
	if err != nil {
		return "", err
	}
	return Encode(rgb, layer)
}

// RGB extracts the channels from a 24-bit color code. Style codes and
// composite prefixes are a type error: they carry no single color.
func (c Code) RGB() (convert.RGB, error) {
	m := colorCodeRE.FindStringSubmatch(string(c))
	if m == nil {
		return convert.RGB{}, typeErrorf("%q is not a 24-bit color code", string(c))
	}
	r, _ := strconv.Atoi(m[2])
	g, _ := strconv.Atoi(m[3])
	b, _ := strconv.Atoi(m[4])
	return convert.RGB{R: r, G: g, B: b}, nil
}

// Hex extracts the color as canonical hex.
func (c Code) Hex() (convert.Hex, error) {
	rgb, err := c.RGB()
	if err != nil {
		return "", err
	}
	return convert.RGBToHex(rgb)
}

// Layer reports which layer a 24-bit color code targets. The second
// return is false for style codes and composite prefixes.
func (c Code) Layer() (Layer, bool) {
	m := colorCodeRE.FindStringSubmatch(string(c))
	if m == nil {
		return Foreground, false
	}
	if m[1] == "48" {
		return Background, true
	}
	return Foreground, true
}

// Valid reports whether the code is one or more well-formed SGR sequences.
func (c Code) Valid() bool {
	return sgrRE.MatchString(string(c))
}
