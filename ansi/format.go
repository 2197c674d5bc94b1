package ansi

import (
	"strings"

	"github.com/prismkit/prism/convert"
)

// Format prefixes text with the given formatting codes in order and
// appends one Reset. Every code is validated before any output is built;
// a code that is not a recognized formatting value is a type error and
// no partial string is ever returned.
func Format(text string, formats ...Code) (string, error) {
	for _, f := range formats {
		if !f.Valid() {
			return "", typeErrorf("%q is not a recognized formatting value", string(f))
		}
	}
	var b strings.Builder
	for _, f := range formats {
		b.WriteString(string(f))
	}
	b.WriteString(text)
	b.WriteString(string(Reset))
	return b.String(), nil
}

// FormatColors is Format for wrapped colors, applying each wrapper's
// current value.
func FormatColors(text string, formats ...*Color) (string, error) {
	codes := make([]Code, len(formats))
	for i, f := range formats {
		if f == nil {
			return "", typeErrorf("format %d is nil", i)
		}
		codes[i] = f.Value()
	}
	return Format(text, codes...)
}

// Colorize wraps text with up to one foreground and one background RGB
// color; a nil pointer leaves that layer unset. Validation happens before
// any output is built.
func Colorize(text string, fg, bg *convert.RGB) (string, error) {
	return colorize(text, fg, bg, func(c *convert.RGB, l Layer) (Code, error) {
		return Encode(*c, l)
	})
}

// ColorizeHex is Colorize for hex color values.
func ColorizeHex(text string, fg, bg *convert.Hex) (string, error) {
	return colorize(text, fg, bg, func(c *convert.Hex, l Layer) (Code, error) {
		return EncodeHex(*c, l)
	})
}

// ColorizeHSL is Colorize for HSL color values.
func ColorizeHSL(text string, fg, bg *convert.HSL) (string, error) {
	return colorize(text, fg, bg, func(c *convert.HSL, l Layer) (Code, error) {
		return EncodeHSL(*c, l)
	})
}

// ColorizeHSV is Colorize for HSV color values.
func ColorizeHSV(text string, fg, bg *convert.HSV) (string, error) {
	return colorize(text, fg, bg, func(c *convert.HSV, l Layer) (Code, error) {
		return EncodeHSV(*c, l)
	})
}

// ColorizeCMYK is Colorize for CMYK color values.
func ColorizeCMYK(text string, fg, bg *convert.CMYK) (string, error) {
	return colorize(text, fg, bg, func(c *convert.CMYK, l Layer) (Code, error) {
		return EncodeCMYK(*c, l)
	})
}

func colorize[T any](text string, fg, bg *T, encode func(*T, Layer) (Code, error)) (string, error) {
	var codes []Code
	if fg != nil {
		code, err := encode(fg, Foreground)
		if err != nil {
			return "", err
		}
		codes = append(codes, code)
	}
	if bg != nil {
		code, err := encode(bg, Background)
		if err != nil {
			return "", err
		}
		codes = append(codes, code)
	}
	return Format(text, codes...)
}
