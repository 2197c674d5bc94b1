// Package gradient renders text with a per-character color ramp between
// two or more anchor colors.
package gradient

import (
	"strings"

	"github.com/prismkit/prism/ansi"
	"github.com/prismkit/prism/convert"
)

// Anchor is any value that can resolve itself to an RGB triple. convert.RGB,
// convert.RGBf, convert.Hex, ansi.Code and *ansi.Color all qualify.
type Anchor interface {
	RGB() (convert.RGB, error)
}

// Render colors text character by character, walking from the first anchor
// to the last across the given layer. Text must be at least two characters
// long and at least two anchors are required. The result carries a single
// trailing reset.
func Render(text string, layer ansi.Layer, anchors ...Anchor) (string, error) {
	if err := layer.Validate(); err != nil {
		return "", err
	}
	runes := []rune(text)
	if len(runes) < 2 {
		return "", convert.RangeErrorf("text must be at least 2 characters, got %d", len(runes))
	}
	if len(anchors) < 2 {
		return "", convert.RangeErrorf("need at least 2 anchor colors, got %d", len(anchors))
	}
	stops := make([]convert.RGB, len(anchors))
	for i, a := range anchors {
		rgb, err := a.RGB()
		if err != nil {
			return "", err
		}
		stops[i] = rgb
	}

	var b strings.Builder
	if len(stops) == 2 {
		// Step over n-1 intervals and pin the last character to the right
		// anchor so float truncation cannot shave it off.
		if err := renderSpan(&b, runes[:len(runes)-1], layer, stops[0], stops[1], float64(len(runes)-1), len(runes)-1); err != nil {
			return "", err
		}
		code, err := ansi.Encode(stops[1], layer)
		if err != nil {
			return "", err
		}
		b.WriteString(string(code))
		b.WriteRune(runes[len(runes)-1])
	} else {
		// Each pair of adjacent anchors covers an equal span of the text.
		// The span length truncates, so up to len(stops)-2 trailing
		// characters fall outside every span and stay unformatted.
		span := float64(len(runes)) / float64(len(stops)-1)
		width := int(span)
		for i := 0; i < len(stops)-1; i++ {
			seg := runes[i*width : i*width+width]
			if err := renderSpan(&b, seg, layer, stops[i], stops[i+1], span, width); err != nil {
				return "", err
			}
		}
		b.WriteString(string(runes[(len(stops)-1)*width:]))
	}
	b.WriteString(string(ansi.Reset))
	return b.String(), nil
}

// renderSpan writes count characters, stepping each channel by
// (to-from)/div per character. Intermediate values truncate.
func renderSpan(b *strings.Builder, runes []rune, layer ansi.Layer, from, to convert.RGB, div float64, count int) error {
	stepR := float64(to.R-from.R) / div
	stepG := float64(to.G-from.G) / div
	stepB := float64(to.B-from.B) / div
	for i := 0; i < count; i++ {
		rgb := convert.RGB{
			R: clamp(from.R + int(stepR*float64(i))),
			G: clamp(from.G + int(stepG*float64(i))),
			B: clamp(from.B + int(stepB*float64(i))),
		}
		code, err := ansi.Encode(rgb, layer)
		if err != nil {
			return err
		}
		b.WriteString(string(code))
		b.WriteRune(runes[i])
	}
	return nil
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Foreground renders a foreground gradient over text.
func Foreground(text string, anchors ...Anchor) (string, error) {
	return Render(text, ansi.Foreground, anchors...)
}

// Background renders a background gradient over text.
func Background(text string, anchors ...Anchor) (string, error) {
	return Render(text, ansi.Background, anchors...)
}
