package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/prismkit/prism/ansi"
	"github.com/prismkit/prism/convert"
	"github.com/prismkit/prism/gradient"
	"github.com/prismkit/prism/internal/palette"
)

// activePalette returns the palette selected by the global flags for the
// given layer, or the built-in predefined colors when no flag is set.
func activePalette(layer ansi.Layer) (*ansi.Palette, error) {
	if flagPalette == "" && flagPaletteFile == "" {
		if layer == ansi.Background {
			return ansi.BGColors, nil
		}
		return ansi.FGColors, nil
	}

	set, err := palette.Load(flagPalette, flagPaletteFile)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded palette", "name", set.Name, "colors", len(set.Colors))
	if layer == ansi.Background {
		return set.Background()
	}
	return set.Foreground()
}

// resolveAnchor turns a command-line color argument into a gradient anchor.
// Accepted forms: a predefined color name, a hex string, or "r,g,b".
func resolveAnchor(arg string, pal *ansi.Palette) (gradient.Anchor, error) {
	if pal.Has(arg) {
		return pal.Get(arg)
	}
	if strings.Contains(arg, ",") {
		rgb, err := parseChannels(arg)
		if err != nil {
			return nil, err
		}
		return rgb, nil
	}
	hex := convert.Hex(arg)
	if err := hex.Validate(); err != nil {
		return nil, fmt.Errorf("cannot read %q as a color name, hex value or r,g,b triple", arg)
	}
	return hex, nil
}

// parseChannels parses "r,g,b" into an RGB triple.
func parseChannels(arg string) (convert.RGB, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 3 {
		return convert.RGB{}, fmt.Errorf("want r,g,b, got %q", arg)
	}
	var channels [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return convert.RGB{}, fmt.Errorf("channel %q is not an integer", p)
		}
		channels[i] = v
	}
	rgb := convert.RGB{R: channels[0], G: channels[1], B: channels[2]}
	if err := rgb.Validate(); err != nil {
		return convert.RGB{}, err
	}
	return rgb, nil
}

// parseFloats parses n comma-separated floats, for HSL/HSV/CMYK arguments.
func parseFloats(arg string, n int) ([]float64, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a number", p)
		}
		out[i] = v
	}
	return out, nil
}
