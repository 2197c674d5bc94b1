// Package palette loads user-defined color palettes from YAML files and
// turns them into ansi palettes.
package palette

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/prismkit/prism/ansi"
	"github.com/prismkit/prism/convert"
)

// ColorValue is one color entry in a palette file. It accepts either a hex
// string ("#ff8000" or "ff8000") or an [r, g, b] sequence.
type ColorValue struct {
	RGB convert.RGB
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var hex convert.Hex
		if err := node.Decode((*string)(&hex)); err != nil {
			return err
		}
		rgb, err := hex.RGB()
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		c.RGB = rgb
		return nil
	case yaml.SequenceNode:
		var channels []int
		if err := node.Decode(&channels); err != nil {
			return err
		}
		if len(channels) != 3 {
			return fmt.Errorf("line %d: want 3 channels, got %d", node.Line, len(channels))
		}
		rgb := convert.RGB{R: channels[0], G: channels[1], B: channels[2]}
		if err := rgb.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		c.RGB = rgb
		return nil
	default:
		return fmt.Errorf("line %d: color must be a hex string or [r, g, b]", node.Line)
	}
}

// Set is a named collection of colors parsed from a palette file.
type Set struct {
	Name   string                `yaml:"name"`
	Colors map[string]ColorValue `yaml:"colors"`
}

// Foreground builds a foreground ansi palette from the set.
func (s Set) Foreground() (*ansi.Palette, error) {
	return s.build(ansi.Foreground)
}

// Background builds a background ansi palette from the set.
func (s Set) Background() (*ansi.Palette, error) {
	return s.build(ansi.Background)
}

func (s Set) build(layer ansi.Layer) (*ansi.Palette, error) {
	p, err := ansi.NewPalette(layer)
	if err != nil {
		return nil, err
	}
	for name, cv := range s.Colors {
		code, err := ansi.Encode(cv.RGB, layer)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		if err := p.Add(name, code); err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
	}
	return p, nil
}

// Parse decodes a palette file's contents.
func Parse(data []byte) (Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse palette: %w", err)
	}
	if len(s.Colors) == 0 {
		return s, fmt.Errorf("palette %q defines no colors", s.Name)
	}
	return s, nil
}
