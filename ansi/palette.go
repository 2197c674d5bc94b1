package ansi

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prismkit/prism/convert"
)

// DefaultSampleText is printed by Sample and Compare when no message is
// given. The {name} placeholder is replaced with the color's name.
const DefaultSampleText = "This text is {name}."

// Palette is a named collection of colors for one layer. The predefined
// palettes FGColors and BGColors are built from the shared preset table;
// additional palettes can be assembled with NewPalette and Add.
type Palette struct {
	layer  Layer
	colors map[string]*Color
}

// NewPalette returns an empty palette for the given layer.
func NewPalette(layer Layer) (*Palette, error) {
	if err := layer.Validate(); err != nil {
		return nil, err
	}
	return &Palette{layer: layer, colors: make(map[string]*Color)}, nil
}

func mustPalette(layer Layer, table map[string]convert.RGB) *Palette {
	p, err := NewPalette(layer)
	if err != nil {
		panic(err)
	}
	for name, rgb := range table {
		code, err := Encode(rgb, layer)
		if err != nil {
			panic(err)
		}
		p.colors[name] = MustColor(code)
	}
	return p
}

// NormalizeName maps user-facing spellings like "deep sky-blue" onto the
// canonical upper-snake-case keys of the preset table. Every name lookup
// in the package goes through it.
func NormalizeName(name string) string {
	name = strings.TrimSpace(strings.ToUpper(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return name
}

// Layer reports which layer this palette encodes for.
func (p *Palette) Layer() Layer { return p.layer }

// Has reports whether the palette contains the named color.
func (p *Palette) Has(name string) bool {
	_, ok := p.colors[NormalizeName(name)]
	return ok
}

// Get returns the named color. The lookup is case-insensitive and accepts
// spaces or hyphens in place of underscores.
func (p *Palette) Get(name string) (*Color, error) {
	c, ok := p.colors[NormalizeName(name)]
	if !ok {
		return nil, rangeErrorf("unknown color name %q", name)
	}
	return c, nil
}

// Add registers a color under the given name, replacing any existing entry.
// The code must target the palette's layer.
func (p *Palette) Add(name string, code Code) error {
	layer, ok := code.Layer()
	if !ok {
		return typeErrorf("code %q does not carry a color", string(code))
	}
	if layer != p.layer {
		return rangeErrorf("code targets %s, palette is %s", layer, p.layer)
	}
	c, err := NewColor(code)
	if err != nil {
		return err
	}
	p.colors[NormalizeName(name)] = c
	return nil
}

// Names returns the palette's color names in sorted order.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.colors))
	for name := range p.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int { return len(p.colors) }

// Sample writes one line showing the named color applied to msg. An empty
// msg falls back to DefaultSampleText; {name} in msg is replaced with the
// color's canonical name.
func (p *Palette) Sample(w io.Writer, name, msg string) error {
	c, err := p.Get(name)
	if err != nil {
		return err
	}
	if msg == "" {
		msg = DefaultSampleText
	}
	msg = strings.ReplaceAll(msg, "{name}", NormalizeName(name))
	_, err = fmt.Fprintf(w, "%s%s%s\n", c.Value(), msg, Reset)
	return err
}

// Compare writes a sample line per color so the shades can be eyeballed
// side by side. With no names it covers the whole palette in name order;
// otherwise only the named colors, in the order given.
func (p *Palette) Compare(w io.Writer, msg string, names ...string) error {
	if len(names) == 0 {
		names = p.Names()
	}
	for _, name := range names {
		if err := p.Sample(w, name, msg); err != nil {
			return err
		}
	}
	return nil
}
