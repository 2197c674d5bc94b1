package palette

import (
	_ "embed"

	"github.com/prismkit/prism/convert"
)

//go:embed defaults/default.yaml
var defaultPaletteYAML []byte

// DefaultSet returns the built-in palette used when no file can be loaded.
func DefaultSet() Set {
	return Set{
		Name: "default",
		Colors: map[string]ColorValue{
			"accent":  {RGB: convert.RGB{R: 255, G: 128, B: 0}},
			"ok":      {RGB: convert.RGB{R: 46, G: 139, B: 87}},
			"warning": {RGB: convert.RGB{R: 255, G: 204, B: 0}},
			"error":   {RGB: convert.RGB{R: 220, G: 20, B: 60}},
			"muted":   {RGB: convert.RGB{R: 105, G: 105, B: 105}},
		},
	}
}
