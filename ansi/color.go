package ansi

import (
	"strings"

	"github.com/prismkit/prism/convert"
)

// Color wraps an SGR code with a revert history of depth one: the current
// value, the value before the last change, and the value at construction.
// It is the mutable counterpart of Code; everything else in the package
// is a value type.
//
// A Color instance is not safe for concurrent mutation; give each
// goroutine its own or add external locking.
type Color struct {
	value    Code
	prev     Code
	original Code
}

// NewColor wraps a formatting code. Anything that is not one or more
// well-formed SGR sequences is a type error.
func NewColor(code Code) (*Color, error) {
	if !code.Valid() {
		return nil, typeErrorf("%q is not a recognized formatting value", string(code))
	}
	return &Color{value: code, prev: code, original: code}, nil
}

// MustColor is NewColor for literals; it panics on a malformed code and
// exists to build the predefined tables.
func MustColor(code Code) *Color {
	c, err := NewColor(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Value returns the current code.
func (c *Color) Value() Code { return c.value }

// Previous returns the value before the most recent change.
func (c *Color) Previous() Code { return c.prev }

// Original returns the value captured at construction.
func (c *Color) Original() Code { return c.original }

// String makes Color satisfy the fmt.Stringer interface so instances can
// be concatenated straight into formatted output.
func (c *Color) String() string { return string(c.value) }

// RGB extracts the current value's channels. Style-only wrappers are a
// type error.
func (c *Color) RGB() (convert.RGB, error) { return c.value.RGB() }

// Hex extracts the current value's color as canonical hex.
func (c *Color) Hex() (convert.Hex, error) { return c.value.Hex() }

// Revert swaps the current value with the previous one, undoing (or
// redoing) the last change.
func (c *Color) Revert() {
	c.value, c.prev = c.prev, c.value
}

// Restore resets the value to the one captured at construction. The
// replaced value stays reachable through Previous.
func (c *Color) Restore() {
	c.prev = c.value
	c.value = c.original
}

// AdjustBrightness scales the channels by 1+percent/100, clamping each
// result to [0, 255]. This is the only operation in the toolkit that
// clamps instead of rejecting; the prior value is recorded for Revert.
func (c *Color) AdjustBrightness(percent float64) error {
	rgb, err := c.value.RGB()
	if err != nil {
		return err
	}
	layer, _ := c.value.Layer()

	factor := 1 + percent/100
	adjusted := convert.RGB{
		R: clampChannel(int(float64(rgb.R) * factor)),
		G: clampChannel(int(float64(rgb.G) * factor)),
		B: clampChannel(int(float64(rgb.B) * factor)),
	}

	code, err := Encode(adjusted, layer)
	if err != nil {
		return err
	}
	c.prev = c.value
	c.value = code
	return nil
}

// Concat returns a new wrapper whose code is this value followed by the
// others' values, for building composite formatting prefixes.
func (c *Color) Concat(others ...*Color) *Color {
	var b strings.Builder
	b.WriteString(string(c.value))
	for _, o := range others {
		b.WriteString(string(o.value))
	}
	code := Code(b.String())
	return &Color{value: code, prev: code, original: code}
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
