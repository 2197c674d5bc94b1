package ansi

import (
	"testing"

	"github.com/prismkit/prism/convert"
)

func TestFormat(t *testing.T) {
	fg, err := Encode(convert.RGB{R: 255, G: 0, B: 0}, Foreground)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	tests := []struct {
		name     string
		text     string
		formats  []Code
		expected string
	}{
		{
			name:     "single style",
			text:     "hi",
			formats:  []Code{Bold},
			expected: "\x1b[1mhi\x1b[0m",
		},
		{
			name:     "style then color",
			text:     "hi",
			formats:  []Code{Bold, fg},
			expected: "\x1b[1m\x1b[38;2;255;0;0mhi\x1b[0m",
		},
		{
			name:     "no formats still resets",
			text:     "hi",
			formats:  nil,
			expected: "hi\x1b[0m",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Format(tc.text, tc.formats...)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if result != tc.expected {
				t.Errorf("Format() = %q, expected %q", result, tc.expected)
			}
		})
	}
}

func TestFormatRejectsBadCode(t *testing.T) {
	result, err := Format("hi", Bold, Code("red"))
	if !convert.IsTypeError(err) {
		t.Errorf("Format() error = %v, expected a type error", err)
	}
	if result != "" {
		t.Errorf("Format() = %q, expected no partial output", result)
	}
}

func TestColorize(t *testing.T) {
	fg := convert.RGB{R: 255, G: 128, B: 0}
	bg := convert.RGB{R: 0, G: 0, B: 128}

	tests := []struct {
		name     string
		fg, bg   *convert.RGB
		expected string
	}{
		{
			name:     "foreground only",
			fg:       &fg,
			expected: "\x1b[38;2;255;128;0mhi\x1b[0m",
		},
		{
			name:     "background only",
			bg:       &bg,
			expected: "\x1b[48;2;0;0;128mhi\x1b[0m",
		},
		{
			name:     "both layers",
			fg:       &fg,
			bg:       &bg,
			expected: "\x1b[38;2;255;128;0m\x1b[48;2;0;0;128mhi\x1b[0m",
		},
		{
			name:     "neither layer still resets",
			expected: "hi\x1b[0m",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Colorize("hi", tc.fg, tc.bg)
			if err != nil {
				t.Fatalf("Colorize() error = %v", err)
			}
			if result != tc.expected {
				t.Errorf("Colorize() = %q, expected %q", result, tc.expected)
			}
		})
	}
}

func TestColorizeHex(t *testing.T) {
	fg := convert.Hex("#ff8000")
	result, err := ColorizeHex("hi", &fg, nil)
	if err != nil {
		t.Fatalf("ColorizeHex() error = %v", err)
	}
	if result != "\x1b[38;2;255;128;0mhi\x1b[0m" {
		t.Errorf("ColorizeHex() = %q", result)
	}
}

func TestColorizeRejectsOutOfRange(t *testing.T) {
	bad := convert.RGB{R: -1}
	result, err := Colorize("hi", &bad, nil)
	if !convert.IsRangeError(err) {
		t.Errorf("Colorize() error = %v, expected a range error", err)
	}
	if result != "" {
		t.Errorf("Colorize() = %q, expected no partial output", result)
	}
}

func TestFormatColors(t *testing.T) {
	c := MustColor(Bold).Concat(MustColor("\x1b[38;2;10;20;30m"))
	result, err := FormatColors("hi", c)
	if err != nil {
		t.Fatalf("FormatColors() error = %v", err)
	}
	if result != "\x1b[1m\x1b[38;2;10;20;30mhi\x1b[0m" {
		t.Errorf("FormatColors() = %q", result)
	}
}
