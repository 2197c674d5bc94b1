package ansi

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/prismkit/prism/convert"
)

// Space is the closed set of representations a scanned color can be
// reported in.
type Space int

const (
	SpaceRGB Space = iota
	SpaceRGBf
	SpaceHex
	SpaceHSL
	SpaceHSV
	SpaceCMYK
)

// String makes Space satisfy the fmt.Stringer interface.
func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "rgb"
	case SpaceRGBf:
		return "rgbf"
	case SpaceHex:
		return "hex"
	case SpaceHSL:
		return "hsl"
	case SpaceHSV:
		return "hsv"
	case SpaceCMYK:
		return "cmyk"
	default:
		return "unknown"
	}
}

// Validate returns a range error for values outside the enum.
func (s Space) Validate() error {
	if s < SpaceRGB || s > SpaceCMYK {
		return rangeErrorf("%d is not a supported color space", int(s))
	}
	return nil
}

// ParseSpace converts a string to a Space. Unrecognized names are a
// range error.
func ParseSpace(s string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb":
		return SpaceRGB, nil
	case "rgbf", "rgb float":
		return SpaceRGBf, nil
	case "hex":
		return SpaceHex, nil
	case "hsl":
		return SpaceHSL, nil
	case "hsv":
		return SpaceHSV, nil
	case "cmyk":
		return SpaceCMYK, nil
	default:
		return SpaceRGB, rangeErrorf("%q is not a supported color space", s)
	}
}

// ScanOptions controls what Scan reports and in which representation.
type ScanOptions struct {
	// Space selects the representation of each found color.
	Space Space
	// Places is the decimal rounding for HSL, HSV, and CMYK output.
	// Zero is a valid setting that rounds every channel to a whole
	// number; a negative value selects convert.DefaultPlaces. The zero
	// value of ScanOptions therefore rounds to integers, not to the
	// default two places.
	Places int
	// IncludeReset reports reset sequences as sentinel tokens.
	IncludeReset bool
	// IncludeLayer tags each color with its foreground/background layer.
	IncludeLayer bool
}

// Token is one color or reset found by Scan. Exactly one color field is
// populated, matching the Space the token was scanned with; a token with
// Reset set carries no color at all.
type Token struct {
	Reset bool

	// Layer is only meaningful when HasLayer is set, which requires
	// ScanOptions.IncludeLayer.
	Layer    Layer
	HasLayer bool

	Space Space
	RGB   convert.RGB
	RGBf  convert.RGBf
	Hex   convert.Hex
	HSL   convert.HSL
	HSV   convert.HSV
	CMYK  convert.CMYK
}

var (
	// Unanchored forms of the 24-bit color pattern and the reset
	// pattern, for locating sequences inside arbitrary text.
	scanRE = regexp.MustCompile(
		`\x1b\[(38|48);2;(25[0-5]|2[0-4][0-9]|1?[0-9]?[0-9]);(25[0-5]|2[0-4][0-9]|1?[0-9]?[0-9]);(25[0-5]|2[0-4][0-9]|1?[0-9]?[0-9])m|\x1b\[0m`)

	// Any SGR sequence, for Strip. Cursor movement and other non-SGR
	// escapes are left alone.
	stripRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

// Scan extracts every 24-bit color escape from text in order of
// appearance, converting each to the requested space. Plain text and
// malformed escapes are skipped, never reported and never an error; the
// only failure mode is an invalid option value, rejected up front.
func Scan(text string, opts ScanOptions) ([]Token, error) {
	if err := opts.Space.Validate(); err != nil {
		return nil, err
	}

	var tokens []Token
	for _, m := range scanRE.FindAllStringSubmatch(text, -1) {
		if m[1] == "" {
			if opts.IncludeReset {
				tokens = append(tokens, Token{Reset: true})
			}
			continue
		}

		r, _ := strconv.Atoi(m[2])
		g, _ := strconv.Atoi(m[3])
		b, _ := strconv.Atoi(m[4])

		tok, err := newToken(convert.RGB{R: r, G: g, B: b}, opts)
		if err != nil {
			return nil, err
		}
		if opts.IncludeLayer {
			tok.HasLayer = true
			if m[1] == "48" {
				tok.Layer = Background
			} else {
				tok.Layer = Foreground
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// newToken converts a scanned RGB value into the requested space. The
// channels come from the anchored pattern and are always in range, so
// conversion errors here are impossible in practice but still surfaced.
func newToken(rgb convert.RGB, opts ScanOptions) (Token, error) {
	tok := Token{Space: opts.Space}
	var err error
	switch opts.Space {
	case SpaceRGB:
		tok.RGB = rgb
	case SpaceRGBf:
		tok.RGBf = convert.RGBf{
			R: float64(rgb.R) / 255,
			G: float64(rgb.G) / 255,
			B: float64(rgb.B) / 255,
		}
	case SpaceHex:
		tok.Hex, err = convert.RGBToHex(rgb)
	case SpaceHSL:
		tok.HSL, err = convert.RGBToHSL(rgb, opts.Places)
	case SpaceHSV:
		tok.HSV, err = convert.RGBToHSV(rgb, opts.Places)
	case SpaceCMYK:
		tok.CMYK, err = convert.RGBToCMYK(rgb, opts.Places)
	}
	return tok, err
}

// Strip removes every SGR escape sequence from text, leaving plain text
// untouched and order preserved. It never fails and is idempotent.
func Strip(text string) string {
	return stripRE.ReplaceAllString(text, "")
}
