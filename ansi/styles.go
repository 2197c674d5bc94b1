package ansi

// Text style codes. Terminal emulator support varies for anything past
// the first block; the rarely supported codes are kept because the wire
// format is fixed regardless of who renders it.
const (
	Bold          Code = "\x1b[1m"
	Italic        Code = "\x1b[3m"
	Underline     Code = "\x1b[4m"
	Swap          Code = "\x1b[7m" // swaps foreground and background
	Hide          Code = "\x1b[8m" // text is invisible but still takes up space
	Strikethrough Code = "\x1b[9m"

	// Rarely supported.
	Faint           Code = "\x1b[2m"
	SlowBlink       Code = "\x1b[5m"
	RapidBlink      Code = "\x1b[6m"
	DoubleUnderline Code = "\x1b[21m"
	Frame           Code = "\x1b[51m"
	Encircle        Code = "\x1b[52m"
	Overline        Code = "\x1b[53m"

	// Alternative fonts; almost never supported.
	Font1   Code = "\x1b[11m"
	Font2   Code = "\x1b[12m"
	Font3   Code = "\x1b[13m"
	Font4   Code = "\x1b[14m"
	Font5   Code = "\x1b[15m"
	Font6   Code = "\x1b[16m"
	Font7   Code = "\x1b[17m"
	Font8   Code = "\x1b[18m"
	Font9   Code = "\x1b[19m"
	Fraktur Code = "\x1b[20m"

	// Clear counterparts. 22 clears bold or faint, 23 italic or
	// fraktur; the aliases exist for readability at call sites.
	EndBold          Code = "\x1b[22m"
	EndFaint         Code = "\x1b[22m"
	EndItalic        Code = "\x1b[23m"
	EndFraktur       Code = "\x1b[23m"
	EndUnderline     Code = "\x1b[24m"
	EndBlink         Code = "\x1b[25m"
	EndSwap          Code = "\x1b[27m"
	Unhide           Code = "\x1b[28m"
	EndStrikethrough Code = "\x1b[29m"
	EndFrame         Code = "\x1b[54m"
	EndEncircle      Code = "\x1b[54m"
	EndOverline      Code = "\x1b[55m"
)

// Styles maps style names to their codes for name-based lookup, the same
// way the color palettes map color names.
var Styles = map[string]Code{
	"BOLD":              Bold,
	"ITALIC":            Italic,
	"UNDERLINE":         Underline,
	"SWAP":              Swap,
	"HIDE":              Hide,
	"STRIKETHROUGH":     Strikethrough,
	"FAINT":             Faint,
	"SLOW_BLINK":        SlowBlink,
	"RAPID_BLINK":       RapidBlink,
	"DOUBLE_UNDERLINE":  DoubleUnderline,
	"FRAME":             Frame,
	"ENCIRCLE":          Encircle,
	"OVERLINE":          Overline,
	"FONT1":             Font1,
	"FONT2":             Font2,
	"FONT3":             Font3,
	"FONT4":             Font4,
	"FONT5":             Font5,
	"FONT6":             Font6,
	"FONT7":             Font7,
	"FONT8":             Font8,
	"FONT9":             Font9,
	"FRAKTUR":           Fraktur,
	"END_BOLD":          EndBold,
	"END_FAINT":         EndFaint,
	"END_ITALIC":        EndItalic,
	"END_FRAKTUR":       EndFraktur,
	"END_UNDERLINE":     EndUnderline,
	"END_BLINK":         EndBlink,
	"END_SWAP":          EndSwap,
	"UNHIDE":            Unhide,
	"END_STRIKETHROUGH": EndStrikethrough,
	"END_FRAME":         EndFrame,
	"END_ENCIRCLE":      EndEncircle,
	"END_OVERLINE":      EndOverline,
}

// IsStyle reports whether name is a known style, after the same name
// normalization the palettes apply.
func IsStyle(name string) bool {
	_, ok := Styles[NormalizeName(name)]
	return ok
}

// Style looks up a style code by name. Unknown names are a range error.
func Style(name string) (Code, error) {
	c, ok := Styles[NormalizeName(name)]
	if !ok {
		return "", rangeErrorf("%q is not a known style", name)
	}
	return c, nil
}
