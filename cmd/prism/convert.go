package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prismkit/prism/ansi"
	"github.com/prismkit/prism/convert"
)

var flagPlaces int

var convertCmd = &cobra.Command{
	Use:   "convert <from> <to> <value>",
	Short: "Convert a color between spaces",
	Long: `Convert a color value from one space to another.

Spaces: rgb, rgbf, hex, hsl, hsv, cmyk.
Values are comma-separated channels, except hex which is a plain string.

Examples:
  prism convert hex hsl "#ff8000"
  prism convert rgb cmyk 255,128,0
  prism convert cmyk rgb 0,50,100,0`,
	Args: cobra.ExactArgs(3),
	Run:  runConvert,
}

func init() {
	convertCmd.Flags().IntVar(&flagPlaces, "places", convert.DefaultPlaces, "Decimal places for fractional outputs")
}

func runConvert(cmd *cobra.Command, args []string) {
	from, err := ansi.ParseSpace(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	to, err := ansi.ParseSpace(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rgb, err := parseColorValue(from, args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("converting", "from", from, "to", to, "rgb", rgb)

	out, err := formatColorValue(to, rgb, flagPlaces)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

// parseColorValue reads a command-line value in the given space and reduces
// it to an RGB triple.
func parseColorValue(space ansi.Space, value string) (convert.RGB, error) {
	switch space {
	case ansi.SpaceRGB:
		return parseChannels(value)
	case ansi.SpaceRGBf:
		f, err := parseFloats(value, 3)
		if err != nil {
			return convert.RGB{}, err
		}
		return convert.RGBf{R: f[0], G: f[1], B: f[2]}.RGB()
	case ansi.SpaceHex:
		return convert.Hex(value).RGB()
	case ansi.SpaceHSL:
		f, err := parseFloats(value, 3)
		if err != nil {
			return convert.RGB{}, err
		}
		return convert.HSLToRGB(convert.HSL{H: f[0], S: f[1], L: f[2]})
	case ansi.SpaceHSV:
		f, err := parseFloats(value, 3)
		if err != nil {
			return convert.RGB{}, err
		}
		return convert.HSVToRGB(convert.HSV{H: f[0], S: f[1], V: f[2]})
	case ansi.SpaceCMYK:
		f, err := parseFloats(value, 4)
		if err != nil {
			return convert.RGB{}, err
		}
		return convert.CMYKToRGB(convert.CMYK{C: f[0], M: f[1], Y: f[2], K: f[3]})
	default:
		return convert.RGB{}, fmt.Errorf("unsupported space %q", space)
	}
}

// formatColorValue renders an RGB triple in the requested space.
func formatColorValue(space ansi.Space, rgb convert.RGB, places int) (string, error) {
	switch space {
	case ansi.SpaceRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B), nil
	case ansi.SpaceRGBf:
		return fmt.Sprintf("rgbf(%.*f, %.*f, %.*f)",
			places, float64(rgb.R)/255,
			places, float64(rgb.G)/255,
			places, float64(rgb.B)/255), nil
	case ansi.SpaceHex:
		hex, err := convert.RGBToHex(rgb)
		if err != nil {
			return "", err
		}
		return string(hex.WithHash()), nil
	case ansi.SpaceHSL:
		hsl, err := convert.RGBToHSL(rgb, places)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("hsl(%g, %g%%, %g%%)", hsl.H, hsl.S, hsl.L), nil
	case ansi.SpaceHSV:
		hsv, err := convert.RGBToHSV(rgb, places)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("hsv(%g, %g%%, %g%%)", hsv.H, hsv.S, hsv.V), nil
	case ansi.SpaceCMYK:
		cmyk, err := convert.RGBToCMYK(rgb, places)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("cmyk(%g, %g, %g, %g)", cmyk.C, cmyk.M, cmyk.Y, cmyk.K), nil
	default:
		return "", fmt.Errorf("unsupported space %q", space)
	}
}
