package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prismkit/prism/ansi"
	"github.com/prismkit/prism/convert"
)

var (
	flagScanSpace  string
	flagScanPlaces int
	flagScanReset  bool
	flagScanLayer  bool
)

var stripCmd = &cobra.Command{
	Use:   "strip [text]",
	Short: "Remove ANSI formatting from text",
	Long: `Remove every ANSI formatting sequence from the given text, or from
stdin when no text is given.

Examples:
  prism strip "$(prism sample red hello)"
  prism compare | prism strip`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStrip,
}

var scanCmd = &cobra.Command{
	Use:   "scan [text]",
	Short: "List the color codes embedded in text",
	Long: `Extract the 24-bit color codes from the given text (or stdin) and
print one color per line in the requested space.

Examples:
  prism scan "$(prism gradient hello black white)"
  prism scan --space hex --layer "$(prism sample red hello)"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScan,
}

func init() {
	scanCmd.Flags().StringVar(&flagScanSpace, "space", "rgb", "Output space (rgb, rgbf, hex, hsl, hsv, cmyk)")
	scanCmd.Flags().IntVar(&flagScanPlaces, "places", convert.DefaultPlaces, "Decimal places for fractional outputs")
	scanCmd.Flags().BoolVar(&flagScanReset, "reset", false, "Include reset sequences in the output")
	scanCmd.Flags().BoolVar(&flagScanLayer, "layer", false, "Prefix each color with its layer")
}

// inputText returns the sole positional argument, or all of stdin.
func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func runStrip(cmd *cobra.Command, args []string) {
	text, err := inputText(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(ansi.Strip(text))
	if len(args) > 0 {
		fmt.Println()
	}
}

func runScan(cmd *cobra.Command, args []string) {
	space, err := ansi.ParseSpace(flagScanSpace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	text, err := inputText(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tokens, err := ansi.Scan(text, ansi.ScanOptions{
		Space:        space,
		Places:       flagScanPlaces,
		IncludeReset: flagScanReset,
		IncludeLayer: flagScanLayer,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, tok := range tokens {
		fmt.Println(formatToken(tok, space, flagScanPlaces))
	}
}

// formatToken renders one scanned token as a line of output.
func formatToken(tok ansi.Token, space ansi.Space, places int) string {
	var b strings.Builder
	if tok.Reset {
		return "reset"
	}
	if tok.HasLayer {
		b.WriteString(tok.Layer.String())
		b.WriteString(": ")
	}
	switch space {
	case ansi.SpaceRGB:
		fmt.Fprintf(&b, "rgb(%d, %d, %d)", tok.RGB.R, tok.RGB.G, tok.RGB.B)
	case ansi.SpaceRGBf:
		fmt.Fprintf(&b, "rgbf(%.*f, %.*f, %.*f)", places, tok.RGBf.R, places, tok.RGBf.G, places, tok.RGBf.B)
	case ansi.SpaceHex:
		b.WriteString(string(tok.Hex.WithHash()))
	case ansi.SpaceHSL:
		fmt.Fprintf(&b, "hsl(%g, %g%%, %g%%)", tok.HSL.H, tok.HSL.S, tok.HSL.L)
	case ansi.SpaceHSV:
		fmt.Fprintf(&b, "hsv(%g, %g%%, %g%%)", tok.HSV.H, tok.HSV.S, tok.HSV.V)
	case ansi.SpaceCMYK:
		fmt.Fprintf(&b, "cmyk(%g, %g, %g, %g)", tok.CMYK.C, tok.CMYK.M, tok.CMYK.Y, tok.CMYK.K)
	}
	return b.String()
}
