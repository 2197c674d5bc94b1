package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prismkit/prism/gradient"
)

var flagGradientBG bool

var gradientCmd = &cobra.Command{
	Use:   "gradient <text> <color> <color> [color...]",
	Short: "Render a per-character gradient over text",
	Long: `Color text character by character, fading between the given anchor
colors. Anchors can be predefined color names, hex values or r,g,b triples.

Examples:
  prism gradient "hello world" black white
  prism gradient "hello world" "#ff0000" "#ffff00" "#00ff00"
  prism gradient --bg "hello world" navy 255,128,0`,
	Args: cobra.MinimumNArgs(3),
	Run:  runGradient,
}

func init() {
	gradientCmd.Flags().BoolVar(&flagGradientBG, "bg", false, "Color the background instead of the text")
}

func runGradient(cmd *cobra.Command, args []string) {
	layer := sampleLayer(flagGradientBG)

	pal, err := activePalette(layer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	text := args[0]
	anchors := make([]gradient.Anchor, 0, len(args)-1)
	for _, arg := range args[1:] {
		a, err := resolveAnchor(arg, pal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		anchors = append(anchors, a)
	}

	if !colorEnabled() {
		fmt.Println(text)
		return
	}

	out, err := gradient.Render(text, layer, anchors...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}
