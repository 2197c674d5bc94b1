package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prismkit/prism/ansi"
)

var (
	flagSampleBG    bool
	flagCompareBG   bool
	flagCompareText string
)

var sampleCmd = &cobra.Command{
	Use:   "sample <name> [text]",
	Short: "Print text in a predefined color",
	Long: `Print a line of text colored with the named color. With no text the
default sample sentence is used.

Examples:
  prism sample crimson
  prism sample "deep sky blue" "hello"
  prism sample --bg navy "hello"`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSample,
}

var compareCmd = &cobra.Command{
	Use:   "compare [name...]",
	Short: "Print text in every predefined color",
	Long: `Print one line per color so shades can be compared side by side.
With no names the whole active palette is shown. {name} in the text is
replaced with each color's name.

Examples:
  prism compare
  prism compare --text "the quick brown fox"
  prism compare crimson firebrick "dark red"`,
	Run: runCompare,
}

func init() {
	sampleCmd.Flags().BoolVar(&flagSampleBG, "bg", false, "Color the background instead of the text")
	compareCmd.Flags().BoolVar(&flagCompareBG, "bg", false, "Color the background instead of the text")
	compareCmd.Flags().StringVar(&flagCompareText, "text", "", "Sample text ({name} expands to the color name)")
}

func sampleLayer(bg bool) ansi.Layer {
	if bg {
		return ansi.Background
	}
	return ansi.Foreground
}

func runSample(cmd *cobra.Command, args []string) {
	pal, err := activePalette(sampleLayer(flagSampleBG))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	name := args[0]
	msg := strings.Join(args[1:], " ")

	if !colorEnabled() {
		if !pal.Has(name) {
			fmt.Fprintf(os.Stderr, "Error: unknown color name %q\n", name)
			os.Exit(1)
		}
		if msg == "" {
			msg = ansi.DefaultSampleText
		}
		fmt.Println(strings.ReplaceAll(msg, "{name}", ansi.NormalizeName(name)))
		return
	}

	if err := pal.Sample(os.Stdout, name, msg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCompare(cmd *cobra.Command, args []string) {
	pal, err := activePalette(sampleLayer(flagCompareBG))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !colorEnabled() {
		names := args
		if len(names) == 0 {
			names = pal.Names()
		}
		for _, name := range names {
			if !pal.Has(name) {
				fmt.Fprintf(os.Stderr, "Error: unknown color name %q\n", name)
				os.Exit(1)
			}
			fmt.Println(name)
		}
		return
	}

	if err := pal.Compare(os.Stdout, flagCompareText, args...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
