// prism is a terminal color toolkit built on 24-bit ANSI escape codes.
//
// Usage:
//
//	prism convert <from> <to> <value>  - Convert between color spaces
//	prism sample <name> [text]         - Print text in a predefined color
//	prism compare [text]               - Print text in every predefined color
//	prism gradient <text> <colors...>  - Render a per-character gradient
//	prism strip [text]                 - Remove ANSI formatting
//	prism scan [text]                  - List the color codes in a string
//	prism browse                       - Browse the predefined colors interactively
//
// Global flags:
//
//	--palette <name>   - Named palette to use instead of the built-in colors
//	--palette-file <p> - Load the palette from an explicit file
//	--no-color         - Write plain text, no escape codes
//	--verbose          - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Global flags
	flagPalette     string
	flagPaletteFile string
	flagNoColor     bool
	flagVerbose     bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "prism",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "Prism - true-color text styling for your terminal",
	Long: `Prism converts colors between RGB, hex, HSL, HSV and CMYK, and styles
terminal output with 24-bit ANSI escape codes.

Available commands:
  convert  - Convert a color between spaces
  sample   - Print text in a predefined color
  compare  - Print text in every predefined color
  gradient - Render a per-character gradient over text
  strip    - Remove ANSI formatting from text
  scan     - List the color codes embedded in text
  browse   - Browse the predefined colors interactively

Examples:
  prism convert hex hsl "#ff8000"
  prism sample crimson "hello"
  prism gradient "hello world" black white
  prism strip "$(prism sample red)"`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagPalette, "palette", "", "Named palette (loaded from ~/.prism/palettes or ./palettes)")
	rootCmd.PersistentFlags().StringVar(&flagPaletteFile, "palette-file", "", "Path to a palette YAML file")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable escape codes in output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(gradientCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(browseCmd)
}

// colorEnabled reports whether output should carry escape codes.
func colorEnabled() bool {
	if flagNoColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
