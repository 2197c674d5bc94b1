package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prismkit/prism/internal/browser"
)

var flagBrowseBG bool

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the predefined colors interactively",
	Long: `Open an interactive table of the predefined colors with live
swatches and per-space values. Tab switches between foreground and
background rendering.`,
	Args: cobra.NoArgs,
	Run:  runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&flagBrowseBG, "bg", false, "Start with background swatches")
}

func runBrowse(cmd *cobra.Command, args []string) {
	if err := browser.Run(sampleLayer(flagBrowseBG)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
