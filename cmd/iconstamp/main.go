package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aldersen/iconstamp"
)

var rootCmd = &cobra.Command{
	Use:   "iconstamp <image> <icon.png|all>",
	Short: "Stamp an icon onto the bottom-right corner of an image",
	Long: `iconstamp composites a small icon onto the bottom-right corner of an
image. The icon is scaled relative to the image height and kept at a
proportional distance from the edges, so the stamp looks consistent
across image sizes.

Icons are read from the icon/png subdirectory of the working directory.
Pass an icon file name to apply a single icon, or "all" to produce one
output file per icon in that directory. Results are always written as
PNG, regardless of the output file extension.`,
	Example: `  iconstamp photo.jpg red.png
  iconstamp photo.jpg red.png -o stamped.png
  iconstamp photo.jpg all`,
	Args:          cobra.ExactArgs(2),
	RunE:          runStamp,
	Version:       iconstamp.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
