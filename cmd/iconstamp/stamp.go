package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aldersen/iconstamp"
)

func init() {
	rootCmd.Flags().StringP("output", "o", "", "Output file path (ignored with \"all\")")
}

func runStamp(cmd *cobra.Command, args []string) error {
	imagePath, iconName := args[0], args[1]
	outputPath, _ := cmd.Flags().GetString("output")

	stamper := iconstamp.New()

	if strings.EqualFold(iconName, "all") {
		return runStampAll(stamper, imagePath)
	}

	output, err := stamper.Stamp(imagePath, iconName, outputPath)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", output)
	return nil
}

func runStampAll(stamper *iconstamp.Stamper, imagePath string) error {
	outcomes, err := stamper.StampAll(imagePath)
	if err != nil {
		return err
	}

	written := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			fmt.Printf("icon %s failed: %v\n", outcome.Icon, outcome.Err)
			continue
		}
		fmt.Printf("wrote %s\n", outcome.Output)
		written++
	}
	fmt.Printf("stamped %d/%d icons\n", written, len(outcomes))

	return nil
}
