package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sokosun/oreore-poi/internal/imaging"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [image]",
	Short: "Inspect an image's dimensions, flash cost and color makeup",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := imaging.Describe(path)
	if err != nil {
		return err
	}

	g, err := imaging.Load(path)
	if err != nil {
		return err
	}
	stats := imaging.Stats(g, 5)

	fmt.Printf("File:        %s\n", path)
	fmt.Printf("Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Printf("Format:      %s\n", info.Format)
	fmt.Printf("Color depth: %s\n", info.ColorDepth)
	fmt.Printf("Alpha:       %v\n", info.HasAlpha)
	fmt.Printf("File size:   %d bytes\n", info.FileSizeBytes)
	fmt.Printf("Array size:  %d bytes (%d per row)\n", 3*info.Width*info.Height, 3*info.Width)
	fmt.Printf("Mean color:  %s (L* %.1f)\n", stats.MeanHex, stats.Lightness)
	fmt.Println("Dominant colors:")
	for _, c := range stats.Dominant {
		fmt.Printf("  %s  %5.1f%%\n", c.Hex, c.Percentage)
	}

	return nil
}
