package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sokosun/oreore-poi/internal/imaging"
	"github.com/sokosun/oreore-poi/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview [image]",
	Short: "Render an image in the terminal with ANSI half-blocks",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().Int("columns", 80, "Maximum output width in terminal columns")
	previewCmd.Flags().Bool("darken", false, "Preview with channel halving applied")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	columns, _ := cmd.Flags().GetInt("columns")
	darken, _ := cmd.Flags().GetBool("darken")

	g, err := imaging.Load(args[0])
	if err != nil {
		return err
	}
	g = imaging.Transform(g, imaging.Options{Darken: darken})

	for _, line := range preview.Render(g, columns) {
		fmt.Println(line)
	}

	return nil
}
