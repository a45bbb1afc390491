package main

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sokosun/oreore-poi/internal/pipeline"
)

var convertCmd = &cobra.Command{
	Use:   "convert [image]...",
	Short: "Convert images to C array headers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("out-dir", "o", ".", "Directory for generated headers")
	convertCmd.Flags().Bool("darken", true, "Halve channel values to tame LED brightness")
	convertCmd.Flags().IntSlice("crop", nil, "Crop region as x,y,width,height (before resampling)")
	convertCmd.Flags().Int("width", 0, "Resample to this width in pixels (0 keeps source)")
	convertCmd.Flags().Int("height", 0, "Resample to this height in pixels (0 keeps source)")
	convertCmd.Flags().Bool("stdout", false, "Write the array to stdout instead of a header file")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out-dir")
	darken, _ := cmd.Flags().GetBool("darken")
	crop, _ := cmd.Flags().GetIntSlice("crop")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	toStdout, _ := cmd.Flags().GetBool("stdout")

	if toStdout && len(args) != 1 {
		return fmt.Errorf("--stdout accepts exactly one image, got %d", len(args))
	}

	cropRect, err := parseCrop(crop)
	if err != nil {
		return err
	}

	opts := pipeline.Options{Crop: cropRect, Darken: darken, Width: width, Height: height}

	for _, path := range args {
		if toStdout {
			_, err := pipeline.Run(path, assetName(path), os.Stdout, opts)
			return err
		}

		outPath, result, err := convertOne(path, outDir, opts)
		if err != nil {
			return err
		}

		fmt.Printf("Converted %s → %s (%dx%d, %d bytes)\n",
			path, outPath, result.Width, result.Height, 3*result.Width*result.Height)
	}

	return nil
}

// convertOne converts a single image into <outDir>/<name>.h. The array is
// rendered in memory and the header written only once the whole conversion
// has succeeded, so a failure never leaves an empty file behind or
// truncates a previously generated header.
func convertOne(path, outDir string, opts pipeline.Options) (string, *pipeline.Result, error) {
	name := assetName(path)
	outPath := filepath.Join(outDir, name+".h")

	var buf bytes.Buffer
	result, err := pipeline.Run(path, name, &buf, opts)
	if err != nil {
		return "", nil, err
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return "", nil, fmt.Errorf("writing %s: %w", outPath, err)
	}
	return outPath, result, nil
}

// parseCrop turns the --crop values into a rectangle. An empty slice means
// no cropping; anything but four values is an error.
func parseCrop(v []int) (image.Rectangle, error) {
	if len(v) == 0 {
		return image.Rectangle{}, nil
	}
	if len(v) != 4 {
		return image.Rectangle{}, fmt.Errorf("--crop wants x,y,width,height, got %d values", len(v))
	}
	if v[2] <= 0 || v[3] <= 0 {
		return image.Rectangle{}, fmt.Errorf("--crop width and height must be positive")
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}

// assetName derives the array and header name for an image: the base name
// with its extension trimmed and anything a C identifier cannot carry
// replaced by underscores. Unlike rawconv's first-dot rule, versioned
// names like photo.v2.png survive as photo_v2.
func assetName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, base)
}
