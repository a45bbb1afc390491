// poikit prepares LED poi image assets: it converts images to the C array
// headers the firmware embeds, inspects their dimensions and color makeup,
// and previews them in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "poikit",
	Short: "Prepare LED poi image assets for firmware builds",

	// main prints the error once; keep cobra from echoing it with the
	// full usage block.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
