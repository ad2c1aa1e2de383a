package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coiil",
	Short: "Coiil - Room compiler for mesh-authored levels",
	Long: `Coiil converts artist-authored 3D room scenes into the runtime data a
game needs to simulate and render them: convex collision brushes with
beveled edges, a spawn point, and typed entity placements parsed from
object names.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
